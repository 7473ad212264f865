package drillv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "drill.v1.DrillService"

const (
	DrillService_Generate_FullMethodName = "/drill.v1.DrillService/Generate"
	DrillService_Evaluate_FullMethodName = "/drill.v1.DrillService/Evaluate"
)

// DrillServiceServer is the server API for DrillService.
type DrillServiceServer interface {
	// Generate produces one practice problem.
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	// Evaluate checks an answer against a problem.
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
}

// UnimplementedDrillServiceServer can be embedded to satisfy
// DrillServiceServer while only some methods are implemented.
type UnimplementedDrillServiceServer struct{}

func (UnimplementedDrillServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Generate not implemented")
}

func (UnimplementedDrillServiceServer) Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}

// RegisterDrillServiceServer registers srv on s.
func RegisterDrillServiceServer(s grpc.ServiceRegistrar, srv DrillServiceServer) {
	s.RegisterService(&DrillService_ServiceDesc, srv)
}

func _DrillService_Generate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		typed, err := GenerateRequestFromStruct(req.(*structpb.Struct))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		resp, err := srv.(DrillServiceServer).Generate(ctx, typed)
		if err != nil {
			return nil, err
		}
		return resp.ToStruct(), nil
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DrillService_Generate_FullMethodName,
	}
	return interceptor(ctx, in, info, handler)
}

func _DrillService_Evaluate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		typed, err := EvaluateRequestFromStruct(req.(*structpb.Struct))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		resp, err := srv.(DrillServiceServer).Evaluate(ctx, typed)
		if err != nil {
			return nil, err
		}
		return resp.ToStruct(), nil
	}
	if interceptor == nil {
		return handler(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DrillService_Evaluate_FullMethodName,
	}
	return interceptor(ctx, in, info, handler)
}

// DrillService_ServiceDesc is the grpc.ServiceDesc for DrillService.
var DrillService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DrillServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    _DrillService_Generate_Handler,
		},
		{
			MethodName: "Evaluate",
			Handler:    _DrillService_Evaluate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "drill/v1/drill.proto",
}

// DrillServiceClient is the client API for DrillService.
type DrillServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
}

type drillServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDrillServiceClient returns a client bound to cc.
func NewDrillServiceClient(cc grpc.ClientConnInterface) DrillServiceClient {
	return &drillServiceClient{cc: cc}
}

func (c *drillServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DrillService_Generate_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	return GenerateResponseFromStruct(out)
}

func (c *drillServiceClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DrillService_Evaluate_FullMethodName, in.ToStruct(), out, opts...); err != nil {
		return nil, err
	}
	return EvaluateResponseFromStruct(out)
}
