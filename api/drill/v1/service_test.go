package drillv1

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type echoServer struct {
	UnimplementedDrillServiceServer
	lastGenerate *GenerateRequest
}

func (s *echoServer) Generate(_ context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	s.lastGenerate = req
	return &GenerateResponse{ProblemID: "p1", A: 2, B: 3, C: 5, Operator: "ADD", Prompt: "2 + 3 = ?", Seed: 42, SeedSource: "client"}, nil
}

func dialBufconn(t *testing.T, srv DrillServiceServer) DrillServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterDrillServiceServer(server, srv)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return NewDrillServiceClient(conn)
}

func TestClientGenerateRoundTrip(t *testing.T) {
	srv := &echoServer{}
	client := dialBufconn(t, srv)

	seed := uint64(42)
	resp, err := client.Generate(context.Background(), &GenerateRequest{Modes: []string{"ADD"}, Seed: &seed, Replay: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.ProblemID != "p1" || resp.C != 5 || resp.Seed != 42 || resp.SeedSource != "client" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if srv.lastGenerate == nil || srv.lastGenerate.Seed == nil || *srv.lastGenerate.Seed != 42 {
		t.Fatalf("server saw %+v", srv.lastGenerate)
	}
}

func TestClientEvaluateUnimplemented(t *testing.T) {
	client := dialBufconn(t, &echoServer{})

	_, err := client.Evaluate(context.Background(), &EvaluateRequest{A: 1, B: 1, C: 2, Operator: "ADD"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}
}

func TestServerRejectsMalformedStruct(t *testing.T) {
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterDrillServiceServer(server, &echoServer{})
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	defer conn.Close()

	in := &structpb.Struct{Fields: map[string]*structpb.Value{fieldMin: structpb.NewStringValue("zero")}}
	err = conn.Invoke(context.Background(), DrillService_Generate_FullMethodName, in, new(structpb.Struct))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
