// Package server hosts the drill gRPC service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	drillv1 "github.com/louisbranch/mathdrill/api/drill/v1"
	"github.com/louisbranch/mathdrill/internal/platform/timeouts"
	"github.com/louisbranch/mathdrill/internal/random"
	drillservice "github.com/louisbranch/mathdrill/internal/services/drill/api/grpc/drill"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configure the drill server.
type Options struct {
	// Addr is the listen address; it overrides Port when set.
	Addr string
	Port int
	// AllowReplay lets clients supply seeds to replay problems.
	AllowReplay bool
}

// Server hosts the drill service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
}

// New creates a configured drill server listening on the configured address.
func New(opts Options) (*Server, error) {
	addr := opts.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", opts.Port)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	drillService := drillservice.NewService(random.NewSeed, drillservice.WithReplay(opts.AllowReplay))
	healthServer := health.NewServer()
	drillv1.RegisterDrillServiceServer(grpcServer, drillService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(drillv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
	}, nil
}

// Addr returns the listener address for the drill server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a drill server until the context ends.
func Run(ctx context.Context, opts Options) error {
	grpcServer, err := New(opts)
	if err != nil {
		return err
	}
	return grpcServer.Serve(ctx)
}

// Serve starts the drill server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log.Printf("drill server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.stop()
		err := <-serveErr
		return handleErr(err)
	case err := <-serveErr:
		return handleErr(err)
	}
}

// stop drains in-flight RPCs, forcing the stop after timeouts.Shutdown.
func (s *Server) stop() {
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeouts.Shutdown):
		log.Printf("drill server did not drain within %v; forcing stop", timeouts.Shutdown)
		s.grpcServer.Stop()
		<-stopped
	}
}
