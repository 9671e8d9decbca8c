// Package grpc runs the gRPC side of the server: the standard health service
// reporting whether the resource store is serving.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	address string
	logger  logging.Logger
	health  *health.Server
}

// NewGRPCServer creates a server whose overall status and the resource store
// service both report SERVING.
func NewGRPCServer(a string, l logging.Logger) *GRPCServer {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.SetServingStatus(common.ResourceStoreServiceName, healthpb.HealthCheckResponse_SERVING)

	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		health:  h,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled. On cancellation
// every service is switched to NOT_SERVING before the graceful stop, so
// watchers see the server going away.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
