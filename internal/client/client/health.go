package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type HealthClient struct {
	conn   *grpc.ClientConn
	client healthpb.HealthClient
}

func NewHealthClient(endpointURL string, opts ...grpc.DialOption) (*HealthClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	return &HealthClient{conn: conn, client: healthpb.NewHealthClient(conn)}, nil
}

// Check returns the serving status of service ("" means the whole server).
func (c *HealthClient) Check(ctx context.Context, service string) (string, error) {
	resp, err := c.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetStatus().String(), nil
}

func (c *HealthClient) Close() error {
	return c.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
