package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthPollInitial = 200 * time.Millisecond
	healthPollMax     = time.Second
)

// WaitForHealth blocks until the gRPC health check reports SERVING or the
// context ends. Each probe is bounded by a one second deadline.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := healthPollInitial
	for {
		if probeHealth(ctx, healthClient, service, logf) {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > healthPollMax {
			backoff = healthPollMax
		}
	}
}

func probeHealth(ctx context.Context, client grpc_health_v1.HealthClient, service string, logf func(string, ...any)) bool {
	callCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	response, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
		if logf != nil {
			logf("gRPC health check is SERVING")
		}
		return true
	}
	if logf != nil {
		if err != nil {
			logf("waiting for gRPC health: %v", err)
		} else {
			logf("waiting for gRPC health: status %s", response.GetStatus().String())
		}
	}
	return false
}
