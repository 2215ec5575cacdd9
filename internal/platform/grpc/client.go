// Package grpc provides client-side helpers shared by commands that talk to
// the scrambler server.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DialStage describes where a dial attempt failed.
type DialStage string

const (
	// DialStageConnect indicates a dial connection failure.
	DialStageConnect DialStage = "connect"
	// DialStageHealth indicates the health check failed.
	DialStageHealth DialStage = "health"
)

// DialError wraps dial and health check failures with a stage indicator.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DialConfig controls how Dial connects and verifies the endpoint.
type DialConfig struct {
	// HealthService names the service to health check. Empty checks the
	// server-wide status.
	HealthService string
	// Timeout bounds connection establishment and the health wait together.
	Timeout time.Duration
	// Logf receives progress messages while waiting for health. Nil silences
	// them.
	Logf func(string, ...any)
	// Options replaces the default dial options when non-empty.
	Options []gogrpc.DialOption
}

// DefaultDialOptions returns standard dial options for in-process clients.
// The otelgrpc stats handler propagates trace context on every outbound call
// once a TracerProvider is registered.
func DefaultDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithBlock(),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Dial connects to a gRPC endpoint and waits for its health check to report
// SERVING. The connection is closed when the health check fails.
func Dial(ctx context.Context, addr string, cfg DialConfig) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	dialCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := cfg.Options
	if len(opts) == 0 {
		opts = DefaultDialOptions()
	}

	conn, err := gogrpc.DialContext(dialCtx, addr, opts...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	if err := WaitForHealth(dialCtx, conn, cfg.HealthService, cfg.Logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}
