// Package server hosts the scrambler gRPC server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	scramblerv1 "github.com/veilnum/veilnum/api/gen/go/scrambler/v1"
	"github.com/veilnum/veilnum/internal/scramble"
	scramblergrpc "github.com/veilnum/veilnum/internal/services/scrambler/api/grpc"
	"github.com/veilnum/veilnum/internal/services/scrambler/api/grpc/interceptors"
	storagesqlite "github.com/veilnum/veilnum/internal/services/scrambler/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures the scrambler server.
type Options struct {
	// Port is the TCP port to listen on. Port 0 picks a free port.
	Port int
	// Addr is the full listen address. When set it overrides Port.
	Addr string
	// BaseOffset uniformly shifts the segment walk.
	BaseOffset int64
	// AuditDBPath locates the SQLite audit event store. Empty disables
	// audit persistence.
	AuditDBPath string
}

// Server hosts the scrambler gRPC server.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *storagesqlite.Store
}

// New creates a configured scrambler server listening on the provided port.
func New(opts Options) (*Server, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		addr = fmt.Sprintf(":%d", opts.Port)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	scrambler, err := scramble.New(opts.BaseOffset)
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("configure scrambler: %w", err)
	}

	store, err := openAuditStore(opts.AuditDBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	}
	if store != nil {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(
			interceptors.AuditInterceptor(store),
		))
	}
	grpcServer := grpc.NewServer(serverOpts...)

	scramblerService := scramblergrpc.NewScramblerService(scrambler)
	healthServer := health.NewServer()
	scramblerv1.RegisterScramblerServiceServer(grpcServer, scramblerService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("scrambler.v1.ScramblerService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the scrambler server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a scrambler server until the context ends.
func Run(ctx context.Context, opts Options) error {
	grpcServer, err := New(opts)
	if err != nil {
		return err
	}
	return grpcServer.Serve(ctx)
}

// Serve starts the scrambler server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("scrambler server listening at %v", s.listener.Addr())
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
		s.grpcServer.GracefulStop()
		err := <-serveErr
		return handleErr(err)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func openAuditStore(path string) (*storagesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := storagesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audit sqlite store: %w", err)
	}
	return store, nil
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close audit store: %v", err)
	}
}
