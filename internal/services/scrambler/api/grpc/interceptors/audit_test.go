package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/veilnum/veilnum/internal/services/scrambler/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type captureStore struct {
	events []storage.AuditEvent
}

func (c *captureStore) AppendAuditEvent(_ context.Context, evt storage.AuditEvent) error {
	c.events = append(c.events, evt)
	return nil
}

func (c *captureStore) ListRecentAuditEvents(context.Context, int) ([]storage.AuditEvent, error) {
	return c.events, nil
}

func TestAuditInterceptorRecordsSuccess(t *testing.T) {
	store := &captureStore{}
	interceptor := AuditInterceptor(store)

	info := &grpc.UnaryServerInfo{FullMethod: "/scrambler.v1.ScramblerService/MapIndex"}
	handler := func(context.Context, any) (any, error) {
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), nil, info, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("expected handler response, got %v", resp)
	}
	if len(store.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(store.events))
	}
	evt := store.events[0]
	if evt.Method != info.FullMethod {
		t.Fatalf("expected method %q, got %q", info.FullMethod, evt.Method)
	}
	if evt.GRPCCode != codes.OK.String() {
		t.Fatalf("expected code OK, got %q", evt.GRPCCode)
	}
	if evt.Severity != "INFO" {
		t.Fatalf("expected severity INFO, got %q", evt.Severity)
	}
	if evt.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}
}

func TestAuditInterceptorRecordsFailure(t *testing.T) {
	store := &captureStore{}
	interceptor := AuditInterceptor(store)

	info := &grpc.UnaryServerInfo{FullMethod: "/scrambler.v1.ScramblerService/MapIndex"}
	handler := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.OutOfRange, "index exceeds identifier space")
	}

	_, err := interceptor(context.Background(), nil, info, handler)
	if status.Code(err) != codes.OutOfRange {
		t.Fatalf("expected OutOfRange passthrough, got %v", err)
	}
	if len(store.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(store.events))
	}
	if store.events[0].GRPCCode != codes.OutOfRange.String() {
		t.Fatalf("expected code OutOfRange, got %q", store.events[0].GRPCCode)
	}
	if store.events[0].Severity != "ERROR" {
		t.Fatalf("expected severity ERROR, got %q", store.events[0].Severity)
	}
}

func TestAuditInterceptorNilStorePassthrough(t *testing.T) {
	interceptor := AuditInterceptor(nil)

	info := &grpc.UnaryServerInfo{FullMethod: "/scrambler.v1.ScramblerService/GetTableInfo"}
	wantErr := errors.New("boom")
	handler := func(context.Context, any) (any, error) {
		return nil, wantErr
	}

	_, err := interceptor(context.Background(), nil, info, handler)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error passthrough, got %v", err)
	}
}
