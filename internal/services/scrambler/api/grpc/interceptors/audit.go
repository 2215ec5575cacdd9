// Package interceptors provides gRPC server interceptors for the scrambler
// service.
package interceptors

import (
	"context"
	"log"

	"github.com/veilnum/veilnum/internal/services/scrambler/observability/audit"
	"github.com/veilnum/veilnum/internal/services/scrambler/storage"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AuditInterceptor emits an audit event for each unary gRPC call handled by
// the scrambler service. Emission failures are logged and never fail the RPC.
func AuditInterceptor(store storage.AuditEventStore) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if store == nil {
			return resp, err
		}

		severity := audit.SeverityInfo
		code := codes.OK
		if err != nil {
			severity = audit.SeverityError
			if st, ok := status.FromError(err); ok {
				code = st.Code()
			}
		}

		var traceID, spanID string
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
			spanID = sc.SpanID().String()
		}

		emitter := audit.NewEmitter(store)
		emitErr := emitter.Emit(ctx, storage.AuditEvent{
			EventName: audit.GRPCCall,
			Severity:  string(severity),
			Method:    info.FullMethod,
			GRPCCode:  code.String(),
			TraceID:   traceID,
			SpanID:    spanID,
		})
		if emitErr != nil {
			log.Printf("audit emit %s: %v", info.FullMethod, emitErr)
		}

		return resp, err
	}
}
