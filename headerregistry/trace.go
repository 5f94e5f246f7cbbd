package headerregistry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// TraceparentValue builds the W3C traceparent header value for the span in
// ctx. It returns false when the context carries no valid span, in which
// case nothing should be injected.
func TraceparentValue(ctx context.Context) (string, bool) {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return fmt.Sprintf("00-%s-%s-01", sc.TraceID().String(), sc.SpanID().String()), true
}

// NewRequestID returns a fresh value for X-Request-ID style correlation
// headers.
func NewRequestID() string {
	return uuid.NewString()
}
