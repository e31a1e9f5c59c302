package httpapi

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/avatars/internal/services/avatars/api/httpapi"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a route with a server span and a debug access log.
func (h *Handler) instrument(route string, next http.HandlerFunc) http.Handler {
	tracer := otel.Tracer(tracerName)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, span := tracer.Start(r.Context(), route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}

		keyvals := []any{
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"elapsed", time.Since(start).Round(time.Microsecond),
		}
		if sc := span.SpanContext(); sc.IsValid() {
			keyvals = append(keyvals, "trace_id", sc.TraceID().String())
		}
		if rec.status >= http.StatusInternalServerError {
			h.logger.Error("request failed", keyvals...)
			return
		}
		h.logger.Debug("request", keyvals...)
	})
}
