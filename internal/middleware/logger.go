package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"trenchsniffer.io/web/internal/observability"
)

// RequestLogger emits one structured log line per request, records the
// request metrics and stores a request-scoped logger on the context.
// metrics may be nil.
func RequestLogger(logger *zap.Logger, metrics *observability.Metrics) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(
				zap.String("request_id", chiMid.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			r = r.WithContext(observability.WithLogger(r.Context(), reqLogger))

			rw := NewResponseRecorder(w)
			panicked := true
			defer func() {
				status := rw.Status()
				if panicked && status < http.StatusInternalServerError {
					status = http.StatusInternalServerError
				}
				route := routePattern(r)
				elapsed := time.Since(start)
				metrics.ObserveRequest(route, r.Method, status, elapsed)

				fields := []zap.Field{
					zap.String("route", route),
					zap.Int("status", status),
					zap.Duration("latency", elapsed),
					zap.Int64("bytes", rw.BytesWritten()),
					zap.String("remote_ip", clientIP(r)),
				}
				switch {
				case status >= http.StatusInternalServerError:
					reqLogger.Error("request", fields...)
				case status >= http.StatusBadRequest:
					reqLogger.Warn("request", fields...)
				default:
					reqLogger.Info("request", fields...)
				}
			}()

			next.ServeHTTP(rw, r)
			panicked = false
		})
	}
}

// routePattern is the matched chi pattern, so metric labels stay bounded.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

func clientIP(r *http.Request) string {
	// Trust X-Forwarded-For set by the platform load balancer (last IP is client)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		p := strings.Split(xff, ",")
		return strings.TrimSpace(p[len(p)-1])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
