package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"raffler/domain"
	"raffler/infrastructure/observability"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// SellerIDHeader carries the caller's seller id. It is a bare capability token
// and is not verified.
const SellerIDHeader = "X-Seller-ID"

type contextKey string

const ctxSellerID contextKey = "seller_id"

// SellerIDFromContext returns the caller's seller id, or 0 when absent
func SellerIDFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(ctxSellerID).(int64); ok {
		return v
	}
	return 0
}

// WithSellerID injects the caller's seller id into the context
func WithSellerID(ctx context.Context, sellerID int64) context.Context {
	return context.WithValue(ctx, ctxSellerID, sellerID)
}

// RequireSeller rejects requests without a valid X-Seller-ID header
func RequireSeller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(SellerIDHeader))
		if raw == "" {
			writeError(w, r, fmt.Errorf("%w: %s header is required", domain.ErrForbidden, SellerIDHeader))
			return
		}
		sellerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || sellerID <= 0 {
			writeError(w, r, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, SellerIDHeader))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSellerID(r.Context(), sellerID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request and records request metrics
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		duration := time.Since(start)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		observability.GetMetrics().RecordHTTPRequest(r.Method, route, rec.status, duration)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"route":      route,
			"status":     rec.status,
			"durationMs": duration.Milliseconds(),
		}).Info("Request completed")
	})
}

// Recoverer turns panics into 500 responses
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
				}).Error("Recovered from panic")
				writeError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
