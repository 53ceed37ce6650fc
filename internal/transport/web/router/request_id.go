package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shamanshetty/TradeCraft/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags each request with an ID, reusing the caller's when
// supplied, and attaches it to the context logger.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := domain.ContextWithRequestID(r.Context(), requestID)
		logger := domain.LoggerFromContext(ctx).With("request_id", requestID)
		ctx = domain.ContextWithLogger(ctx, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
