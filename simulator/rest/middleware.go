package rest

import (
	"bytes"
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/rs/xid"
)

type claimsKey struct{}

// GetAuthMiddleware requires a bearer token issued by /api/v1/auth/token. It lets
// every request through when token authentication is disabled.
func (h *Handler) GetAuthMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !h.tokenConfig.Enable {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Authorization header is required", nil)
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Authorization header must start with 'Bearer '", nil)
				return
			}

			claims, err := h.Svc.VerifyToken(ctx, authHeader[len(bearerPrefix):])
			if err != nil {
				h.HandleError(ctx, w, err)
				return
			}
			ctx = context.WithValue(ctx, claimsKey{}, claims.ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIDFromContext returns the client id of an authenticated request.
func ClientIDFromContext(ctx context.Context) string {
	clientID, _ := ctx.Value(claimsKey{}).(string)
	return clientID
}

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		ctx = log.WithContext(ctx)
		r = r.WithContext(ctx)
		responseWriter := NewResponseWriter(w)
		next.ServeHTTP(responseWriter, r)
		log = log.With().
			Int("cost_msec", int(time.Since(start).Milliseconds())).
			Logger()
		switch {
		case responseWriter.statusCode >= 500:
			log.Error().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with server error")
		case responseWriter.statusCode >= 400:
			log.Warn().
				Int("status_code", responseWriter.statusCode).
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with client error")
		default:
			log.Info().
				Int("status_code", responseWriter.statusCode).
				Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	responseBody bytes.Buffer
	statusCode   int
}

func NewResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode >= 400 {
		rw.responseBody.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}
