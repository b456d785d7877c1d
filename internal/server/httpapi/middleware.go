package httpapi

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"github.com/sergeyvolkov/notesvc/internal/server/auth"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// tokenFromRequest extracts the raw token from the Authorization header.
// A conventional "Bearer " prefix is tolerated but not required.
func tokenFromRequest(req *http.Request) string {
	return strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
}

// authMiddleware guards the note-mutation endpoints. A missing token is
// answered with 403, a token that fails verification with 401; on success
// the verified user id rides the request context.
func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		token := tokenFromRequest(req)
		if token == "" {
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "Token is missing!"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, r.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token is invalid!"})
			return
		}

		ctx := context.WithValue(req.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func getUserID(ctx context.Context) int64 {
	if v := ctx.Value(userIDContextKey); v != nil {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// optionalUserID verifies the request token if one is present. Listing
// does not require authentication: a missing or invalid token degrades to
// an unauthenticated view instead of rejecting the request.
func (r *Router) optionalUserID(req *http.Request) *int64 {
	token := tokenFromRequest(req)
	if token == "" {
		return nil
	}
	userID, err := auth.GetUserIDFromToken(token, r.jwtSecret)
	if err != nil {
		return nil
	}
	return &userID
}

// recoveryMiddleware turns handler panics into the generic 500 answer.
func (r *Router) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error(req.Context(), "request panic",
					"uri", req.RequestURI,
					"method", req.Method,
					"panic", p,
					"stack", string(debug.Stack()),
				)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
			}
		}()
		next.ServeHTTP(w, req)
	})
}

// statusWriter captures the response code for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware tags every request with an id and logs the outcome at
// a level matching the response class.
func (r *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.NewString()
		log := r.logger.With("request_id", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, req)

		args := []any{"method", req.Method, "uri", req.RequestURI, "status", sw.status}
		switch {
		case sw.status >= http.StatusInternalServerError:
			log.Error(req.Context(), "request", args...)
		case sw.status >= http.StatusBadRequest:
			log.Warn(req.Context(), "request", args...)
		default:
			log.Info(req.Context(), "request", args...)
		}
	})
}
