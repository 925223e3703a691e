package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

// AccessValidator verifies platform access tokens carried in the
// Authorization header.
type AccessValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// LoggerHTTP injects the request-scoped logger into the context so handlers
// can pick it up with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthInterceptorHTTP authenticates the caller from the Bearer token and
// stores the resolved identity in the context under KeyUUID and KeyRole.
func AuthInterceptorHTTP(next http.Handler, validator AccessValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		claims, err := validator.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeUnauthorized(w, "invalid token")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, config.KeyUUID, claims.Subject)
		ctx = context.WithValue(ctx, config.KeyRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
