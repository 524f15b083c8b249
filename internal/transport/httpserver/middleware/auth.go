package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"law-office-go/internal/domain/auth"
	"law-office-go/pkg/logger"
)

// TokenVerifier checks a bearer token and returns its claims. Implemented by
// the auth service.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

type contextKey int

const claimsKey contextKey = iota

type BearerAuth struct {
	verifier TokenVerifier
	log      logger.Logger
}

func NewBearerAuth(verifier TokenVerifier, log logger.Logger) *BearerAuth {
	return &BearerAuth{verifier: verifier, log: log}
}

// Middleware rejects requests without a bearer token with 401 and requests
// whose token fails verification (bad signature, expired) with 403.
func (a *BearerAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing_token", "authentication required")
			return
		}

		claims, err := a.verifier.VerifyToken(token)
		if err != nil {
			a.log.BusinessError("auth: token rejected", err, "path", r.URL.Path)
			writeError(w, http.StatusForbidden, "invalid_token", "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin guards admin-only routes; it must run after Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != auth.RoleAdmin {
			writeError(w, http.StatusForbidden, "forbidden", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
