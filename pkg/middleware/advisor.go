package middleware

import (
	"net/http"
	"strings"

	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/pkg/log"
	"github.com/golang-jwt/jwt/v5"
)

// AdvisorContext resolves the advisor identity of every request and stores
// it in the context. A bearer token carrying advisor_id / tenant_id claims
// wins; without one the configured defaults apply.
func AdvisorContext(secret, defaultAdvisorID, defaultTenantID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			advisorID := defaultAdvisorID
			tenantID := defaultTenantID

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if secret != "" && tokenString != "" && tokenString != authHeader {
				claims := jwt.MapClaims{}
				_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
					return []byte(secret), nil
				})
				if err != nil {
					log.ForContext(r.Context()).WithError(err).
						Warn("advisor: invalid bearer token, using default identity")
				} else {
					if id, ok := claims["advisor_id"].(string); ok && id != "" {
						advisorID = id
					}
					if id, ok := claims["tenant_id"].(string); ok && id != "" {
						tenantID = id
					}
				}
			}

			ctx := advisor.NewContext(r.Context(), advisorID, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
