package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/wgauto/crm/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

// Identity is the authenticated caller extracted from the token.
type Identity struct {
	UserID int
	Email  string
	Role   string
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ident := Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}
		ctx := context.WithValue(r.Context(), IdentityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware rejects authenticated callers without the ADMIN role.
// Must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := r.Context().Value(IdentityKey).(Identity)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if ident.Role != "ADMIN" {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
