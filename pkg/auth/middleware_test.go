package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	token, err := jwtService.GenerateJWT(1, "user@example.com", "USER", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	expiredToken, err := jwtService.GenerateJWT(1, "user@example.com", "USER", time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := r.Context().Value(IdentityKey).(Identity)
		assert.True(t, ok)
		assert.Equal(t, 1, ident.UserID)
		assert.Equal(t, "user@example.com", ident.Email)
		assert.Equal(t, "USER", ident.Role)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "Valid token",
			authHeader:   "Bearer " + token,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "No bearer prefix",
			authHeader:   token,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			authHeader:   "Bearer not-a-token",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Expired token",
			authHeader:   "Bearer " + expiredToken,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/cars", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		identity     any
		expectedCode int
	}{
		{
			name:         "Admin passes",
			identity:     Identity{UserID: 1, Role: "ADMIN"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Regular user rejected",
			identity:     Identity{UserID: 2, Role: "USER"},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "No identity in context",
			identity:     nil,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/users", nil)
			if tt.identity != nil {
				req = req.WithContext(context.WithValue(req.Context(), IdentityKey, tt.identity))
			}
			rr := httptest.NewRecorder()

			AdminMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
