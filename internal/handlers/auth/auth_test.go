package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	user := &domain.User{
		ID:     1,
		Email:  "newuser@example.com",
		Role:   domain.RoleUser,
		Active: true,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"newuser@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"email":"existing@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existing@example.com", "password123").
					Return(nil, fmt.Errorf("%w: user already exists", domain.ErrConflict))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "conflict: user already exists",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"newuser@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", fmt.Errorf("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	user := &domain.User{
		ID:     1,
		Email:  "testuser@example.com",
		Role:   domain.RoleUser,
		Active: true,
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"testuser@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"testuser@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser@example.com", "wrongpassword").
					Return(nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "unauthorized: invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"testuser@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "testuser@example.com", "password123").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", fmt.Errorf("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
