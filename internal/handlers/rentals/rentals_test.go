package rentals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
	"github.com/wgauto/crm/pkg/auth"
	"github.com/wgauto/crm/pkg/utils"
)

func NewMock(t *testing.T) (*RentalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, url, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.IdentityKey, auth.Identity{UserID: 1, Email: "user@example.com", Role: "USER"})
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	t.Run("Returns rentals with car info", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), sc).Return([]domain.RentalWithCar{
			{Rental: domain.Rental{ID: 1, ClientName: "Giorgi"}, CarBrand: "Toyota", CarModel: "Prius"},
		}, nil)

		req := newAuthedRequest("GET", "/api/rentals", "", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), sc).Return(nil, fmt.Errorf("database error"))

		req := newAuthedRequest("GET", "/api/rentals", "", nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"car_id":1,"client_name":"Giorgi","client_phone":"+995555123456","start_date":"2024-01-10","end_date":"2024-01-12","daily_price":100,"currency":"GEL"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), sc, 1, 1, "Giorgi", "+995555123456", start, end, 100.0, "GEL").
					Return(&domain.Rental{ID: 1, TotalAmount: 300, Status: domain.RentalStatusActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid start date",
			body:          `{"car_id":1,"client_name":"Giorgi","start_date":"10/01/2024","end_date":"2024-01-12","daily_price":100,"currency":"GEL"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid start date",
		},
		{
			name:          "Invalid end date",
			body:          `{"car_id":1,"client_name":"Giorgi","start_date":"2024-01-10","end_date":"someday","daily_price":100,"currency":"GEL"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid end date",
		},
		{
			name: "Car unavailable",
			body: `{"car_id":1,"client_name":"Giorgi","client_phone":"","start_date":"2024-01-10","end_date":"2024-01-12","daily_price":100,"currency":"GEL"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), sc, 1, 1, "Giorgi", "", start, end, 100.0, "GEL").
					Return(nil, fmt.Errorf("%w: car unavailable", domain.ErrConflict))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "conflict: car unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newAuthedRequest("POST", "/api/rentals", tt.body, nil)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

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

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	tests := []struct {
		name         string
		rentalID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Rental completed",
			rentalID: "5",
			prepareMock: func() {
				now := time.Now()
				service.EXPECT().Complete(gomock.Any(), sc, 1, 5).Return(
					&domain.Rental{ID: 5, Status: domain.RentalStatusCompleted, CompletedAt: &now, TotalAmount: 300},
					&domain.Transaction{ID: 9, Type: domain.TransactionIncome, Amount: 300},
					nil,
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid rental ID",
			rentalID:     "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Already completed",
			rentalID: "5",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), sc, 1, 5).
					Return(nil, nil, fmt.Errorf("%w: rental already completed", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Rental not found",
			rentalID: "99",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), sc, 1, 99).
					Return(nil, nil, fmt.Errorf("%w: rental not found", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newAuthedRequest("POST", "/api/rentals/"+tt.rentalID+"/complete", "", map[string]string{"id": tt.rentalID})
			rr := httptest.NewRecorder()

			handler.Complete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCalendarHandler(t *testing.T) {
	handler, service := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	tests := []struct {
		name          string
		year          string
		month         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "January rentals",
			year:  "2024",
			month: "1",
			prepareMock: func() {
				service.EXPECT().Calendar(gomock.Any(), sc, 2024, 1).
					Return([]domain.RentalWithCar{{Rental: domain.Rental{ID: 1}, CarBrand: "Toyota"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid year",
			year:          "twenty",
			month:         "1",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid year",
		},
		{
			name:          "Invalid month",
			year:          "2024",
			month:         "jan",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid month",
		},
		{
			name:  "Month out of range",
			year:  "2024",
			month: "13",
			prepareMock: func() {
				service.EXPECT().Calendar(gomock.Any(), sc, 2024, 13).
					Return(nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed: month must be between 1 and 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newAuthedRequest("GET", "/api/rentals/calendar/"+tt.year+"/"+tt.month, "", map[string]string{"year": tt.year, "month": tt.month})
			rr := httptest.NewRecorder()

			handler.Calendar(rr, req)

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
