package carrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var carRowColumns = []string{"id", "brand", "model", "year", "vin", "price", "currency", "status", "user_id", "created_at"}

func carRow(createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(carRowColumns).
		AddRow(1, "Toyota", "Prius", 2015, "VIN123", 7500.0, "GEL", domain.CarStatusActive, 1, createdAt)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		car       *domain.Car
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create car successfully",
			car: &domain.Car{
				Brand:    "Toyota",
				Model:    "Prius",
				Year:     2015,
				VIN:      "VIN123",
				Price:    7500,
				Currency: "GEL",
				Status:   domain.CarStatusActive,
				UserID:   1,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cars (brand, model, year, vin, price, currency, status, user_id)")).
					WithArgs("Toyota", "Prius", 2015, "VIN123", 7500.0, "GEL", domain.CarStatusActive, 1).
					WillReturnRows(carRow(createdAt))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			car: &domain.Car{
				Brand:    "Toyota",
				Model:    "Prius",
				Year:     2015,
				VIN:      "VIN123",
				Price:    7500,
				Currency: "GEL",
				Status:   domain.CarStatusActive,
				UserID:   1,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cars (brand, model, year, vin, price, currency, status, user_id)")).
					WithArgs("Toyota", "Prius", 2015, "VIN123", 7500.0, "GEL", domain.CarStatusActive, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.car)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, "Toyota", result.Brand)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owner := scope.ForUser(1, domain.RoleUser)
	admin := scope.ForUser(2, domain.RoleAdmin)

	tests := []struct {
		name      string
		sc        scope.Scope
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Found within owner scope",
			sc:   owner,
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE id = $1 AND user_id = $2")).
					WithArgs(1, 1).
					WillReturnRows(carRow(createdAt))
			},
			found: true,
		},
		{
			name: "Admin sees everything",
			sc:   admin,
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(carRow(createdAt))
			},
			found: true,
		},
		{
			name: "Not found",
			sc:   owner,
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE id = $1 AND user_id = $2")).
					WithArgs(42, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.sc, tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owner := scope.ForUser(1, domain.RoleUser)

	tests := []struct {
		name      string
		search    string
		status    string
		mockSetup func()
		count     int
	}{
		{
			name: "Plain list",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM cars WHERE 1=1 AND user_id = $1")).
					WithArgs(1).
					WillReturnRows(carRow(createdAt))
			},
			count: 1,
		},
		{
			name:   "Search and status filter",
			search: "Prius",
			status: "active",
			mockSetup: func() {
				mock.ExpectQuery("LOWER\\(brand\\) LIKE").
					WithArgs(1, "%prius%", "active").
					WillReturnRows(carRow(createdAt))
			},
			count: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), owner, tt.search, tt.status)
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from, to  domain.CarStatus
		mockSetup func()
		found     bool
	}{
		{
			name: "Transition applied",
			from: domain.CarStatusActive,
			to:   domain.CarStatusDismantled,
			mockSetup: func() {
				rows := pgxmock.NewRows(carRowColumns).
					AddRow(1, "Toyota", "Prius", 2015, "VIN123", 7500.0, "GEL", domain.CarStatusDismantled, 1, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND status = $3")).
					WithArgs(domain.CarStatusDismantled, 1, domain.CarStatusActive).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Status guard lost the race",
			from: domain.CarStatusActive,
			to:   domain.CarStatusRented,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND status = $3")).
					WithArgs(domain.CarStatusRented, 1, domain.CarStatusActive).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 1, tt.from, tt.to)
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, tt.to, result.Status)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	owner := scope.ForUser(1, domain.RoleUser)

	rows := pgxmock.NewRows([]string{"status", "count"}).
		AddRow(domain.CarStatusActive, 3).
		AddRow(domain.CarStatusRented, 1)
	mock.ExpectQuery("GROUP BY status").
		WithArgs(1).
		WillReturnRows(rows)

	counts, err := repo.CountByStatus(context.Background(), owner)
	assert.NoError(t, err)
	assert.Equal(t, []domain.CarStatusCount{
		{Status: domain.CarStatusActive, Count: 3},
		{Status: domain.CarStatusRented, Count: 1},
	}, counts)
}
