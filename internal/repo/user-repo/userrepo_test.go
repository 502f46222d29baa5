package userrepo

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
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "email", "password_hash", "role", "active", "created_at"}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "user@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "user@example.com", "hashed_password", domain.RoleUser, true, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, active, created_at")).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				Role:         domain.RoleUser,
				Active:       true,
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, active, created_at")).
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "user@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, active, created_at")).
					WithArgs("user@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Role:         domain.RoleUser,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "new@example.com", "hashed_password", domain.RoleUser, true, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash, role)")).
					WithArgs("new@example.com", "hashed_password", domain.RoleUser).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Role:         domain.RoleUser,
				Active:       true,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Role:         domain.RoleUser,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash, role)")).
					WithArgs("new@example.com", "hashed_password", domain.RoleUser).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Two users",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(2, "admin@wgauto.com", "hash_a", domain.RoleAdmin, true, createdAt).
					AddRow(1, "user@example.com", "hash_u", domain.RoleUser, false, createdAt)
				mock.ExpectQuery("ORDER BY created_at DESC").
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("ORDER BY created_at DESC").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_ToggleActive(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Toggled off",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "user@example.com", "hash", domain.RoleUser, false, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SET active = NOT active")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleUser,
				Active:       false,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET active = NOT active")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ToggleActive(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
