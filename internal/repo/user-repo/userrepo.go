package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, role, active, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, email, password_hash, role, active, created_at
    `
	row := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Role)

	var created domain.User
	err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.Role, &created.Active, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, email, password_hash, role, active, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ToggleActive flips the activation flag. Returns nil when the user does
// not exist.
func (r *Repository) ToggleActive(ctx context.Context, id int) (*domain.User, error) {
	query := `
        UPDATE users
        SET active = NOT active
        WHERE id = $1
        RETURNING id, email, password_hash, role, active, created_at
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.Active, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't toggle user activation", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
