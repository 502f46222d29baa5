package carrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/pg"
	"github.com/wgauto/crm/internal/scope"
)

const carColumns = `id, brand, model, COALESCE(year, 0), COALESCE(vin, ''), COALESCE(price, 0), COALESCE(currency, ''), status, user_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCar(row pgx.Row, car *domain.Car) error {
	return row.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.VIN, &car.Price, &car.Currency, &car.Status, &car.UserID, &car.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query := `
        INSERT INTO cars (brand, model, year, vin, price, currency, status, user_id)
        VALUES ($1, $2, NULLIF($3, 0), NULLIF($4, ''), $5, $6, $7, $8)
        RETURNING ` + carColumns
	row := r.db.QueryRow(ctx, query,
		car.Brand, car.Model, car.Year, car.VIN, car.Price, car.Currency, car.Status, car.UserID)

	var created domain.Car
	if err := scanCar(row, &created); err != nil {
		zap.L().Error("can't create car", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	args := []any{id}
	clause, args := sc.Filter("user_id", args)
	query += clause

	row := r.db.QueryRow(ctx, query, args...)

	var car domain.Car
	err := scanCar(row, &car)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find car", zap.Error(err))
		return nil, err
	}
	return &car, nil
}

func (r *Repository) List(ctx context.Context, sc scope.Scope, search, status string) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE 1=1`
	var args []any
	clause, args := sc.Filter("user_id", args)
	query += clause

	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (LOWER(brand) LIKE $%d OR LOWER(model) LIKE $%d OR LOWER(COALESCE(vin, '')) LIKE $%d OR CAST(COALESCE(year, 0) AS TEXT) LIKE $%d)`, n, n, n, n)
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list cars", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := scanCar(rows, &car); err != nil {
			zap.L().Error("can't scan car row", zap.Error(err))
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// UpdateStatus moves a car from one status to another with a conditional
// update, so concurrent transitions race on the status guard instead of
// overwriting each other. Returns nil when the car was not in the
// expected status.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to domain.CarStatus) (*domain.Car, error) {
	query := `
        UPDATE cars
        SET status = $1
        WHERE id = $2 AND status = $3
        RETURNING ` + carColumns
	row := r.db.QueryRow(ctx, query, to, id, from)

	var car domain.Car
	err := scanCar(row, &car)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update car status", zap.Error(err))
		return nil, err
	}
	return &car, nil
}

func (r *Repository) CountByStatus(ctx context.Context, sc scope.Scope) ([]domain.CarStatusCount, error) {
	query := `
        SELECT status, COUNT(*) AS count
        FROM cars
        WHERE 1=1
    `
	var args []any
	clause, args := sc.Filter("user_id", args)
	query += clause + `
        GROUP BY status
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't count cars by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var counts []domain.CarStatusCount
	for rows.Next() {
		var c domain.CarStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			zap.L().Error("can't scan car count row", zap.Error(err))
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, nil
}
