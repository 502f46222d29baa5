package rentalrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/pg"
	"github.com/wgauto/crm/internal/scope"
)

const rentalColumns = `id, car_id, user_id, client_name, COALESCE(client_phone, ''), start_date, end_date, daily_price, currency, total_amount, status, created_at, completed_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanRental(row pgx.Row, rental *domain.Rental) error {
	return row.Scan(&rental.ID, &rental.CarID, &rental.UserID, &rental.ClientName, &rental.ClientPhone,
		&rental.StartDate, &rental.EndDate, &rental.DailyPrice, &rental.Currency, &rental.TotalAmount,
		&rental.Status, &rental.CreatedAt, &rental.CompletedAt)
}

// Create inserts the rental and moves the car from active to rented in
// one transaction. A car that is not active (already rented, dismantled,
// or racing with another rental) fails the conditional update and the
// whole unit rolls back with a conflict.
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx,
			`UPDATE cars SET status = $1 WHERE id = $2 AND status = $3`,
			domain.CarStatusRented, rental.CarID, domain.CarStatusActive)
		if err != nil {
			zap.L().Error("can't mark car rented", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: car unavailable", domain.ErrConflict)
		}

		row := r.db.QueryRow(ctx, `
            INSERT INTO rentals (car_id, user_id, client_name, client_phone, start_date, end_date, daily_price, currency, total_amount, status)
            VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
            RETURNING id, created_at
        `, rental.CarID, rental.UserID, rental.ClientName, rental.ClientPhone, rental.StartDate, rental.EndDate,
			rental.DailyPrice, rental.Currency, rental.TotalAmount, rental.Status)
		if err := row.Scan(&rental.ID, &rental.CreatedAt); err != nil {
			zap.L().Error("can't create rental", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// Complete flips the rental to completed, appends the income transaction
// and returns the car to active as one atomic unit. The status-guarded
// updates make a second completion observe zero affected rows, so exactly
// one income transaction is ever produced per rental.
func (r *Repository) Complete(ctx context.Context, rental *domain.Rental, txn *domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx,
			`UPDATE rentals SET status = $1, completed_at = $2 WHERE id = $3 AND status = $4`,
			domain.RentalStatusCompleted, rental.CompletedAt, rental.ID, domain.RentalStatusActive)
		if err != nil {
			zap.L().Error("can't complete rental", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: rental already completed", domain.ErrConflict)
		}

		row := r.db.QueryRow(ctx, `
            INSERT INTO transactions (car_id, user_id, type, amount, currency, category, description, rental_id, date)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id
        `, txn.CarID, txn.UserID, txn.Type, txn.Amount, txn.Currency, txn.Category, txn.Description, txn.RentalID, txn.Date)
		if err := row.Scan(&txn.ID); err != nil {
			zap.L().Error("can't create rental income transaction", zap.Error(err))
			return err
		}

		tag, err = r.db.Exec(ctx,
			`UPDATE cars SET status = $1 WHERE id = $2 AND status = $3`,
			domain.CarStatusActive, rental.CarID, domain.CarStatusRented)
		if err != nil {
			zap.L().Error("can't return car to active", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: car is not rented", domain.ErrConflict)
		}
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	args := []any{id}
	clause, args := sc.Filter("user_id", args)
	query += clause

	row := r.db.QueryRow(ctx, query, args...)

	var rental domain.Rental
	err := scanRental(row, &rental)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rental", zap.Error(err))
		return nil, err
	}
	return &rental, nil
}

func (r *Repository) List(ctx context.Context, sc scope.Scope) ([]domain.RentalWithCar, error) {
	query := `
        SELECT r.id, r.car_id, r.user_id, r.client_name, COALESCE(r.client_phone, ''), r.start_date, r.end_date,
               r.daily_price, r.currency, r.total_amount, r.status, r.created_at, r.completed_at,
               c.brand, c.model, COALESCE(c.year, 0)
        FROM rentals r
        JOIN cars c ON r.car_id = c.id
        WHERE 1=1
    `
	var args []any
	clause, args := sc.Filter("r.user_id", args)
	query += clause + `
        ORDER BY r.created_at DESC
    `
	return r.queryWithCar(ctx, query, args...)
}

func (r *Repository) ListByCar(ctx context.Context, carID int) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		zap.L().Error("can't get car rentals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := scanRental(rows, &rental); err != nil {
			zap.L().Error("can't scan rental row", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

// Calendar returns in-scope rentals whose inclusive [start_date, end_date]
// interval intersects [first, last].
func (r *Repository) Calendar(ctx context.Context, sc scope.Scope, first, last time.Time) ([]domain.RentalWithCar, error) {
	query := `
        SELECT r.id, r.car_id, r.user_id, r.client_name, COALESCE(r.client_phone, ''), r.start_date, r.end_date,
               r.daily_price, r.currency, r.total_amount, r.status, r.created_at, r.completed_at,
               c.brand, c.model, COALESCE(c.year, 0)
        FROM rentals r
        JOIN cars c ON r.car_id = c.id
        WHERE r.start_date <= $1 AND r.end_date >= $2
    `
	args := []any{last, first}
	clause, args := sc.Filter("r.user_id", args)
	query += clause + `
        ORDER BY r.start_date ASC
    `
	return r.queryWithCar(ctx, query, args...)
}

func (r *Repository) CountActive(ctx context.Context, sc scope.Scope) (int, error) {
	query := `
        SELECT COUNT(*) AS count
        FROM rentals
        WHERE status = $1
    `
	args := []any{domain.RentalStatusActive}
	clause, args := sc.Filter("user_id", args)
	query += clause

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		zap.L().Error("can't count active rentals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) queryWithCar(ctx context.Context, query string, args ...any) ([]domain.RentalWithCar, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get rentals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithCar
	for rows.Next() {
		var rental domain.RentalWithCar
		err := rows.Scan(&rental.ID, &rental.CarID, &rental.UserID, &rental.ClientName, &rental.ClientPhone,
			&rental.StartDate, &rental.EndDate, &rental.DailyPrice, &rental.Currency, &rental.TotalAmount,
			&rental.Status, &rental.CreatedAt, &rental.CompletedAt,
			&rental.CarBrand, &rental.CarModel, &rental.CarYear)
		if err != nil {
			zap.L().Error("can't scan rental row", zap.Error(err))
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}
