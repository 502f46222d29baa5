package partrepo

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

const partColumns = `id, car_id, user_id, name, COALESCE(estimated_price, 0), COALESCE(currency, ''), status, COALESCE(storage_location, ''), created_at, sold_at, COALESCE(sale_price, 0), COALESCE(sale_currency, ''), COALESCE(buyer, ''), COALESCE(notes, '')`

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

func scanPart(row pgx.Row, part *domain.Part) error {
	return row.Scan(&part.ID, &part.CarID, &part.UserID, &part.Name, &part.EstimatedPrice, &part.Currency,
		&part.Status, &part.StorageLocation, &part.CreatedAt, &part.SoldAt,
		&part.SalePrice, &part.SaleCurrency, &part.Buyer, &part.Notes)
}

func (r *Repository) Create(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	query := `
        INSERT INTO parts (car_id, user_id, name, estimated_price, currency, status, storage_location)
        VALUES ($1, $2, $3, NULLIF($4, 0), NULLIF($5, ''), $6, NULLIF($7, ''))
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		part.CarID, part.UserID, part.Name, part.EstimatedPrice, part.Currency, part.Status, part.StorageLocation)
	if err := row.Scan(&part.ID, &part.CreatedAt); err != nil {
		zap.L().Error("can't create part", zap.Error(err))
		return nil, err
	}
	return part, nil
}

func (r *Repository) FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	args := []any{id}
	clause, args := sc.Filter("user_id", args)
	query += clause

	row := r.db.QueryRow(ctx, query, args...)

	var part domain.Part
	err := scanPart(row, &part)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find part", zap.Error(err))
		return nil, err
	}
	return &part, nil
}

func (r *Repository) List(ctx context.Context, sc scope.Scope, search, status, currency string) ([]domain.PartWithCar, error) {
	query := `
        SELECT p.id, p.car_id, p.user_id, p.name, COALESCE(p.estimated_price, 0), COALESCE(p.currency, ''), p.status,
               COALESCE(p.storage_location, ''), p.created_at, p.sold_at, COALESCE(p.sale_price, 0),
               COALESCE(p.sale_currency, ''), COALESCE(p.buyer, ''), COALESCE(p.notes, ''),
               c.brand, c.model, COALESCE(c.year, 0)
        FROM parts p
        JOIN cars c ON p.car_id = c.id
        WHERE 1=1
    `
	var args []any
	clause, args := sc.Filter("p.user_id", args)
	query += clause

	if search != "" {
		args = append(args, "%"+strings.ToLower(search)+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (LOWER(p.name) LIKE $%d OR LOWER(c.brand) LIKE $%d OR LOWER(c.model) LIKE $%d OR LOWER(COALESCE(p.storage_location, '')) LIKE $%d)`, n, n, n, n)
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND p.status = $%d`, len(args))
	}
	if currency != "" {
		args = append(args, currency)
		query += fmt.Sprintf(` AND p.currency = $%d`, len(args))
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list parts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var parts []domain.PartWithCar
	for rows.Next() {
		var part domain.PartWithCar
		err := rows.Scan(&part.ID, &part.CarID, &part.UserID, &part.Name, &part.EstimatedPrice, &part.Currency,
			&part.Status, &part.StorageLocation, &part.CreatedAt, &part.SoldAt,
			&part.SalePrice, &part.SaleCurrency, &part.Buyer, &part.Notes,
			&part.CarBrand, &part.CarModel, &part.CarYear)
		if err != nil {
			zap.L().Error("can't scan part row", zap.Error(err))
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (r *Repository) ListByCar(ctx context.Context, carID int) ([]domain.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE car_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		zap.L().Error("can't get car parts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		var part domain.Part
		if err := scanPart(rows, &part); err != nil {
			zap.L().Error("can't scan part row", zap.Error(err))
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Sell marks the part sold and appends the income transaction in one
// atomic unit. The status guard on the update means a part can only be
// sold once: the loser of a race gets a conflict and no transaction.
func (r *Repository) Sell(ctx context.Context, part *domain.Part, txn *domain.Transaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, `
            UPDATE parts
            SET status = $1, sold_at = $2, sale_price = $3, sale_currency = $4, buyer = NULLIF($5, ''), notes = NULLIF($6, '')
            WHERE id = $7 AND status = $8
        `, domain.PartStatusSold, part.SoldAt, part.SalePrice, part.SaleCurrency, part.Buyer, part.Notes,
			part.ID, domain.PartStatusAvailable)
		if err != nil {
			zap.L().Error("can't mark part sold", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: part already sold", domain.ErrConflict)
		}

		row := r.db.QueryRow(ctx, `
            INSERT INTO transactions (car_id, user_id, type, amount, currency, category, description, part_id, date)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING id
        `, txn.CarID, txn.UserID, txn.Type, txn.Amount, txn.Currency, txn.Category, txn.Description, txn.PartID, txn.Date)
		if err := row.Scan(&txn.ID); err != nil {
			zap.L().Error("can't create part sale transaction", zap.Error(err))
			return err
		}
		return nil
	})
}
