package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/pg"
	"github.com/wgauto/crm/internal/scope"
)

// Repository reads and appends the transaction ledger. Rows are never
// updated or deleted.
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

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (car_id, user_id, type, amount, currency, category, description, rental_id, part_id, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			t.CarID, t.UserID, t.Type, t.Amount, t.Currency, t.Category, t.Description, t.RentalID, t.PartID, t.Date)
		if err := row.Scan(&t.ID); err != nil {
			zap.L().Error("can't create transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) ListByCar(ctx context.Context, carID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, car_id, user_id, type, amount, currency, COALESCE(category, ''), COALESCE(description, ''), rental_id, part_id, date
        FROM transactions
        WHERE car_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		zap.L().Error("can't get car transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.CarID, &t.UserID, &t.Type, &t.Amount, &t.Currency, &t.Category, &t.Description, &t.RentalID, &t.PartID, &t.Date)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// SumByCurrency groups in-scope transactions of one type by currency.
// Amounts in different currencies are never combined.
func (r *Repository) SumByCurrency(ctx context.Context, sc scope.Scope, txType domain.TransactionType) ([]domain.CurrencyTotal, error) {
	query := `
        SELECT currency, SUM(amount) AS total
        FROM transactions
        WHERE type = $1
    `
	args := []any{txType}
	clause, args := sc.Filter("user_id", args)
	query += clause + `
        GROUP BY currency
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't sum transactions by currency", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CurrencyTotal
	for rows.Next() {
		var t domain.CurrencyTotal
		if err := rows.Scan(&t.Currency, &t.Total); err != nil {
			zap.L().Error("can't scan currency total row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, nil
}

func (r *Repository) ProfitabilityByCar(ctx context.Context, carID int) ([]domain.Profitability, error) {
	query := `
        SELECT
            currency,
            SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS total_income,
            SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS total_expenses
        FROM transactions
        WHERE car_id = $1
        GROUP BY currency
    `
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		zap.L().Error("can't get car profitability", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Profitability
	for rows.Next() {
		var p domain.Profitability
		if err := rows.Scan(&p.Currency, &p.TotalIncome, &p.TotalExpenses); err != nil {
			zap.L().Error("can't scan profitability row", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
