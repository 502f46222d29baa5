package dashboardservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

type TransactionRepo interface {
	SumByCurrency(ctx context.Context, sc scope.Scope, txType domain.TransactionType) ([]domain.CurrencyTotal, error)
}

type CarRepo interface {
	CountByStatus(ctx context.Context, sc scope.Scope) ([]domain.CarStatusCount, error)
}

type RentalRepo interface {
	CountActive(ctx context.Context, sc scope.Scope) (int, error)
}

type Service struct {
	txnRepo    TransactionRepo
	carRepo    CarRepo
	rentalRepo RentalRepo
}

func New(txnRepo TransactionRepo, carRepo CarRepo, rentalRepo RentalRepo) *Service {
	return &Service{
		txnRepo:    txnRepo,
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
	}
}

// Dashboard computes the all-time totals visible to the caller: income
// and expenses grouped per currency (never converted or combined), car
// counts by status and the number of running rentals. The four aggregates
// are independent and run concurrently.
func (s *Service) Dashboard(ctx context.Context, sc scope.Scope) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dashboard.Income, err = s.txnRepo.SumByCurrency(gctx, sc, domain.TransactionIncome)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Expenses, err = s.txnRepo.SumByCurrency(gctx, sc, domain.TransactionExpense)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Cars, err = s.carRepo.CountByStatus(gctx, sc)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.ActiveRentals, err = s.rentalRepo.CountActive(gctx, sc)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build dashboard", zap.Error(err))
		return nil, err
	}
	return dashboard, nil
}
