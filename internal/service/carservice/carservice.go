package carservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

type Repo interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Car, error)
	List(ctx context.Context, sc scope.Scope, search, status string) ([]domain.Car, error)
	UpdateStatus(ctx context.Context, id int, from, to domain.CarStatus) (*domain.Car, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	ListByCar(ctx context.Context, carID int) ([]domain.Transaction, error)
	ProfitabilityByCar(ctx context.Context, carID int) ([]domain.Profitability, error)
}

type RentalRepo interface {
	ListByCar(ctx context.Context, carID int) ([]domain.Rental, error)
}

type PartRepo interface {
	ListByCar(ctx context.Context, carID int) ([]domain.Part, error)
}

type Service struct {
	repo       Repo
	txnRepo    TransactionRepo
	rentalRepo RentalRepo
	partRepo   PartRepo
}

func New(repo Repo, txnRepo TransactionRepo, rentalRepo RentalRepo, partRepo PartRepo) *Service {
	return &Service{
		repo:       repo,
		txnRepo:    txnRepo,
		rentalRepo: rentalRepo,
		partRepo:   partRepo,
	}
}

func (s *Service) Create(ctx context.Context, userID int, brand, model string, year int, vin string, price float64, currency string) (*domain.Car, error) {
	if brand == "" || model == "" {
		return nil, fmt.Errorf("%w: brand and model are required", domain.ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	car := &domain.Car{
		Brand:    brand,
		Model:    model,
		Year:     year,
		VIN:      vin,
		Price:    price,
		Currency: currency,
		Status:   domain.CarStatusActive,
		UserID:   userID,
	}
	created, err := s.repo.Create(ctx, car)
	if err != nil {
		zap.L().Error("can't create car", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, sc scope.Scope, search, status string) ([]domain.Car, error) {
	cars, err := s.repo.List(ctx, sc, search, status)
	if err != nil {
		zap.L().Error("failed to list cars", zap.Error(err))
		return nil, err
	}
	return cars, nil
}

// RecordExpense appends a manual expense transaction to the car's ledger.
// The car's status is untouched: expenses are legal in every state.
func (s *Service) RecordExpense(ctx context.Context, sc scope.Scope, userID, carID int, amount float64, currency, category, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if !domain.ValidExpenseCategory(category) {
		return nil, fmt.Errorf("%w: invalid category", domain.ErrValidation)
	}

	car, err := s.repo.FindByID(ctx, sc, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car not found", domain.ErrNotFound)
	}

	txn := &domain.Transaction{
		CarID:       car.ID,
		UserID:      userID,
		Type:        domain.TransactionExpense,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Description: description,
		Date:        time.Now(),
	}
	created, err := s.txnRepo.Create(ctx, txn)
	if err != nil {
		zap.L().Error("can't record expense", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Dismantle is the active -> dismantled transition. A rented car has no
// such edge and is rejected; dismantled is terminal.
func (s *Service) Dismantle(ctx context.Context, sc scope.Scope, carID int) (*domain.Car, error) {
	car, err := s.repo.FindByID(ctx, sc, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car not found", domain.ErrNotFound)
	}
	if !car.Status.CanTransition(domain.CarStatusDismantled) {
		return nil, fmt.Errorf("%w: cannot dismantle a %s car", domain.ErrConflict, car.Status)
	}

	updated, err := s.repo.UpdateStatus(ctx, car.ID, car.Status, domain.CarStatusDismantled)
	if err != nil {
		zap.L().Error("can't dismantle car", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		// Lost a race with a rental or another dismantle.
		return nil, fmt.Errorf("%w: cannot dismantle a %s car", domain.ErrConflict, car.Status)
	}
	zap.L().Info("car dismantled", zap.Int("car_id", car.ID))
	return updated, nil
}

// GetDetails aggregates everything known about one car. The component
// queries are independent and run concurrently.
func (s *Service) GetDetails(ctx context.Context, sc scope.Scope, carID int) (*domain.CarDetails, error) {
	car, err := s.repo.FindByID(ctx, sc, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car not found", domain.ErrNotFound)
	}

	details := &domain.CarDetails{Car: car}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details.Transactions, err = s.txnRepo.ListByCar(gctx, car.ID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Rentals, err = s.rentalRepo.ListByCar(gctx, car.ID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Parts, err = s.partRepo.ListByCar(gctx, car.ID)
		return err
	})
	g.Go(func() error {
		var err error
		details.Profitability, err = s.txnRepo.ProfitabilityByCar(gctx, car.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to get car details", zap.Error(err))
		return nil, err
	}
	return details, nil
}
