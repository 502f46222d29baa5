package rentalservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

type Repo interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Rental, error)
	Complete(ctx context.Context, rental *domain.Rental, txn *domain.Transaction) error
	List(ctx context.Context, sc scope.Scope) ([]domain.RentalWithCar, error)
	Calendar(ctx context.Context, sc scope.Scope, first, last time.Time) ([]domain.RentalWithCar, error)
}

type CarRepo interface {
	FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Car, error)
}

type Service struct {
	repo    Repo
	carRepo CarRepo
}

func New(repo Repo, carRepo CarRepo) *Service {
	return &Service{
		repo:    repo,
		carRepo: carRepo,
	}
}

// Create opens a rental on an active car. The stored total is derived
// once here: both endpoint days are billed, so a one-day rental costs one
// daily price.
func (s *Service) Create(ctx context.Context, sc scope.Scope, userID, carID int, clientName, clientPhone string, start, end time.Time, dailyPrice float64, currency string) (*domain.Rental, error) {
	if clientName == "" {
		return nil, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	if dailyPrice <= 0 {
		return nil, fmt.Errorf("%w: daily price must be positive", domain.ErrValidation)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}

	car, err := s.carRepo.FindByID(ctx, sc, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car not found", domain.ErrNotFound)
	}
	if !car.Status.CanTransition(domain.CarStatusRented) {
		return nil, fmt.Errorf("%w: car unavailable", domain.ErrConflict)
	}

	days := inclusiveDays(start, end)
	rental := &domain.Rental{
		CarID:       car.ID,
		UserID:      userID,
		ClientName:  clientName,
		ClientPhone: clientPhone,
		StartDate:   start,
		EndDate:     end,
		DailyPrice:  dailyPrice,
		Currency:    currency,
		TotalAmount: float64(days) * dailyPrice,
		Status:      domain.RentalStatusActive,
	}
	created, err := s.repo.Create(ctx, rental)
	if err != nil {
		zap.L().Error("can't create rental", zap.Error(err))
		return nil, err
	}
	zap.L().Info("rental created", zap.Int("rental_id", created.ID), zap.Int("car_id", car.ID))
	return created, nil
}

// Complete finishes a rental: exactly one income transaction for the
// stored total, and the car goes back to active. The repo runs all of it
// in one database transaction; a second completion fails with a conflict
// and produces nothing.
func (s *Service) Complete(ctx context.Context, sc scope.Scope, userID, rentalID int) (*domain.Rental, *domain.Transaction, error) {
	rental, err := s.repo.FindByID(ctx, sc, rentalID)
	if err != nil {
		return nil, nil, err
	}
	if rental == nil {
		return nil, nil, fmt.Errorf("%w: rental not found", domain.ErrNotFound)
	}
	if !rental.Status.CanTransition(domain.RentalStatusCompleted) {
		return nil, nil, fmt.Errorf("%w: rental already completed", domain.ErrConflict)
	}

	now := time.Now()
	rental.Status = domain.RentalStatusCompleted
	rental.CompletedAt = &now

	txn := &domain.Transaction{
		CarID:       rental.CarID,
		UserID:      userID,
		Type:        domain.TransactionIncome,
		Amount:      rental.TotalAmount,
		Currency:    rental.Currency,
		Category:    "rental",
		Description: fmt.Sprintf("Rental income from %s", rental.ClientName),
		RentalID:    &rental.ID,
		Date:        now,
	}
	if err := s.repo.Complete(ctx, rental, txn); err != nil {
		zap.L().Error("can't complete rental", zap.Error(err))
		return nil, nil, err
	}
	zap.L().Info("rental completed", zap.Int("rental_id", rental.ID), zap.Float64("amount", txn.Amount))
	return rental, txn, nil
}

func (s *Service) List(ctx context.Context, sc scope.Scope) ([]domain.RentalWithCar, error) {
	rentals, err := s.repo.List(ctx, sc)
	if err != nil {
		zap.L().Error("failed to list rentals", zap.Error(err))
		return nil, err
	}
	return rentals, nil
}

// Calendar returns the in-scope rentals whose span intersects the given
// calendar month.
func (s *Service) Calendar(ctx context.Context, sc scope.Scope, year, month int) ([]domain.RentalWithCar, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
	}
	if year < 1 {
		return nil, fmt.Errorf("%w: invalid year", domain.ErrValidation)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rentals, err := s.repo.Calendar(ctx, sc, first, last)
	if err != nil {
		zap.L().Error("failed to get rental calendar", zap.Error(err))
		return nil, err
	}
	return rentals, nil
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
