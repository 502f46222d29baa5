package partservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

type Repo interface {
	Create(ctx context.Context, part *domain.Part) (*domain.Part, error)
	FindByID(ctx context.Context, sc scope.Scope, id int) (*domain.Part, error)
	List(ctx context.Context, sc scope.Scope, search, status, currency string) ([]domain.PartWithCar, error)
	Sell(ctx context.Context, part *domain.Part, txn *domain.Transaction) error
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

// Create registers a part taken off a dismantled car. Cars in any other
// status have nothing to strip yet.
func (s *Service) Create(ctx context.Context, sc scope.Scope, userID, carID int, name string, estimatedPrice float64, currency, storageLocation string) (*domain.Part, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	car, err := s.carRepo.FindByID(ctx, sc, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, fmt.Errorf("%w: car not found", domain.ErrNotFound)
	}
	if car.Status != domain.CarStatusDismantled {
		return nil, fmt.Errorf("%w: parts can only be added to a dismantled car", domain.ErrConflict)
	}

	part := &domain.Part{
		CarID:           car.ID,
		UserID:          userID,
		Name:            name,
		EstimatedPrice:  estimatedPrice,
		Currency:        currency,
		Status:          domain.PartStatusAvailable,
		StorageLocation: storageLocation,
	}
	created, err := s.repo.Create(ctx, part)
	if err != nil {
		zap.L().Error("can't create part", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Sell marks a part sold at the negotiated price and appends exactly one
// income transaction. The estimate on the part is irrelevant here: the
// sale price is what was actually paid.
func (s *Service) Sell(ctx context.Context, sc scope.Scope, userID, partID int, salePrice float64, saleCurrency, buyer, notes string) (*domain.Part, *domain.Transaction, error) {
	if salePrice <= 0 {
		return nil, nil, fmt.Errorf("%w: sale price must be positive", domain.ErrValidation)
	}
	if saleCurrency == "" {
		return nil, nil, fmt.Errorf("%w: sale currency is required", domain.ErrValidation)
	}

	part, err := s.repo.FindByID(ctx, sc, partID)
	if err != nil {
		return nil, nil, err
	}
	if part == nil {
		return nil, nil, fmt.Errorf("%w: part not found", domain.ErrNotFound)
	}
	if !part.Status.CanTransition(domain.PartStatusSold) {
		return nil, nil, fmt.Errorf("%w: part already sold", domain.ErrConflict)
	}

	now := time.Now()
	part.Status = domain.PartStatusSold
	part.SoldAt = &now
	part.SalePrice = salePrice
	part.SaleCurrency = saleCurrency
	part.Buyer = buyer
	part.Notes = notes

	txn := &domain.Transaction{
		CarID:       part.CarID,
		UserID:      userID,
		Type:        domain.TransactionIncome,
		Amount:      salePrice,
		Currency:    saleCurrency,
		Category:    "parts",
		Description: fmt.Sprintf("Part sale: %s", part.Name),
		PartID:      &part.ID,
		Date:        now,
	}
	if err := s.repo.Sell(ctx, part, txn); err != nil {
		zap.L().Error("can't sell part", zap.Error(err))
		return nil, nil, err
	}
	zap.L().Info("part sold", zap.Int("part_id", part.ID), zap.Float64("amount", txn.Amount))
	return part, txn, nil
}

func (s *Service) List(ctx context.Context, sc scope.Scope, search, status, currency string) ([]domain.PartWithCar, error) {
	parts, err := s.repo.List(ctx, sc, search, status, currency)
	if err != nil {
		zap.L().Error("failed to list parts", zap.Error(err))
		return nil, err
	}
	return parts, nil
}
