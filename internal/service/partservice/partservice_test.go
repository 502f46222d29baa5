package partservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCarRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	carRepo := NewMockCarRepo(ctrl)

	service := New(repo, carRepo)
	defer ctrl.Finish()
	return service, repo, carRepo
}

func TestCreate(t *testing.T) {
	service, partRepo, carRepo := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	tests := []struct {
		name          string
		partName      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Part stripped off a dismantled car",
			partName: "Alternator",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusDismantled}, nil)
				partRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, part *domain.Part) (*domain.Part, error) {
					assert.Equal(t, domain.PartStatusAvailable, part.Status)
					part.ID = 3
					return part, nil
				})
			},
		},
		{
			name:          "Missing name",
			partName:      "",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Car not found",
			partName: "Alternator",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "Car still active",
			partName: "Alternator",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusActive}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:     "Car rented out",
			partName: "Alternator",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusRented}, nil)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			part, err := service.Create(context.Background(), sc, 1, 1, tt.partName, 80, "GEL", "Shelf B3")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, part)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, part.ID)
			}
		})
	}
}

func TestSell(t *testing.T) {
	service, partRepo, _ := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	availablePart := func() *domain.Part {
		return &domain.Part{
			ID:             3,
			CarID:          1,
			UserID:         1,
			Name:           "Alternator",
			EstimatedPrice: 80,
			Currency:       "GEL",
			Status:         domain.PartStatusAvailable,
		}
	}

	tests := []struct {
		name          string
		salePrice     float64
		saleCurrency  string
		prepareMock   func()
		expectedError error
	}{
		{
			name:         "Sold at the negotiated price",
			salePrice:    120,
			saleCurrency: "GEL",
			prepareMock: func() {
				partRepo.EXPECT().FindByID(context.Background(), sc, 3).Return(availablePart(), nil)
				partRepo.EXPECT().Sell(context.Background(), gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, part *domain.Part, txn *domain.Transaction) error {
					assert.Equal(t, domain.PartStatusSold, part.Status)
					assert.NotNil(t, part.SoldAt)
					assert.Equal(t, 120.0, part.SalePrice)
					assert.Equal(t, domain.TransactionIncome, txn.Type)
					assert.Equal(t, 120.0, txn.Amount)
					assert.Equal(t, "parts", txn.Category)
					assert.Equal(t, "Part sale: Alternator", txn.Description)
					assert.Equal(t, &part.ID, txn.PartID)
					return nil
				})
			},
		},
		{
			name:          "Non-positive sale price",
			salePrice:     0,
			saleCurrency:  "GEL",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing sale currency",
			salePrice:     120,
			saleCurrency:  "",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:         "Part not found",
			salePrice:    120,
			saleCurrency: "GEL",
			prepareMock: func() {
				partRepo.EXPECT().FindByID(context.Background(), sc, 3).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:         "Part already sold",
			salePrice:    120,
			saleCurrency: "GEL",
			prepareMock: func() {
				sold := availablePart()
				sold.Status = domain.PartStatusSold
				partRepo.EXPECT().FindByID(context.Background(), sc, 3).Return(sold, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:         "Lost the sale race",
			salePrice:    120,
			saleCurrency: "GEL",
			prepareMock: func() {
				partRepo.EXPECT().FindByID(context.Background(), sc, 3).Return(availablePart(), nil)
				partRepo.EXPECT().Sell(context.Background(), gomock.Any(), gomock.Any()).Return(domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			part, txn, err := service.Sell(context.Background(), sc, 1, 3, tt.salePrice, tt.saleCurrency, "Nika", "pickup")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, part)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PartStatusSold, part.Status)
				assert.Equal(t, 120.0, txn.Amount)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, partRepo, _ := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	t.Run("Filters pass through", func(t *testing.T) {
		partRepo.EXPECT().List(context.Background(), sc, "alt", "available", "GEL").
			Return([]domain.PartWithCar{{Part: domain.Part{ID: 3, Name: "Alternator"}}}, nil)

		parts, err := service.List(context.Background(), sc, "alt", "available", "GEL")
		assert.NoError(t, err)
		assert.Len(t, parts, 1)
	})

	t.Run("Database error", func(t *testing.T) {
		partRepo.EXPECT().List(context.Background(), sc, "", "", "").Return(nil, errors.New("database error"))

		_, err := service.List(context.Background(), sc, "", "", "")
		assert.Error(t, err)
	})
}
