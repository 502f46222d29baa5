package carservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/scope"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTransactionRepo, *MockRentalRepo, *MockPartRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txnRepo := NewMockTransactionRepo(ctrl)
	rentalRepo := NewMockRentalRepo(ctrl)
	partRepo := NewMockPartRepo(ctrl)

	service := New(repo, txnRepo, rentalRepo, partRepo)
	defer ctrl.Finish()
	return service, repo, txnRepo, rentalRepo, partRepo
}

func TestCreate(t *testing.T) {
	service, carRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		brand         string
		model         string
		price         float64
		currency      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful creation",
			brand:    "Toyota",
			model:    "Prius",
			price:    7500,
			currency: "USD",
			prepareMock: func() {
				carRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, car *domain.Car) (*domain.Car, error) {
					assert.Equal(t, domain.CarStatusActive, car.Status)
					assert.Equal(t, 1, car.UserID)
					car.ID = 1
					return car, nil
				})
			},
		},
		{
			name:          "Missing brand",
			brand:         "",
			model:         "Prius",
			price:         7500,
			currency:      "USD",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Non-positive price",
			brand:         "Toyota",
			model:         "Prius",
			price:         0,
			currency:      "USD",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing currency",
			brand:         "Toyota",
			model:         "Prius",
			price:         7500,
			currency:      "",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			car, err := service.Create(context.Background(), 1, tt.brand, tt.model, 2018, "VIN123", tt.price, tt.currency)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, car)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, car.ID)
			}
		})
	}
}

func TestRecordExpense(t *testing.T) {
	service, carRepo, txnRepo, _, _ := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	car := &domain.Car{ID: 1, Status: domain.CarStatusActive, UserID: 1}

	tests := []struct {
		name          string
		amount        float64
		currency      string
		category      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Expense recorded",
			amount:   100,
			currency: "GEL",
			category: "repair",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(car, nil)
				txnRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, domain.TransactionExpense, txn.Type)
					assert.Equal(t, "repair", txn.Category)
					txn.ID = 3
					return txn, nil
				})
			},
		},
		{
			name:     "Expense on a dismantled car",
			amount:   50,
			currency: "GEL",
			category: "other",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusDismantled}, nil)
				txnRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
					txn.ID = 4
					return txn, nil
				})
			},
		},
		{
			name:          "Non-positive amount",
			amount:        -10,
			currency:      "GEL",
			category:      "repair",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Unknown category",
			amount:        100,
			currency:      "GEL",
			category:      "bribes",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Car not found",
			amount:   100,
			currency: "GEL",
			category: "repair",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			txn, err := service.RecordExpense(context.Background(), sc, 1, 1, tt.amount, tt.currency, tt.category, "note")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
			}
		})
	}
}

func TestDismantle(t *testing.T) {
	service, carRepo, _, _, _ := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Active car dismantled",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusActive}, nil)
				carRepo.EXPECT().UpdateStatus(context.Background(), 1, domain.CarStatusActive, domain.CarStatusDismantled).
					Return(&domain.Car{ID: 1, Status: domain.CarStatusDismantled}, nil)
			},
		},
		{
			name: "Rented car rejected",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusRented}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Already dismantled",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusDismantled}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Lost the status race",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(&domain.Car{ID: 1, Status: domain.CarStatusActive}, nil)
				carRepo.EXPECT().UpdateStatus(context.Background(), 1, domain.CarStatusActive, domain.CarStatusDismantled).
					Return(nil, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Car not found",
			prepareMock: func() {
				carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			car, err := service.Dismantle(context.Background(), sc, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, car)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.CarStatusDismantled, car.Status)
			}
		})
	}
}

func TestGetDetails(t *testing.T) {
	service, carRepo, txnRepo, rentalRepo, partRepo := NewMock(t)
	sc := scope.ForUser(1, domain.RoleUser)

	car := &domain.Car{ID: 1, Brand: "Toyota", Status: domain.CarStatusActive}

	t.Run("Aggregates all sections", func(t *testing.T) {
		carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(car, nil)
		txnRepo.EXPECT().ListByCar(gomock.Any(), 1).Return([]domain.Transaction{{ID: 1}}, nil)
		rentalRepo.EXPECT().ListByCar(gomock.Any(), 1).Return([]domain.Rental{{ID: 2}}, nil)
		partRepo.EXPECT().ListByCar(gomock.Any(), 1).Return([]domain.Part{{ID: 3}}, nil)
		txnRepo.EXPECT().ProfitabilityByCar(gomock.Any(), 1).Return([]domain.Profitability{{Currency: "GEL", TotalIncome: 300, TotalExpenses: 100}}, nil)

		details, err := service.GetDetails(context.Background(), sc, 1)
		assert.NoError(t, err)
		assert.Equal(t, car, details.Car)
		assert.Len(t, details.Transactions, 1)
		assert.Len(t, details.Rentals, 1)
		assert.Len(t, details.Parts, 1)
		assert.Len(t, details.Profitability, 1)
	})

	t.Run("Car not found", func(t *testing.T) {
		carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(nil, nil)

		details, err := service.GetDetails(context.Background(), sc, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, details)
	})

	t.Run("Section query fails", func(t *testing.T) {
		carRepo.EXPECT().FindByID(context.Background(), sc, 1).Return(car, nil)
		txnRepo.EXPECT().ListByCar(gomock.Any(), 1).Return(nil, errors.New("database error")).MaxTimes(1)
		rentalRepo.EXPECT().ListByCar(gomock.Any(), 1).Return(nil, errors.New("database error")).MaxTimes(1)
		partRepo.EXPECT().ListByCar(gomock.Any(), 1).Return(nil, nil).MaxTimes(1)
		txnRepo.EXPECT().ProfitabilityByCar(gomock.Any(), 1).Return(nil, nil).MaxTimes(1)

		details, err := service.GetDetails(context.Background(), sc, 1)
		assert.Error(t, err)
		assert.Nil(t, details)
	})
}

func TestList(t *testing.T) {
	service, carRepo, _, _, _ := NewMock(t)
	sc := scope.ForUser(1, domain.RoleAdmin)

	carRepo.EXPECT().List(context.Background(), sc, "prius", "active").
		Return([]domain.Car{{ID: 1, Model: "Prius"}}, nil)

	cars, err := service.List(context.Background(), sc, "prius", "active")
	assert.NoError(t, err)
	assert.Len(t, cars, 1)
}
