package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wgauto/crm/internal/pg"
	carrepo "github.com/wgauto/crm/internal/repo/car-repo"
	partrepo "github.com/wgauto/crm/internal/repo/part-repo"
	rentalrepo "github.com/wgauto/crm/internal/repo/rental-repo"
	transactionrepo "github.com/wgauto/crm/internal/repo/transaction-repo"
	userrepo "github.com/wgauto/crm/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.CarRepo)
	assert.NotNil(t, repo.RentalRepo)
	assert.NotNil(t, repo.PartRepo)
	assert.NotNil(t, repo.TransactionRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &carrepo.Repository{}, repo.CarRepo)
	assert.IsType(t, &rentalrepo.Repository{}, repo.RentalRepo)
	assert.IsType(t, &partrepo.Repository{}, repo.PartRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
