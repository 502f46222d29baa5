package repo

import (
	"github.com/wgauto/crm/internal/pg"
	carrepo "github.com/wgauto/crm/internal/repo/car-repo"
	partrepo "github.com/wgauto/crm/internal/repo/part-repo"
	rentalrepo "github.com/wgauto/crm/internal/repo/rental-repo"
	transactionrepo "github.com/wgauto/crm/internal/repo/transaction-repo"
	userrepo "github.com/wgauto/crm/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	CarRepo         *carrepo.Repository
	RentalRepo      *rentalrepo.Repository
	PartRepo        *partrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		CarRepo:         carrepo.New(conn),
		RentalRepo:      rentalrepo.New(conn, txManager),
		PartRepo:        partrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn, txManager),
	}
}
