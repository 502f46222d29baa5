package service

import (
	"context"

	"github.com/wgauto/crm/internal/handlers/admin"
	"github.com/wgauto/crm/internal/handlers/auth"
	"github.com/wgauto/crm/internal/handlers/cars"
	"github.com/wgauto/crm/internal/handlers/dashboard"
	"github.com/wgauto/crm/internal/handlers/parts"
	"github.com/wgauto/crm/internal/handlers/rentals"

	pkgauth "github.com/wgauto/crm/pkg/auth"

	"github.com/wgauto/crm/internal/repo"
	adminservice "github.com/wgauto/crm/internal/service/adminservice"
	authservice "github.com/wgauto/crm/internal/service/authservice"
	carservice "github.com/wgauto/crm/internal/service/carservice"
	dashboardservice "github.com/wgauto/crm/internal/service/dashboardservice"
	partservice "github.com/wgauto/crm/internal/service/partservice"
	rentalservice "github.com/wgauto/crm/internal/service/rentalservice"
)

// AdminSeeder creates the bootstrap admin account on startup.
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context, email, password string) error
}

type Services struct {
	AuthService      auth.Service
	CarService       cars.Service
	RentalService    rentals.Service
	PartService      parts.Service
	DashboardService dashboard.Service
	AdminService     admin.Service

	Seeder AdminSeeder
}

func New(repo *repo.Repositories) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	carService := carservice.New(repo.CarRepo, repo.TransactionRepo, repo.RentalRepo, repo.PartRepo)
	rentalService := rentalservice.New(repo.RentalRepo, repo.CarRepo)
	partService := partservice.New(repo.PartRepo, repo.CarRepo)
	dashboardService := dashboardservice.New(repo.TransactionRepo, repo.CarRepo, repo.RentalRepo)
	adminService := adminservice.New(repo.UserRepo)

	return &Services{
		AuthService:      authService,
		CarService:       carService,
		RentalService:    rentalService,
		PartService:      partService,
		DashboardService: dashboardService,
		AdminService:     adminService,
		Seeder:           authService,
	}
}
