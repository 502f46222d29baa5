package handlers

import (
	"net/http"

	_ "github.com/wgauto/crm/docs"
	adminhandlers "github.com/wgauto/crm/internal/handlers/admin"
	authhandlers "github.com/wgauto/crm/internal/handlers/auth"
	carshandlers "github.com/wgauto/crm/internal/handlers/cars"
	dashboardhandlers "github.com/wgauto/crm/internal/handlers/dashboard"
	partshandlers "github.com/wgauto/crm/internal/handlers/parts"
	rentalshandlers "github.com/wgauto/crm/internal/handlers/rentals"
	"github.com/wgauto/crm/internal/service"
	"github.com/wgauto/crm/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CarHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	AddExpense(w http.ResponseWriter, r *http.Request)
	Dismantle(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type PartHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Sell(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	ToggleActive(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	CarHandler       CarHandler
	RentalHandler    RentalHandler
	PartHandler      PartHandler
	DashboardHandler DashboardHandler
	AdminHandler     AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		CarHandler:       carshandlers.New(s.CarService),
		RentalHandler:    rentalshandlers.New(s.RentalService),
		PartHandler:      partshandlers.New(s.PartService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		AdminHandler:     adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/cars", func(r chi.Router) {
				r.Get("/", h.CarHandler.List)
				r.Post("/", h.CarHandler.Create)
				r.Get("/{id}/details", h.CarHandler.Details)
				r.Post("/{id}/expense", h.CarHandler.AddExpense)
				r.Post("/{id}/dismantle", h.CarHandler.Dismantle)
			})
			r.Route("/rentals", func(r chi.Router) {
				r.Get("/", h.RentalHandler.List)
				r.Post("/", h.RentalHandler.Create)
				r.Post("/{id}/complete", h.RentalHandler.Complete)
				r.Get("/calendar/{year}/{month}", h.RentalHandler.Calendar)
			})
			r.Route("/parts", func(r chi.Router) {
				r.Get("/", h.PartHandler.List)
				r.Post("/", h.PartHandler.Create)
				r.Post("/{id}/sell", h.PartHandler.Sell)
			})
			r.Get("/stats/dashboard", h.DashboardHandler.Dashboard)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/users", h.AdminHandler.ListUsers)
				r.Put("/users/{id}/toggle", h.AdminHandler.ToggleActive)
			})
		})
	})

	return r
}
