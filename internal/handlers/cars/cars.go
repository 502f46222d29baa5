package cars

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/dto"
	"github.com/wgauto/crm/internal/handlers/httperr"
	"github.com/wgauto/crm/internal/scope"
	"github.com/wgauto/crm/pkg/auth"
	"github.com/wgauto/crm/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, brand, model string, year int, vin string, price float64, currency string) (*domain.Car, error)
	List(ctx context.Context, sc scope.Scope, search, status string) ([]domain.Car, error)
	GetDetails(ctx context.Context, sc scope.Scope, carID int) (*domain.CarDetails, error)
	RecordExpense(ctx context.Context, sc scope.Scope, userID, carID int, amount float64, currency, category, description string) (*domain.Transaction, error)
	Dismantle(ctx context.Context, sc scope.Scope, carID int) (*domain.Car, error)
}

type CarHandler struct {
	carService Service
}

func New(carService Service) *CarHandler {
	return &CarHandler{
		carService: carService,
	}
}

// List godoc
//
//	@Summary		List cars
//	@Description	List the caller's cars, optionally filtered by search text and status
//	@Tags			Cars
//	@Produce		json
//	@Param			search	query	string	false	"Substring match over brand, model, VIN and year"
//	@Param			status	query	string	false	"Car status filter"	Enums(active, rented, dismantled)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CarResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cars [get]
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	cars, err := h.carService.List(r.Context(), sc, r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.CarResponseDTO, 0, len(cars))
	for i := range cars {
		response = append(response, dto.NewCarResponse(&cars[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Add a car
//	@Description	Register a new car owned by the caller
//	@Tags			Cars
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateCarRequestDTO	true	"Car to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CarResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cars [post]
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)

	var req dto.CreateCarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	car, err := h.carService.Create(r.Context(), ident.UserID, req.Brand, req.Model, req.Year, req.VIN, req.Price, req.Currency)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCarResponse(car))
}

// Details godoc
//
//	@Summary		Get car details
//	@Description	Return one car with its transactions, rentals, parts and per-currency profitability
//	@Tags			Cars
//	@Produce		json
//	@Param			id	path	int	true	"Car ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CarDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid car ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cars/{id}/details [get]
func (h *CarHandler) Details(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	carID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}
	details, err := h.carService.GetDetails(r.Context(), sc, carID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarDetailsResponse(details))
}

// AddExpense godoc
//
//	@Summary		Record a car expense
//	@Description	Append an expense transaction to the car's ledger
//	@Tags			Cars
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Car ID"
//	@Param			request	body	dto.AddExpenseRequestDTO	true	"Expense to record"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or category"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cars/{id}/expense [post]
func (h *CarHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	carID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}
	var req dto.AddExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	txn, err := h.carService.RecordExpense(r.Context(), sc, ident.UserID, carID, req.Amount, req.Currency, req.Category, req.Description)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Dismantle godoc
//
//	@Summary		Dismantle a car
//	@Description	Move an active car to the terminal dismantled state so parts can be listed from it
//	@Tags			Cars
//	@Produce		json
//	@Param			id	path	int	true	"Car ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CarResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid car ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		409	{object}	utils.Response	"Car is rented or already dismantled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cars/{id}/dismantle [post]
func (h *CarHandler) Dismantle(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	carID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid car ID")
		return
	}
	car, err := h.carService.Dismantle(r.Context(), sc, carID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCarResponse(car))
}
