package rentals

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/dto"
	"github.com/wgauto/crm/internal/handlers/httperr"
	"github.com/wgauto/crm/internal/scope"
	"github.com/wgauto/crm/pkg/auth"
	"github.com/wgauto/crm/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, sc scope.Scope, userID, carID int, clientName, clientPhone string, start, end time.Time, dailyPrice float64, currency string) (*domain.Rental, error)
	Complete(ctx context.Context, sc scope.Scope, userID, rentalID int) (*domain.Rental, *domain.Transaction, error)
	List(ctx context.Context, sc scope.Scope) ([]domain.RentalWithCar, error)
	Calendar(ctx context.Context, sc scope.Scope, year, month int) ([]domain.RentalWithCar, error)
}

type RentalHandler struct {
	rentalService Service
}

func New(rentalService Service) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
	}
}

// List godoc
//
//	@Summary		List rentals
//	@Description	List the caller's rentals with basic car info, newest first
//	@Tags			Rentals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RentalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals [get]
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	rentals, err := h.rentalService.List(r.Context(), sc)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.RentalResponseDTO, 0, len(rentals))
	for i := range rentals {
		response = append(response, dto.NewRentalWithCarResponse(&rentals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Start a rental
//	@Description	Open a rental on an active car; the car becomes rented and the total is fixed up front
//	@Tags			Rentals
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRentalRequestDTO	true	"Rental to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RentalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or dates"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		409	{object}	utils.Response	"Car unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals [post]
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	var req dto.CreateRentalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
		return
	}
	rental, err := h.rentalService.Create(r.Context(), sc, ident.UserID, req.CarID, req.ClientName, req.ClientPhone, start, end, req.DailyPrice, req.Currency)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRentalResponse(rental))
}

// Complete godoc
//
//	@Summary		Complete a rental
//	@Description	Close an active rental, record the income transaction and free the car
//	@Tags			Rentals
//	@Produce		json
//	@Param			id	path	int	true	"Rental ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CompleteRentalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid rental ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rental not found"
//	@Failure		409	{object}	utils.Response	"Rental already completed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/{id}/complete [post]
func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	rentalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid rental ID")
		return
	}
	rental, txn, err := h.rentalService.Complete(r.Context(), sc, ident.UserID, rentalID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteRentalResponseDTO{
		Rental:      dto.NewRentalResponse(rental),
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// Calendar godoc
//
//	@Summary		Rental calendar for a month
//	@Description	List the rentals whose span overlaps the given calendar month
//	@Tags			Rentals
//	@Produce		json
//	@Param			year	path	int	true	"Year"
//	@Param			month	path	int	true	"Month (1-12)"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RentalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid year or month"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/calendar/{year}/{month} [get]
func (h *RentalHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	rentals, err := h.rentalService.Calendar(r.Context(), sc, year, month)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.RentalResponseDTO, 0, len(rentals))
	for i := range rentals {
		response = append(response, dto.NewRentalWithCarResponse(&rentals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
