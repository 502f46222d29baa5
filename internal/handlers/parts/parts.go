package parts

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
	Create(ctx context.Context, sc scope.Scope, userID, carID int, name string, estimatedPrice float64, currency, storageLocation string) (*domain.Part, error)
	Sell(ctx context.Context, sc scope.Scope, userID, partID int, salePrice float64, saleCurrency, buyer, notes string) (*domain.Part, *domain.Transaction, error)
	List(ctx context.Context, sc scope.Scope, search, status, currency string) ([]domain.PartWithCar, error)
}

type PartHandler struct {
	partService Service
}

func New(partService Service) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// List godoc
//
//	@Summary		List parts
//	@Description	List the caller's parts with source car info, optionally filtered
//	@Tags			Parts
//	@Produce		json
//	@Param			search		query	string	false	"Substring match over part name, storage location, car brand and model"
//	@Param			status		query	string	false	"Part status filter"	Enums(available, sold)
//	@Param			currency	query	string	false	"Currency filter"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/parts [get]
func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	q := r.URL.Query()
	parts, err := h.partService.List(r.Context(), sc, q.Get("search"), q.Get("status"), q.Get("currency"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.PartResponseDTO, 0, len(parts))
	for i := range parts {
		response = append(response, dto.NewPartWithCarResponse(&parts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Add a part
//	@Description	Register a part stripped off a dismantled car
//	@Tags			Parts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreatePartRequestDTO	true	"Part to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PartResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Car not found"
//	@Failure		409	{object}	utils.Response	"Car is not dismantled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/parts [post]
func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	var req dto.CreatePartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	part, err := h.partService.Create(r.Context(), sc, ident.UserID, req.CarID, req.Name, req.EstimatedPrice, req.Currency, req.StorageLocation)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPartResponse(part))
}

// Sell godoc
//
//	@Summary		Sell a part
//	@Description	Mark an available part sold and record the income transaction
//	@Tags			Parts
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Part ID"
//	@Param			request	body	dto.SellPartRequestDTO	true	"Sale terms"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellPartResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or sale price"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Part not found"
//	@Failure		409	{object}	utils.Response	"Part already sold"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/parts/{id}/sell [post]
func (h *PartHandler) Sell(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	partID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid part ID")
		return
	}
	var req dto.SellPartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	part, txn, err := h.partService.Sell(r.Context(), sc, ident.UserID, partID, req.SalePrice, req.SaleCurrency, req.Buyer, req.Notes)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellPartResponseDTO{
		Part:        dto.NewPartResponse(part),
		Transaction: dto.NewTransactionResponse(txn),
	})
}
