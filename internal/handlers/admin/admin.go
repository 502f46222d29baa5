package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/dto"
	"github.com/wgauto/crm/internal/handlers/httperr"
	"github.com/wgauto/crm/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ToggleActive(ctx context.Context, userID int) (*domain.User, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	List every registered user with their role and activation flag
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AdminUserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := make([]dto.AdminUserResponseDTO, 0, len(users))
	for i := range users {
		response = append(response, dto.NewAdminUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ToggleActive godoc
//
//	@Summary		Toggle user activation
//	@Description	Flip a user's activation flag; deactivated users cannot log in
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	int	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminUserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/toggle [put]
func (h *AdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	user, err := h.adminService.ToggleActive(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdminUserResponse(user))
}
