package dashboard

import (
	"context"
	"net/http"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/dto"
	"github.com/wgauto/crm/internal/handlers/httperr"
	"github.com/wgauto/crm/internal/scope"
	"github.com/wgauto/crm/pkg/auth"
	"github.com/wgauto/crm/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context, sc scope.Scope) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard godoc
//
//	@Summary		Dashboard statistics
//	@Description	All-time income and expense totals per currency, car counts by status and the number of active rentals
//	@Tags			Stats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/dashboard [get]
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident := r.Context().Value(auth.IdentityKey).(auth.Identity)
	sc := scope.ForUser(ident.UserID, domain.Role(ident.Role))

	stats, err := h.dashboardService.Dashboard(r.Context(), sc)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboardResponse(stats))
}
