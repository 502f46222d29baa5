// Package httperr translates the service error kinds into HTTP responses.
// Unexpected errors are logged and hidden behind a generic message.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/pkg/utils"
)

func Respond(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		zap.L().Error("unexpected error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
