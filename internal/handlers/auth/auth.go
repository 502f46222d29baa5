package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wgauto/crm/internal/domain"
	"github.com/wgauto/crm/internal/dto"
	"github.com/wgauto/crm/internal/handlers/httperr"
	"github.com/wgauto/crm/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with email and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with an active user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  dto.NewUserDTO(user),
	})
}
