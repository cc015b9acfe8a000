package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/service/authservice"
	"github.com/rollsgame/casino/pkg/utils"
)

type Service interface {
	Authenticate(ctx context.Context, clientID, secret string) (string, time.Time, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token exchanges gateway credentials for a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, expiresAt, err := h.authService.Authenticate(r.Context(), req.ClientID, req.Secret)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
