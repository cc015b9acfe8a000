package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/handlers/balance"
	"github.com/rollsgame/casino/pkg/utils"
)

type Service interface {
	AdminAdjust(ctx context.Context, userID int64, deltas domain.Deltas) (*domain.Account, error)
}

type AdminHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
	}
}

// Adjust applies a manual balance correction. Deltas may be negative; a
// correction that would drive a balance below zero is rejected.
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AccountID < 0 || (req.Credits == 0 && req.Spins == 0) {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to adjust")
		return
	}

	account, err := h.ledgerService.AdminAdjust(r.Context(), req.AccountID, domain.Deltas{
		Credits: req.Credits,
		Spins:   req.Spins,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
		case errors.Is(err, domain.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, balance.BalanceDTO(account))
}
