package wagers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/handlers/balance"
	"github.com/rollsgame/casino/internal/service/wagerservice"
	"github.com/rollsgame/casino/pkg/utils"
)

type Service interface {
	PlaceWager(ctx context.Context, accountID int64, gameID, tierKey string, stake int64) (*wagerservice.Result, error)
	PlaceMultiWager(ctx context.Context, accountID int64, gameID string, stakes map[string]int64) (*wagerservice.MultiResult, error)
	GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.WagerRecord, error)
}

type WagerHandler struct {
	wagerService Service
}

func New(wagerService Service) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
	}
}

// PlaceWager stakes one tier of one game and settles it atomically.
func (h *WagerHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	var req dto.WagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AccountID <= 0 || req.GameID == "" || req.TierKey == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.wagerService.PlaceWager(r.Context(), req.AccountID, req.GameID, req.TierKey, req.Stake)
	if err != nil {
		respondWagerError(w, err)
		return
	}

	response := dto.WagerResponseDTO{
		WagerID:     result.Record.WagerID,
		GameID:      result.Record.GameID,
		TierKey:     result.Record.TierKey,
		Stake:       result.Record.Stake,
		Won:         result.Record.Won,
		NetPayout:   result.Record.NetPayout,
		GrossPayout: result.Record.GrossPayout,
		Balance:     balance.BalanceDTO(result.Account),
	}
	if result.Reward != nil {
		response.Reward = &dto.RewardItemDTO{
			ItemID: result.Reward.ID,
			Name:   result.Reward.Name,
			Rarity: result.Reward.Rarity,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PlaceMultiWager stakes several tiers of one spin against a single draw.
func (h *WagerHandler) PlaceMultiWager(w http.ResponseWriter, r *http.Request) {
	var req dto.MultiWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AccountID <= 0 || req.GameID == "" || len(req.Stakes) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.wagerService.PlaceMultiWager(r.Context(), req.AccountID, req.GameID, req.Stakes)
	if err != nil {
		respondWagerError(w, err)
		return
	}

	legs := make([]dto.MultiWagerLegDTO, len(result.Legs))
	for i, leg := range result.Legs {
		legs[i] = dto.MultiWagerLegDTO{
			TierKey:   leg.TierKey,
			Stake:     leg.Stake,
			Won:       leg.Won,
			NetPayout: leg.NetPayout,
		}
	}
	response := dto.MultiWagerResponseDTO{
		SpinID:     result.SpinID,
		GameID:     req.GameID,
		WinningKey: result.WinningKey,
		TotalStake: result.TotalStake,
		TotalNet:   result.TotalNet,
		Legs:       legs,
		Balance:    balance.BalanceDTO(result.Account),
	}
	if result.Reward != nil {
		response.Reward = &dto.RewardItemDTO{
			ItemID: result.Reward.ID,
			Name:   result.Reward.Name,
			Rarity: result.Reward.Rarity,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWagers returns the account's most recent wagers, newest first.
func (h *WagerHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	accountID, ok := balance.AccountIDParam(w, r)
	if !ok {
		return
	}

	wagers, err := h.wagerService.GetHistory(r.Context(), accountID, balance.HistoryLimit(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wagers")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Wagers not found")
		return
	}

	response := make([]dto.WagerHistoryResponseDTO, len(wagers))
	for i, wr := range wagers {
		response[i] = dto.WagerHistoryResponseDTO{
			WagerID:   wr.WagerID,
			GameID:    wr.GameID,
			TierKey:   wr.TierKey,
			Stake:     wr.Stake,
			Won:       wr.Won,
			NetPayout: wr.NetPayout,
			CreatedAt: wr.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWagerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
	case errors.Is(err, domain.ErrStakeTooLow),
		errors.Is(err, domain.ErrStakeTooHigh),
		errors.Is(err, domain.ErrInvalidTier):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
