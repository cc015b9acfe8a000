package balance

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/rewards"
	"github.com/rollsgame/casino/pkg/utils"
)

const defaultHistoryLimit = 50

type Service interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error)
	GetHistory(ctx context.Context, userID int64, limit int) ([]domain.LedgerEntry, error)
}

type RewardService interface {
	ListOwned(ctx context.Context, accountID int64) ([]domain.OwnedItem, error)
	Pool() *rewards.Pool
}

type BalanceHandler struct {
	balanceService Service
	rewardService  RewardService
}

func New(balanceService Service, rewardService RewardService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		rewardService:  rewardService,
	}
}

// GetBalance returns both currency balances and the lifetime totals. An
// unseen account is created with zero balances rather than rejected.
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDParam(w, r)
	if !ok {
		return
	}

	account, err := h.balanceService.GetOrCreate(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, BalanceDTO(account))
}

// GetHistory returns the most recent ledger entries, newest first.
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.balanceService.GetHistory(r.Context(), accountID, HistoryLimit(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "History not found")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			Currency:      string(e.Currency),
			Delta:         e.Delta,
			Reason:        string(e.Reason),
			CorrelationID: e.CorrelationID,
			CreatedAt:     e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRewards lists the account's owned reward items.
func (h *BalanceHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	accountID, ok := AccountIDParam(w, r)
	if !ok {
		return
	}

	owned, err := h.rewardService.ListOwned(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}
	if len(owned) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Rewards not found")
		return
	}

	pool := h.rewardService.Pool()
	response := make([]dto.OwnedItemResponseDTO, len(owned))
	for i, o := range owned {
		item, _ := pool.Item(o.ItemID)
		response[i] = dto.OwnedItemResponseDTO{
			ItemID:     o.ItemID,
			Name:       item.Name,
			Rarity:     item.Rarity,
			AcquiredAt: o.AcquiredAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AccountIDParam parses the {accountID} route parameter, responding with 400
// on garbage. Shared by the account-scoped read handlers.
func AccountIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return 0, false
	}
	return accountID, true
}

func HistoryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return limit
}

func BalanceDTO(account *domain.Account) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		AccountID:      account.UserID,
		Credits:        account.CreditsBalance,
		Spins:          account.SpinsBalance,
		TotalDeposited: account.TotalDeposited,
		TotalWithdrawn: account.TotalWithdrawn,
		TotalWagered:   account.TotalWagered,
		TotalWon:       account.TotalWon,
	}
}
