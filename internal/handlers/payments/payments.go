package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/dto"
	"github.com/rollsgame/casino/internal/handlers/balance"
	"github.com/rollsgame/casino/internal/service/paymentservice"
	"github.com/rollsgame/casino/pkg/utils"
	"github.com/rollsgame/casino/pkg/validate"
)

type Service interface {
	ApplyPayment(ctx context.Context, payment paymentservice.Payment) (*paymentservice.Result, error)
	GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.PaymentRecord, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment applies a provider notification. A replayed charge id is
// acknowledged with 200 and replayed=true so the provider stops retrying.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsChargeID(req.ExternalChargeID) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid charge id")
		return
	}
	if req.AccountID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.paymentService.ApplyPayment(r.Context(), paymentservice.Payment{
		ExternalChargeID: req.ExternalChargeID,
		AccountID:        req.AccountID,
		GrossAmount:      req.GrossAmount,
		Currency:         req.Currency,
		ProductType:      req.ProductType,
		ProductQuantity:  req.ProductQuantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStakeTooLow), errors.Is(err, domain.ErrInvalidTier):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.PaymentResponseDTO{
		Replayed: result.Replayed,
		Balance:  balance.BalanceDTO(result.Account),
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

// GetPayments returns the account's payment history, newest first.
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	accountID, ok := balance.AccountIDParam(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentService.GetHistory(r.Context(), accountID, balance.HistoryLimit(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payments not found")
		return
	}

	response := make([]dto.PaymentHistoryResponseDTO, len(payments))
	for i, p := range payments {
		response[i] = dto.PaymentHistoryResponseDTO{
			ExternalChargeID: p.ExternalChargeID,
			GrossAmount:      p.GrossAmount,
			Currency:         p.Currency,
			ProductType:      p.ProductType,
			ProductQuantity:  p.ProductQuantity,
			Status:           p.Status,
			CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
