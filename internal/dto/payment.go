package dto

type PaymentRequestDTO struct {
	ExternalChargeID string `json:"external_charge_id" validate:"required"`
	AccountID        int64  `json:"account_id" validate:"required"`
	GrossAmount      int64  `json:"gross_amount" validate:"required,gt=0"`
	Currency         string `json:"currency" validate:"required"`
	ProductType      string `json:"product_type" validate:"required,oneof=credits spins bundle"`
	ProductQuantity  int64  `json:"product_quantity" validate:"required,gt=0"`
}

type PaymentResponseDTO struct {
	Replayed bool               `json:"replayed"`
	Balance  BalanceResponseDTO `json:"balance"`
	Reward   *RewardItemDTO     `json:"reward,omitempty"`
}

type PaymentHistoryResponseDTO struct {
	ExternalChargeID string `json:"external_charge_id"`
	GrossAmount      int64  `json:"gross_amount" example:"499"`
	Currency         string `json:"currency" example:"USD"`
	ProductType      string `json:"product_type" example:"bundle"`
	ProductQuantity  int64  `json:"product_quantity" example:"500"`
	Status           string `json:"status" example:"completed"`
	CreatedAt        string `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
