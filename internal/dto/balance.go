package dto

import "time"

type BalanceResponseDTO struct {
	AccountID      int64 `json:"account_id" example:"42"`
	Credits        int64 `json:"credits" example:"500"`
	Spins          int64 `json:"spins" example:"3"`
	TotalDeposited int64 `json:"total_deposited" example:"1000"`
	TotalWithdrawn int64 `json:"total_withdrawn" example:"0"`
	TotalWagered   int64 `json:"total_wagered" example:"450"`
	TotalWon       int64 `json:"total_won" example:"120"`
}

type LedgerEntryResponseDTO struct {
	Currency      string    `json:"currency" example:"credits"`
	Delta         int64     `json:"delta" example:"-100"`
	Reason        string    `json:"reason" example:"wager_debit"`
	CorrelationID string    `json:"correlation_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdjustRequestDTO struct {
	AccountID int64 `json:"account_id" validate:"required"`
	Credits   int64 `json:"credits"`
	Spins     int64 `json:"spins"`
}

type OwnedItemResponseDTO struct {
	ItemID     int64     `json:"item_id" example:"7"`
	Name       string    `json:"name" example:"Silver Chalice"`
	Rarity     string    `json:"rarity" example:"rare"`
	AcquiredAt time.Time `json:"acquired_at"`
}
