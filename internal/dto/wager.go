package dto

type WagerRequestDTO struct {
	AccountID int64  `json:"account_id" validate:"required"`
	GameID    string `json:"game_id" validate:"required"`
	TierKey   string `json:"tier_key" validate:"required"`
	Stake     int64  `json:"stake" validate:"required,gt=0"`
}

type MultiWagerRequestDTO struct {
	AccountID int64            `json:"account_id" validate:"required"`
	GameID    string           `json:"game_id" validate:"required"`
	Stakes    map[string]int64 `json:"stakes" validate:"required"`
}

type RewardItemDTO struct {
	ItemID int64  `json:"item_id" example:"7"`
	Name   string `json:"name" example:"Silver Chalice"`
	Rarity string `json:"rarity" example:"rare"`
}

type WagerResponseDTO struct {
	WagerID     string             `json:"wager_id"`
	GameID      string             `json:"game_id" example:"lucky2"`
	TierKey     string             `json:"tier_key" example:"blue"`
	Stake       int64              `json:"stake" example:"100"`
	Won         bool               `json:"won"`
	NetPayout   int64              `json:"net_payout" example:"198"`
	GrossPayout int64              `json:"gross_payout" example:"200"`
	Balance     BalanceResponseDTO `json:"balance"`
	Reward      *RewardItemDTO     `json:"reward,omitempty"`
}

type MultiWagerLegDTO struct {
	TierKey   string `json:"tier_key" example:"red"`
	Stake     int64  `json:"stake" example:"50"`
	Won       bool   `json:"won"`
	NetPayout int64  `json:"net_payout" example:"0"`
}

type MultiWagerResponseDTO struct {
	SpinID     string             `json:"spin_id"`
	GameID     string             `json:"game_id" example:"roulette"`
	WinningKey string             `json:"winning_key" example:"x2"`
	TotalStake int64              `json:"total_stake" example:"150"`
	TotalNet   int64              `json:"total_net" example:"95"`
	Legs       []MultiWagerLegDTO `json:"legs"`
	Balance    BalanceResponseDTO `json:"balance"`
	Reward     *RewardItemDTO     `json:"reward,omitempty"`
}

type WagerHistoryResponseDTO struct {
	WagerID   string `json:"wager_id"`
	GameID    string `json:"game_id" example:"mono"`
	TierKey   string `json:"tier_key" example:"c4"`
	Stake     int64  `json:"stake" example:"1"`
	Won       bool   `json:"won"`
	NetPayout int64  `json:"net_payout" example:"3"`
	CreatedAt string `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
