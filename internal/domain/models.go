package domain

import "time"

type Currency string

const (
	CurrencyCredits Currency = "credits"
	CurrencySpins   Currency = "spins"
)

type Reason string

const (
	ReasonWagerDebit      Reason = "wager_debit"
	ReasonWagerCredit     Reason = "wager_credit"
	ReasonPaymentCredit   Reason = "payment_credit"
	ReasonAdminAdjustment Reason = "admin_adjustment"
	ReasonRewardGrant     Reason = "reward_grant"
)

// HouseAccountID is the reserved account that collects forfeited stakes and
// house-edge cuts. Seeded by migration.
const HouseAccountID int64 = 0

// Deltas is a signed balance change applied to both currencies at once.
type Deltas struct {
	Credits int64
	Spins   int64
}

func (d Deltas) IsZero() bool {
	return d.Credits == 0 && d.Spins == 0
}

type Account struct {
	UserID         int64     `db:"user_id"`
	CreditsBalance int64     `db:"credits_balance"`
	SpinsBalance   int64     `db:"spins_balance"`
	TotalDeposited int64     `db:"total_deposited"`
	TotalWithdrawn int64     `db:"total_withdrawn"`
	TotalWagered   int64     `db:"total_wagered"`
	TotalWon       int64     `db:"total_won"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (a *Account) Balance(c Currency) int64 {
	if c == CurrencySpins {
		return a.SpinsBalance
	}
	return a.CreditsBalance
}

type LedgerEntry struct {
	ID            int64     `db:"id"`
	AccountID     int64     `db:"account_id"`
	Currency      Currency  `db:"currency"`
	Delta         int64     `db:"delta"`
	Reason        Reason    `db:"reason"`
	CorrelationID string    `db:"correlation_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type WagerRecord struct {
	WagerID      string    `db:"wager_id"`
	AccountID    int64     `db:"account_id"`
	GameID       string    `db:"game_id"`
	TierKey      string    `db:"tier_key"`
	Currency     Currency  `db:"currency"`
	Stake        int64     `db:"stake"`
	Won          bool      `db:"won"`
	DrawnValue   int64     `db:"drawn_value"`
	MultiplierBP int64     `db:"multiplier_bp"`
	GrossPayout  int64     `db:"gross_payout"`
	NetPayout    int64     `db:"net_payout"`
	RewardItemID *int64    `db:"reward_item_id"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	ProductCredits = "credits"
	ProductSpins   = "spins"
	ProductBundle  = "bundle"
)

type PaymentRecord struct {
	PaymentID        int64     `db:"payment_id"`
	ExternalChargeID string    `db:"external_charge_id"`
	AccountID        int64     `db:"account_id"`
	GrossAmount      int64     `db:"gross_amount"`
	Currency         string    `db:"currency"`
	ProductType      string    `db:"product_type"`
	ProductQuantity  int64     `db:"product_quantity"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

type OwnedItem struct {
	ID            int64     `db:"id"`
	AccountID     int64     `db:"account_id"`
	ItemID        int64     `db:"item_id"`
	CorrelationID string    `db:"correlation_id"`
	AcquiredAt    time.Time `db:"acquired_at"`
}
