package wagerrepo

import (
	"context"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Save persists one resolved wager. Records are immutable; there is no update
// path.
func (r *Repository) Save(ctx context.Context, w *domain.WagerRecord) error {
	query := `
        INSERT INTO wager_records (wager_id, account_id, game_id, tier_key, currency, stake, won, drawn_value, multiplier_bp, gross_payout, net_payout, reward_item_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := r.db.Exec(ctx, query,
		w.WagerID, w.AccountID, w.GameID, w.TierKey, w.Currency, w.Stake,
		w.Won, w.DrawnValue, w.MultiplierBP, w.GrossPayout, w.NetPayout, w.RewardItemID)
	if err != nil {
		zap.L().Error("failed to save wager record", zap.String("wager_id", w.WagerID), zap.Error(err))
		return err
	}
	return nil
}

// CountResolved returns how many wagers the account has settled in one game.
// Drives counter-threshold reward eligibility.
func (r *Repository) CountResolved(ctx context.Context, accountID int64, gameID string) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM wager_records
        WHERE account_id = $1 AND game_id = $2
    `
	var count int64
	if err := r.db.QueryRow(ctx, query, accountID, gameID).Scan(&count); err != nil {
		zap.L().Error("failed to count wagers", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.WagerRecord, error) {
	query := `
        SELECT wager_id, account_id, game_id, tier_key, currency, stake, won, drawn_value, multiplier_bp, gross_payout, net_payout, reward_item_id, created_at
        FROM wager_records
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to list wager records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.WagerRecord
	for rows.Next() {
		var w domain.WagerRecord
		if err := rows.Scan(&w.WagerID, &w.AccountID, &w.GameID, &w.TierKey, &w.Currency, &w.Stake, &w.Won, &w.DrawnValue, &w.MultiplierBP, &w.GrossPayout, &w.NetPayout, &w.RewardItemID, &w.CreatedAt); err != nil {
			zap.L().Error("failed to scan wager record", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, w)
	}
	return wagers, nil
}
