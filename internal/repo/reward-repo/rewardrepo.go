package rewardrepo

import (
	"context"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"github.com/rollsgame/casino/internal/rewards"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// LoadPool reads the reward catalog for startup validation. The pool is
// immutable for the process lifetime.
func (r *Repository) LoadPool(ctx context.Context) (string, []rewards.Item, error) {
	query := `
        SELECT item_id, name, rarity, weight, value, version
        FROM reward_pool
        ORDER BY item_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to load reward pool", zap.Error(err))
		return "", nil, err
	}
	defer rows.Close()

	var version string
	var items []rewards.Item
	for rows.Next() {
		var it rewards.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Rarity, &it.Weight, &it.Value, &version); err != nil {
			zap.L().Error("failed to scan reward item", zap.Error(err))
			return "", nil, err
		}
		items = append(items, it)
	}
	return version, items, nil
}

// Grant appends an ownership row. Runs inside the caller's transaction so the
// grant commits or rolls back together with the currency change it
// accompanies.
func (r *Repository) Grant(ctx context.Context, accountID, itemID int64, correlationID string) error {
	query := `
        INSERT INTO owned_items (account_id, item_id, correlation_id)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, accountID, itemID, correlationID); err != nil {
		zap.L().Error("failed to grant reward item", zap.Int64("item_id", itemID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListOwned(ctx context.Context, accountID int64) ([]domain.OwnedItem, error) {
	query := `
        SELECT id, account_id, item_id, correlation_id, acquired_at
        FROM owned_items
        WHERE account_id = $1
        ORDER BY acquired_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to list owned items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OwnedItem
	for rows.Next() {
		var it domain.OwnedItem
		if err := rows.Scan(&it.ID, &it.AccountID, &it.ItemID, &it.CorrelationID, &it.AcquiredAt); err != nil {
			zap.L().Error("failed to scan owned item", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
