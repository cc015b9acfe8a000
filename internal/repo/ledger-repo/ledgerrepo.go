package ledgerrepo

import (
	"context"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the append-only ledger. Writes happen exclusively through
// the account repository's AdjustBalance, inside the same transaction as the
// balance change.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, currency, delta, reason, correlation_id, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Currency, &e.Delta, &e.Reason, &e.CorrelationID, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SumDeltas returns the per-currency sum of all entries for an account. Used
// by the reconciliation sweep to verify the invariant
// balance(currency) == sum(deltas where currency).
func (r *Repository) SumDeltas(ctx context.Context, accountID int64) (domain.Deltas, error) {
	query := `
        SELECT
            COALESCE(SUM(delta) FILTER (WHERE currency = 'credits'), 0),
            COALESCE(SUM(delta) FILTER (WHERE currency = 'spins'), 0)
        FROM ledger_entries
        WHERE account_id = $1
    `
	var sums domain.Deltas
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&sums.Credits, &sums.Spins); err != nil {
		zap.L().Error("failed to sum ledger deltas", zap.Int64("account_id", accountID), zap.Error(err))
		return domain.Deltas{}, err
	}
	return sums, nil
}
