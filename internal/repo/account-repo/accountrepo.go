package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const accountColumns = `user_id, credits_balance, spins_balance, total_deposited, total_withdrawn, total_wagered, total_won, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.UserID, &a.CreditsBalance, &a.SpinsBalance, &a.TotalDeposited, &a.TotalWithdrawn, &a.TotalWagered, &a.TotalWon, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) CreateAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
        RETURNING ` + accountColumns + `
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// AdjustBalance applies both currency deltas and appends one ledger entry per
// non-zero currency in a single transaction. The account row is locked FOR
// UPDATE for the duration, so concurrent adjustments for one account
// serialize and the reconciliation invariant holds under concurrent writers.
// Returns domain.ErrInsufficientFunds, with nothing applied, if any resulting
// balance would go negative.
func (r *Repository) AdjustBalance(ctx context.Context, userID int64, deltas domain.Deltas, reason domain.Reason, correlationID string) (*domain.Account, error) {
	var updated *domain.Account
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		lockQuery := `
            SELECT credits_balance, spins_balance
            FROM accounts
            WHERE user_id = $1
            FOR UPDATE
        `
		var credits, spins int64
		if err := r.db.QueryRow(ctx, lockQuery, userID).Scan(&credits, &spins); err != nil {
			zap.L().Error("failed to lock account", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}

		if credits+deltas.Credits < 0 || spins+deltas.Spins < 0 {
			return domain.ErrInsufficientFunds
		}

		totals := lifetimeTotals(reason, deltas)
		updateQuery := `
            UPDATE accounts
            SET credits_balance = credits_balance + $2,
                spins_balance = spins_balance + $3,
                total_deposited = total_deposited + $4,
                total_withdrawn = total_withdrawn + $5,
                total_wagered = total_wagered + $6,
                total_won = total_won + $7,
                updated_at = NOW()
            WHERE user_id = $1
            RETURNING ` + accountColumns + `
        `
		account, err := scanAccount(r.db.QueryRow(ctx, updateQuery,
			userID, deltas.Credits, deltas.Spins,
			totals.deposited, totals.withdrawn, totals.wagered, totals.won))
		if err != nil {
			zap.L().Error("failed to update account balance", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}

		entryQuery := `
            INSERT INTO ledger_entries (account_id, currency, delta, reason, correlation_id)
            VALUES ($1, $2, $3, $4, $5)
        `
		if deltas.Credits != 0 {
			if _, err := r.db.Exec(ctx, entryQuery, userID, domain.CurrencyCredits, deltas.Credits, reason, correlationID); err != nil {
				zap.L().Error("failed to append credits ledger entry", zap.Error(err))
				return err
			}
		}
		if deltas.Spins != 0 {
			if _, err := r.db.Exec(ctx, entryQuery, userID, domain.CurrencySpins, deltas.Spins, reason, correlationID); err != nil {
				zap.L().Error("failed to append spins ledger entry", zap.Error(err))
				return err
			}
		}

		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListIDs pages through account ids for the reconciliation sweep.
func (r *Repository) ListIDs(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	query := `
        SELECT user_id
        FROM accounts
        WHERE user_id > $1
        ORDER BY user_id
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, afterID, limit)
	if err != nil {
		zap.L().Error("failed to list account ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan account id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type totals struct {
	deposited int64
	withdrawn int64
	wagered   int64
	won       int64
}

// lifetimeTotals folds a balance change into the matching lifetime counters in
// the same UPDATE, so balance and totals can never diverge under concurrency.
func lifetimeTotals(reason domain.Reason, deltas domain.Deltas) totals {
	sum := deltas.Credits + deltas.Spins
	var t totals
	switch reason {
	case domain.ReasonWagerDebit:
		t.wagered = -sum
	case domain.ReasonWagerCredit:
		t.won = sum
	case domain.ReasonPaymentCredit:
		t.deposited = sum
	case domain.ReasonAdminAdjustment:
		if sum < 0 {
			t.withdrawn = -sum
		}
	}
	return t
}
