package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Insert creates the payment record keyed by external charge id. The unique
// constraint on external_charge_id is the sole replay guard: a duplicate
// insert, including one racing a concurrent notification, surfaces as
// domain.ErrAlreadyProcessed. No read-then-write check precedes it.
func (r *Repository) Insert(ctx context.Context, p *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	query := `
        INSERT INTO payment_records (external_charge_id, account_id, gross_amount, currency, product_type, product_quantity, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING payment_id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		p.ExternalChargeID, p.AccountID, p.GrossAmount, p.Currency, p.ProductType, p.ProductQuantity, p.Status)

	saved := *p
	if err := row.Scan(&saved.PaymentID, &saved.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrAlreadyProcessed
		}
		zap.L().Error("failed to insert payment record", zap.String("external_charge_id", p.ExternalChargeID), zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalChargeID string) (*domain.PaymentRecord, error) {
	query := `
        SELECT payment_id, external_charge_id, account_id, gross_amount, currency, product_type, product_quantity, status, created_at
        FROM payment_records
        WHERE external_charge_id = $1
    `
	var p domain.PaymentRecord
	err := r.db.QueryRow(ctx, query, externalChargeID).Scan(
		&p.PaymentID, &p.ExternalChargeID, &p.AccountID, &p.GrossAmount, &p.Currency, &p.ProductType, &p.ProductQuantity, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get payment record", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.PaymentRecord, error) {
	query := `
        SELECT payment_id, external_charge_id, account_id, gross_amount, currency, product_type, product_quantity, status, created_at
        FROM payment_records
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to list payment records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentRecord
	for rows.Next() {
		var p domain.PaymentRecord
		if err := rows.Scan(&p.PaymentID, &p.ExternalChargeID, &p.AccountID, &p.GrossAmount, &p.Currency, &p.ProductType, &p.ProductQuantity, &p.Status, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan payment record", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
