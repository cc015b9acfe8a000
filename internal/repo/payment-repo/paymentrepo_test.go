package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rollsgame/casino/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func testPayment() *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ExternalChargeID: "ch_1GqIC8LzdXK9rLvw",
		AccountID:        1,
		GrossAmount:      499,
		Currency:         "USD",
		ProductType:      domain.ProductCredits,
		ProductQuantity:  500,
		Status:           domain.PaymentStatusCompleted,
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "First notification inserts",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"payment_id", "created_at"}).AddRow(int64(10), now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_records`)).
					WithArgs("ch_1GqIC8LzdXK9rLvw", int64(1), int64(499), "USD", domain.ProductCredits, int64(500), domain.PaymentStatusCompleted).
					WillReturnRows(rows)
			},
		},
		{
			name: "Replayed charge id maps to ErrAlreadyProcessed",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_records`)).
					WithArgs("ch_1GqIC8LzdXK9rLvw", int64(1), int64(499), "USD", domain.ProductCredits, int64(500), domain.PaymentStatusCompleted).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectErr: domain.ErrAlreadyProcessed,
		},
		{
			name: "Other database errors pass through",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_records`)).
					WithArgs("ch_1GqIC8LzdXK9rLvw", int64(1), int64(499), "USD", domain.ProductCredits, int64(500), domain.PaymentStatusCompleted).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Insert(context.Background(), testPayment())

			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrAlreadyProcessed) {
					assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
				}
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), saved.PaymentID)
				assert.Equal(t, now, saved.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByExternalID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"payment_id", "external_charge_id", "account_id", "gross_amount", "currency", "product_type", "product_quantity", "status", "created_at"}).
			AddRow(int64(10), "ch_1GqIC8LzdXK9rLvw", int64(1), int64(499), "USD", domain.ProductCredits, int64(500), domain.PaymentStatusCompleted, now)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM payment_records`)).
			WithArgs("ch_1GqIC8LzdXK9rLvw").
			WillReturnRows(rows)

		p, err := repo.GetByExternalID(context.Background(), "ch_1GqIC8LzdXK9rLvw")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), p.PaymentID)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM payment_records`)).
			WithArgs("ch_missing").
			WillReturnError(pgx.ErrNoRows)

		p, err := repo.GetByExternalID(context.Background(), "ch_missing")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"payment_id", "external_charge_id", "account_id", "gross_amount", "currency", "product_type", "product_quantity", "status", "created_at"}).
		AddRow(int64(11), "ch_second", int64(1), int64(999), "USD", domain.ProductBundle, int64(1000), domain.PaymentStatusCompleted, now).
		AddRow(int64(10), "ch_first", int64(1), int64(499), "USD", domain.ProductCredits, int64(500), domain.PaymentStatusCompleted, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM payment_records`)).
		WithArgs(int64(1), 50).
		WillReturnRows(rows)

	payments, err := repo.ListByAccount(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "ch_second", payments[0].ExternalChargeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
