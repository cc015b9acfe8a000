package wagerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func testRecord() *domain.WagerRecord {
	return &domain.WagerRecord{
		WagerID:      "w-1",
		AccountID:    1,
		GameID:       "lucky2",
		TierKey:      "blue",
		Currency:     domain.CurrencyCredits,
		Stake:        100,
		Won:          true,
		DrawnValue:   4200,
		MultiplierBP: 20000,
		GrossPayout:  200,
		NetPayout:    198,
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	record := testRecord()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Record inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wager_records`)).
					WithArgs(record.WagerID, record.AccountID, record.GameID, record.TierKey, record.Currency,
						record.Stake, record.Won, record.DrawnValue, record.MultiplierBP,
						record.GrossPayout, record.NetPayout, record.RewardItemID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Insert failure",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wager_records`)).
					WithArgs(record.WagerID, record.AccountID, record.GameID, record.TierKey, record.Currency,
						record.Stake, record.Won, record.DrawnValue, record.MultiplierBP,
						record.GrossPayout, record.NetPayout, record.RewardItemID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), record)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CountResolved(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Count returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(int64(4))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
			WithArgs(int64(1), "roulette").
			WillReturnRows(rows)

		count, err := repo.CountResolved(context.Background(), 1, "roulette")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
			WithArgs(int64(1), "roulette").
			WillReturnError(errors.New("db error"))

		_, err := repo.CountResolved(context.Background(), 1, "roulette")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Records returned", func(t *testing.T) {
		rewardItemID := int64(2)
		rows := pgxmock.NewRows([]string{"wager_id", "account_id", "game_id", "tier_key", "currency", "stake", "won", "drawn_value", "multiplier_bp", "gross_payout", "net_payout", "reward_item_id", "created_at"}).
			AddRow("w-2", int64(1), "lucky2", "blue", domain.CurrencyCredits, int64(100), true, int64(4200), int64(20000), int64(200), int64(198), &rewardItemID, now).
			AddRow("w-1", int64(1), "mono", "c1", domain.CurrencySpins, int64(10), false, int64(8000), int64(15400), int64(0), int64(0), (*int64)(nil), now.Add(-time.Minute))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wager_records`)).
			WithArgs(int64(1), 50).
			WillReturnRows(rows)

		wagers, err := repo.ListByAccount(context.Background(), 1, 50)
		assert.NoError(t, err)
		assert.Len(t, wagers, 2)
		assert.Equal(t, "w-2", wagers[0].WagerID)
		assert.Nil(t, wagers[1].RewardItemID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wager_records`)).
			WithArgs(int64(1), 50).
			WillReturnError(errors.New("db error"))

		_, err := repo.ListByAccount(context.Background(), 1, 50)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
