package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rollsgame/casino/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(accountRepo, ledgerRepo)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo
}

func TestGetOrCreate(t *testing.T) {
	t.Run("existing account is returned", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		account := &domain.Account{UserID: 1, CreditsBalance: 100}
		accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(account, nil)

		got, err := service.GetOrCreate(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("unseen account is created with zero balances", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		created := &domain.Account{UserID: 2}
		accountRepo.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(nil, nil)
		accountRepo.EXPECT().CreateAccount(gomock.Any(), int64(2)).Return(created, nil)

		got, err := service.GetOrCreate(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("storage failure maps to unavailable", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		_, err := service.GetOrCreate(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestAdjustBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		updated := &domain.Account{UserID: 1, CreditsBalance: 50}
		accountRepo.EXPECT().
			AdjustBalance(gomock.Any(), int64(1), domain.Deltas{Credits: -50}, domain.ReasonWagerDebit, "w-1").
			Return(updated, nil)

		got, err := service.AdjustBalance(context.Background(), 1, domain.Deltas{Credits: -50}, domain.ReasonWagerDebit, "w-1")
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("insufficient funds passes through unwrapped", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		accountRepo.EXPECT().
			AdjustBalance(gomock.Any(), int64(1), gomock.Any(), domain.ReasonWagerDebit, "w-1").
			Return(nil, domain.ErrInsufficientFunds)

		_, err := service.AdjustBalance(context.Background(), 1, domain.Deltas{Credits: -500}, domain.ReasonWagerDebit, "w-1")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.NotErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("storage failure maps to unavailable", func(t *testing.T) {
		service, accountRepo, _ := NewMock(t)
		accountRepo.EXPECT().
			AdjustBalance(gomock.Any(), int64(1), gomock.Any(), domain.ReasonWagerDebit, "w-1").
			Return(nil, errors.New("db error"))

		_, err := service.AdjustBalance(context.Background(), 1, domain.Deltas{Credits: -50}, domain.ReasonWagerDebit, "w-1")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestAdminAdjust(t *testing.T) {
	service, accountRepo, _ := NewMock(t)
	updated := &domain.Account{UserID: 1, CreditsBalance: 130}

	accountRepo.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&domain.Account{UserID: 1, CreditsBalance: 100}, nil)
	accountRepo.EXPECT().
		AdjustBalance(gomock.Any(), int64(1), domain.Deltas{Credits: 30}, domain.ReasonAdminAdjustment, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ domain.Deltas, _ domain.Reason, correlationID string) (*domain.Account, error) {
			assert.Contains(t, correlationID, "admin:")
			return updated, nil
		})

	got, err := service.AdminAdjust(context.Background(), 1, domain.Deltas{Credits: 30})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestLedgerGetHistory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service, _, ledgerRepo := NewMock(t)
		ledgerRepo.EXPECT().ListByAccount(gomock.Any(), int64(1), 50).
			Return([]domain.LedgerEntry{{ID: 1, Delta: -100}}, nil)

		entries, err := service.GetHistory(context.Background(), 1, 50)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("storage failure maps to unavailable", func(t *testing.T) {
		service, _, ledgerRepo := NewMock(t)
		ledgerRepo.EXPECT().ListByAccount(gomock.Any(), int64(1), 50).
			Return(nil, errors.New("db error"))

		_, err := service.GetHistory(context.Background(), 1, 50)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}
