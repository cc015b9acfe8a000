package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rollsgame/casino/internal/domain"
)

type AccountRepo interface {
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, userID int64) (*domain.Account, error)
	AdjustBalance(ctx context.Context, userID int64, deltas domain.Deltas, reason domain.Reason, correlationID string) (*domain.Account, error)
}

type LedgerRepo interface {
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.LedgerEntry, error)
}

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// GetOrCreate returns the account, creating it with zero balances on first
// contact.
func (s *Service) GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if account != nil {
		return account, nil
	}
	account, err = s.accountRepo.CreateAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return account, nil
}

// AdjustBalance is the single write path into account balances. Rejections
// (insufficient funds) pass through untouched; storage failures are wrapped as
// ErrUnavailable for the caller to retry with a new correlation id.
func (s *Service) AdjustBalance(ctx context.Context, userID int64, deltas domain.Deltas, reason domain.Reason, correlationID string) (*domain.Account, error) {
	account, err := s.accountRepo.AdjustBalance(ctx, userID, deltas, reason, correlationID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		zap.L().Error("failed to adjust balance",
			zap.Int64("user_id", userID),
			zap.String("reason", string(reason)),
			zap.String("correlation_id", correlationID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return account, nil
}

// AdminAdjust applies a manual correction with its own correlation id.
func (s *Service) AdminAdjust(ctx context.Context, userID int64, deltas domain.Deltas) (*domain.Account, error) {
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	correlationID := "admin:" + uuid.NewString()
	return s.AdjustBalance(ctx, userID, deltas, domain.ReasonAdminAdjustment, correlationID)
}

func (s *Service) GetHistory(ctx context.Context, userID int64, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByAccount(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return entries, nil
}
