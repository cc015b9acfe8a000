package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/pg"
	"github.com/rollsgame/casino/internal/rewards"
	"github.com/rollsgame/casino/pkg/metrics"
)

type PaymentRepo interface {
	Insert(ctx context.Context, p *domain.PaymentRecord) (*domain.PaymentRecord, error)
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.PaymentRecord, error)
}

type Ledger interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error)
	AdjustBalance(ctx context.Context, userID int64, deltas domain.Deltas, reason domain.Reason, correlationID string) (*domain.Account, error)
}

type Rewards interface {
	GrantBundled(ctx context.Context, accountID int64, correlationID string) (*rewards.Item, error)
}

// Payment is an incoming provider notification. GrossAmount is what the
// provider charged; the product fields say what the account is owed.
type Payment struct {
	ExternalChargeID string
	AccountID        int64
	GrossAmount      int64
	Currency         string
	ProductType      string
	ProductQuantity  int64
}

// BundleBonusSpins is granted on top of the credits when a bundle product is
// purchased.
const BundleBonusSpins int64 = 10

// Result reports a settled notification. Replayed is set when the charge id
// had already been applied; balances then reflect no change from this call.
type Result struct {
	Record   *domain.PaymentRecord
	Account  *domain.Account
	Reward   *rewards.Item
	Replayed bool
}

type Service struct {
	paymentRepo PaymentRepo
	ledger      Ledger
	rewards     Rewards
	txManager   pg.TXManager
}

func New(paymentRepo PaymentRepo, ledger Ledger, rewardsSvc Rewards, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		ledger:      ledger,
		rewards:     rewardsSvc,
		txManager:   txManager,
	}
}

// ApplyPayment applies a provider notification exactly once. The payment row
// insert and the balance credit share one transaction, so the unique charge-id
// constraint guards both: a replayed notification is acknowledged without a
// second credit.
func (s *Service) ApplyPayment(ctx context.Context, payment Payment) (*Result, error) {
	if payment.GrossAmount <= 0 || payment.ProductQuantity <= 0 {
		return nil, fmt.Errorf("non-positive payment amount: %w", domain.ErrStakeTooLow)
	}
	deltas, err := productDeltas(payment.ProductType, payment.ProductQuantity)
	if err != nil {
		return nil, err
	}

	var result Result
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.GetOrCreate(ctx, payment.AccountID); err != nil {
			return err
		}

		record := &domain.PaymentRecord{
			ExternalChargeID: payment.ExternalChargeID,
			AccountID:        payment.AccountID,
			GrossAmount:      payment.GrossAmount,
			Currency:         payment.Currency,
			ProductType:      payment.ProductType,
			ProductQuantity:  payment.ProductQuantity,
			Status:           domain.PaymentStatusCompleted,
		}
		saved, err := s.paymentRepo.Insert(ctx, record)
		if err != nil {
			return err
		}

		correlationID := "payment:" + strconv.FormatInt(saved.PaymentID, 10)
		account, err := s.ledger.AdjustBalance(ctx, payment.AccountID, deltas, domain.ReasonPaymentCredit, correlationID)
		if err != nil {
			return err
		}

		var reward *rewards.Item
		if payment.ProductType == domain.ProductBundle {
			account, err = s.ledger.AdjustBalance(ctx, payment.AccountID, domain.Deltas{Spins: BundleBonusSpins}, domain.ReasonRewardGrant, correlationID)
			if err != nil {
				return err
			}
			reward, err = s.rewards.GrantBundled(ctx, payment.AccountID, correlationID)
			if err != nil {
				return err
			}
		}

		result = Result{Record: saved, Account: account, Reward: reward}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyProcessed) {
		metrics.PaymentsTotal.WithLabelValues("replayed").Inc()
		zap.L().Info("payment replayed",
			zap.String("external_charge_id", payment.ExternalChargeID),
			zap.Int64("account_id", payment.AccountID))
		account, getErr := s.ledger.GetOrCreate(ctx, payment.AccountID)
		if getErr != nil {
			return nil, getErr
		}
		return &Result{Account: account, Replayed: true}, nil
	}
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues("failed").Inc()
		if errors.Is(err, domain.ErrStakeTooLow) || errors.Is(err, domain.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	metrics.PaymentsTotal.WithLabelValues("applied").Inc()
	zap.L().Info("payment applied",
		zap.String("external_charge_id", payment.ExternalChargeID),
		zap.Int64("account_id", payment.AccountID),
		zap.String("product_type", payment.ProductType),
		zap.Int64("quantity", payment.ProductQuantity))
	return &result, nil
}

func (s *Service) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.PaymentRecord, error) {
	payments, err := s.paymentRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch payment history", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return payments, nil
}

func productDeltas(productType string, quantity int64) (domain.Deltas, error) {
	switch productType {
	case domain.ProductCredits, domain.ProductBundle:
		return domain.Deltas{Credits: quantity}, nil
	case domain.ProductSpins:
		return domain.Deltas{Spins: quantity}, nil
	default:
		return domain.Deltas{}, fmt.Errorf("unknown product type %q: %w", productType, domain.ErrInvalidTier)
	}
}
