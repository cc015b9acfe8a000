package rewardservice

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/odds"
	"github.com/rollsgame/casino/internal/rewards"
)

type RewardRepo interface {
	Grant(ctx context.Context, accountID, itemID int64, correlationID string) error
	ListOwned(ctx context.Context, accountID int64) ([]domain.OwnedItem, error)
}

type WagerCounter interface {
	CountResolved(ctx context.Context, accountID int64, gameID string) (int64, error)
}

// Policy describes secondary reward eligibility for one game. Exactly one of
// the two triggers is set: a flat per-win chance, or a cumulative every-Nth
// counter over resolved wagers.
type Policy struct {
	WinChanceBP int64
	EveryNth    int64
}

// DefaultPolicies mirrors the original reward behavior: 0.5% per Mono win,
// one guaranteed drop every fifth Roulette spin, nothing for Lucky2.
var DefaultPolicies = map[string]Policy{
	"mono":     {WinChanceBP: 50},
	"roulette": {EveryNth: 5},
}

type Service struct {
	pool     *rewards.Pool
	repo     RewardRepo
	wagers   WagerCounter
	policies map[string]Policy
	draw     rewards.DrawFunc
}

type Option func(*Service)

func WithDraw(draw rewards.DrawFunc) Option {
	return func(s *Service) {
		s.draw = draw
	}
}

func WithPolicies(policies map[string]Policy) Option {
	return func(s *Service) {
		s.policies = policies
	}
}

func New(pool *rewards.Pool, repo RewardRepo, wagers WagerCounter, opts ...Option) *Service {
	s := &Service{
		pool:     pool,
		repo:     repo,
		wagers:   wagers,
		policies: DefaultPolicies,
		draw:     rand.Int64N,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaybeGrant evaluates secondary reward eligibility for a resolved wager and,
// if eligible, grants one drawn item. Must run inside the wager transaction:
// the ownership row commits or rolls back together with the wager itself.
// The resolved-wager count includes the wager being settled.
func (s *Service) MaybeGrant(ctx context.Context, accountID int64, gameID string, won bool, correlationID string) (*rewards.Item, error) {
	policy, ok := s.policies[gameID]
	if !ok {
		return nil, nil
	}

	eligible := false
	switch {
	case policy.WinChanceBP > 0:
		eligible = won && s.draw(odds.FullScaleBP) < policy.WinChanceBP
	case policy.EveryNth > 0:
		count, err := s.wagers.CountResolved(ctx, accountID, gameID)
		if err != nil {
			return nil, err
		}
		eligible = (count+1)%policy.EveryNth == 0
	}
	if !eligible {
		return nil, nil
	}

	item := s.pool.Draw(s.draw)
	if err := s.repo.Grant(ctx, accountID, item.ID, correlationID); err != nil {
		return nil, err
	}
	zap.L().Info("reward item granted",
		zap.Int64("account_id", accountID),
		zap.String("game_id", gameID),
		zap.Int64("item_id", item.ID),
		zap.String("rarity", item.Rarity))
	return &item, nil
}

// GrantBundled draws and grants one item as part of a bundle purchase. Runs
// inside the payment transaction.
func (s *Service) GrantBundled(ctx context.Context, accountID int64, correlationID string) (*rewards.Item, error) {
	item := s.pool.Draw(s.draw)
	if err := s.repo.Grant(ctx, accountID, item.ID, correlationID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) ListOwned(ctx context.Context, accountID int64) ([]domain.OwnedItem, error) {
	return s.repo.ListOwned(ctx, accountID)
}

func (s *Service) Pool() *rewards.Pool {
	return s.pool
}
