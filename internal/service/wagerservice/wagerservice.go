package wagerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/engine"
	"github.com/rollsgame/casino/internal/odds"
	"github.com/rollsgame/casino/internal/pg"
	"github.com/rollsgame/casino/internal/rewards"
	"github.com/rollsgame/casino/pkg/metrics"
)

type Ledger interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error)
	AdjustBalance(ctx context.Context, userID int64, deltas domain.Deltas, reason domain.Reason, correlationID string) (*domain.Account, error)
}

type WagerRepo interface {
	Save(ctx context.Context, w *domain.WagerRecord) error
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]domain.WagerRecord, error)
}

type Rewards interface {
	MaybeGrant(ctx context.Context, accountID int64, gameID string, won bool, correlationID string) (*rewards.Item, error)
}

type OutcomeEngine interface {
	ValidateStake(gameID, tierKey string, stake int64) error
	Resolve(gameID, tierKey string, stake int64) (*engine.Outcome, error)
	ResolveShared(gameID string, stakes map[string]int64) (*engine.SpinResult, error)
}

// Result is the settled outcome of one wager, including post-settlement
// balances.
type Result struct {
	Record  *domain.WagerRecord
	Account *domain.Account
	Reward  *rewards.Item
}

// MultiResult settles several legs of one spin against a single shared draw.
type MultiResult struct {
	SpinID     string
	DrawnValue int64
	WinningKey string
	TotalStake int64
	TotalNet   int64
	Legs       []domain.WagerRecord
	Account    *domain.Account
	Reward     *rewards.Item
}

type Service struct {
	table     *odds.Table
	engine    OutcomeEngine
	ledger    Ledger
	wagerRepo WagerRepo
	rewards   Rewards
	txManager pg.TXManager
}

func New(table *odds.Table, eng OutcomeEngine, ledger Ledger, wagerRepo WagerRepo, rewardsSvc Rewards, txManager pg.TXManager) *Service {
	return &Service{
		table:     table,
		engine:    eng,
		ledger:    ledger,
		wagerRepo: wagerRepo,
		rewards:   rewardsSvc,
		txManager: txManager,
	}
}

// PlaceWager runs the full wager lifecycle as one transaction: validate,
// debit, resolve, credit, reward, record. Any failure after the debit rolls
// the debit back with everything else.
func (s *Service) PlaceWager(ctx context.Context, accountID int64, gameID, tierKey string, stake int64) (*Result, error) {
	game, ok := s.table.Game(gameID)
	if !ok {
		return nil, fmt.Errorf("game %q: %w", gameID, domain.ErrInvalidTier)
	}
	// Bound checks reject before any state is touched or randomness consumed.
	if err := s.engine.ValidateStake(gameID, tierKey, stake); err != nil {
		return nil, err
	}

	wagerID := uuid.NewString()
	var result Result
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.GetOrCreate(ctx, accountID); err != nil {
			return err
		}

		account, err := s.ledger.AdjustBalance(ctx, accountID, currencyDeltas(game.Currency, -stake), domain.ReasonWagerDebit, wagerID)
		if err != nil {
			return err
		}

		outcome, err := s.engine.Resolve(gameID, tierKey, stake)
		if err != nil {
			return err
		}

		account, err = s.settle(ctx, accountID, game.Currency, outcome, wagerID, account)
		if err != nil {
			return err
		}

		reward, err := s.rewards.MaybeGrant(ctx, accountID, gameID, outcome.Won, wagerID)
		if err != nil {
			return err
		}

		record := recordFromOutcome(wagerID, accountID, game.Currency, outcome, reward)
		if err := s.wagerRepo.Save(ctx, record); err != nil {
			return err
		}

		result = Result{Record: record, Account: account, Reward: reward}
		return nil
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}

	metrics.WagersTotal.WithLabelValues(gameID, wonLabel(result.Record.Won)).Inc()
	zap.L().Info("wager settled",
		zap.String("wager_id", wagerID),
		zap.Int64("account_id", accountID),
		zap.String("game_id", gameID),
		zap.String("tier_key", tierKey),
		zap.Bool("won", result.Record.Won),
		zap.Int64("net_payout", result.Record.NetPayout))
	return &result, nil
}

// PlaceMultiWager stakes several tiers of one spin: the sum is debited up
// front, one shared draw settles every leg, and winning legs are credited
// together.
func (s *Service) PlaceMultiWager(ctx context.Context, accountID int64, gameID string, stakes map[string]int64) (*MultiResult, error) {
	game, ok := s.table.Game(gameID)
	if !ok {
		return nil, fmt.Errorf("game %q: %w", gameID, domain.ErrInvalidTier)
	}
	for tierKey, stake := range stakes {
		if err := s.engine.ValidateStake(gameID, tierKey, stake); err != nil {
			return nil, err
		}
	}

	spinID := uuid.NewString()
	var result MultiResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.GetOrCreate(ctx, accountID); err != nil {
			return err
		}

		var total int64
		for _, stake := range stakes {
			total += stake
		}
		account, err := s.ledger.AdjustBalance(ctx, accountID, currencyDeltas(game.Currency, -total), domain.ReasonWagerDebit, spinID)
		if err != nil {
			return err
		}

		spin, err := s.engine.ResolveShared(gameID, stakes)
		if err != nil {
			return err
		}

		var houseTake, edgeCut int64
		for i := range spin.Legs {
			leg := &spin.Legs[i]
			if leg.Won {
				edgeCut += leg.GrossPayout - leg.NetPayout
			} else {
				houseTake += leg.Stake
			}
		}
		if spin.TotalNet > 0 {
			account, err = s.ledger.AdjustBalance(ctx, accountID, currencyDeltas(game.Currency, spin.TotalNet), domain.ReasonWagerCredit, spinID)
			if err != nil {
				return err
			}
		}
		if houseTake+edgeCut > 0 {
			if _, err := s.ledger.AdjustBalance(ctx, domain.HouseAccountID, currencyDeltas(game.Currency, houseTake+edgeCut), domain.ReasonWagerCredit, spinID); err != nil {
				return err
			}
		}

		anyWon := spin.TotalNet > 0
		reward, err := s.rewards.MaybeGrant(ctx, accountID, gameID, anyWon, spinID)
		if err != nil {
			return err
		}

		legs := make([]domain.WagerRecord, 0, len(spin.Legs))
		for i := range spin.Legs {
			record := recordFromOutcome(uuid.NewString(), accountID, game.Currency, &spin.Legs[i], nil)
			if err := s.wagerRepo.Save(ctx, record); err != nil {
				return err
			}
			legs = append(legs, *record)
		}

		result = MultiResult{
			SpinID:     spinID,
			DrawnValue: spin.DrawnValue,
			WinningKey: spin.WinningKey,
			TotalStake: spin.TotalStake,
			TotalNet:   spin.TotalNet,
			Legs:       legs,
			Account:    account,
			Reward:     reward,
		}
		return nil
	})
	if err != nil {
		return nil, wrapTxErr(err)
	}

	metrics.WagersTotal.WithLabelValues(gameID, wonLabel(result.TotalNet > 0)).Inc()
	return &result, nil
}

func (s *Service) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.WagerRecord, error) {
	wagers, err := s.wagerRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch wager history", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return wagers, nil
}

// settle credits the player on a win and routes house revenue: the forfeited
// stake on a loss, the edge cut on a win. Same correlation id as the debit.
func (s *Service) settle(ctx context.Context, accountID int64, currency domain.Currency, outcome *engine.Outcome, wagerID string, account *domain.Account) (*domain.Account, error) {
	if outcome.Won {
		updated, err := s.ledger.AdjustBalance(ctx, accountID, currencyDeltas(currency, outcome.NetPayout), domain.ReasonWagerCredit, wagerID)
		if err != nil {
			return nil, err
		}
		if cut := outcome.GrossPayout - outcome.NetPayout; cut > 0 {
			if _, err := s.ledger.AdjustBalance(ctx, domain.HouseAccountID, currencyDeltas(currency, cut), domain.ReasonWagerCredit, wagerID); err != nil {
				return nil, err
			}
		}
		return updated, nil
	}

	if _, err := s.ledger.AdjustBalance(ctx, domain.HouseAccountID, currencyDeltas(currency, outcome.Stake), domain.ReasonWagerCredit, wagerID); err != nil {
		return nil, err
	}
	return account, nil
}

func recordFromOutcome(wagerID string, accountID int64, currency domain.Currency, outcome *engine.Outcome, reward *rewards.Item) *domain.WagerRecord {
	record := &domain.WagerRecord{
		WagerID:      wagerID,
		AccountID:    accountID,
		GameID:       outcome.GameID,
		TierKey:      outcome.TierKey,
		Currency:     currency,
		Stake:        outcome.Stake,
		Won:          outcome.Won,
		DrawnValue:   outcome.DrawnValue,
		MultiplierBP: outcome.MultiplierBP,
		GrossPayout:  outcome.GrossPayout,
		NetPayout:    outcome.NetPayout,
	}
	if reward != nil {
		itemID := reward.ID
		record.RewardItemID = &itemID
	}
	return record
}

func currencyDeltas(currency domain.Currency, amount int64) domain.Deltas {
	if currency == domain.CurrencySpins {
		return domain.Deltas{Spins: amount}
	}
	return domain.Deltas{Credits: amount}
}

// wrapTxErr keeps the pre-mutation rejections verbatim and folds everything
// else (including commit failures) into ErrUnavailable. Nothing is retried
// here: a retried debit without a fresh correlation id risks double-debiting.
func wrapTxErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrStakeTooLow),
		errors.Is(err, domain.ErrStakeTooHigh),
		errors.Is(err, domain.ErrInvalidTier),
		errors.Is(err, domain.ErrUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
}

func wonLabel(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}
