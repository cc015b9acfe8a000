// Package engine computes wager outcomes. It is pure with respect to state:
// the orchestrator owns all balance mutation, the engine only validates a
// stake, consumes one uniform draw and prices the result.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/odds"
)

// DrawFunc returns a uniform value in [0, n). Injectable so tests and audit
// replays can pin the randomness to a seed.
type DrawFunc func(n int64) int64

type Engine struct {
	table *odds.Table
	draw  DrawFunc
}

type Option func(*Engine)

// WithDraw replaces the default draw source.
func WithDraw(draw DrawFunc) Option {
	return func(e *Engine) {
		e.draw = draw
	}
}

func New(table *odds.Table, opts ...Option) *Engine {
	e := &Engine{
		table: table,
		draw:  rand.Int64N,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Outcome is the priced result of a single wager leg.
type Outcome struct {
	GameID       string
	TierKey      string
	Stake        int64
	Won          bool
	DrawnValue   int64
	WinningKey   string
	MultiplierBP int64
	GrossPayout  int64
	NetPayout    int64
}

// SpinResult is the result of one shared draw across several legs.
type SpinResult struct {
	GameID     string
	DrawnValue int64
	WinningKey string
	Legs       []Outcome
	TotalStake int64
	TotalNet   int64
}

// ValidateStake checks the stake against tier bounds without consuming any
// randomness. The orchestrator calls this before debiting.
func (e *Engine) ValidateStake(gameID, tierKey string, stake int64) error {
	_, _, err := e.lookup(gameID, tierKey, stake)
	return err
}

func (e *Engine) lookup(gameID, tierKey string, stake int64) (*odds.Game, *odds.Tier, error) {
	game, ok := e.table.Game(gameID)
	if !ok {
		return nil, nil, fmt.Errorf("game %q: %w", gameID, domain.ErrInvalidTier)
	}
	tier, ok := game.Tier(tierKey)
	if !ok || !tier.Playable() {
		return nil, nil, fmt.Errorf("game %q tier %q: %w", gameID, tierKey, domain.ErrInvalidTier)
	}
	if stake < tier.MinStake {
		return nil, nil, fmt.Errorf("stake %d below minimum %d: %w", stake, tier.MinStake, domain.ErrStakeTooLow)
	}
	if stake > game.MaxStake {
		return nil, nil, fmt.Errorf("stake %d above maximum %d: %w", stake, game.MaxStake, domain.ErrStakeTooHigh)
	}
	return game, tier, nil
}

// Resolve validates the stake, consumes exactly one draw and prices the
// outcome. Validation failures occur before the draw.
func (e *Engine) Resolve(gameID, tierKey string, stake int64) (*Outcome, error) {
	game, tier, err := e.lookup(gameID, tierKey, stake)
	if err != nil {
		return nil, err
	}

	drawn := e.draw(odds.FullScaleBP)
	out := priceLeg(game, tier, stake, drawn)
	return &out, nil
}

// ResolveShared validates every leg first, then settles all of them against a
// single shared draw. Used for multi-stake wagers on one spin: the draw must
// be identical for every leg.
func (e *Engine) ResolveShared(gameID string, stakes map[string]int64) (*SpinResult, error) {
	game, ok := e.table.Game(gameID)
	if !ok {
		return nil, fmt.Errorf("game %q: %w", gameID, domain.ErrInvalidTier)
	}
	if game.Mode != odds.ModeWheel {
		return nil, fmt.Errorf("game %q does not support multi-stake spins: %w", gameID, domain.ErrInvalidTier)
	}
	if len(stakes) == 0 {
		return nil, fmt.Errorf("no legs staked: %w", domain.ErrInvalidTier)
	}

	// All legs validate before any randomness is consumed.
	legs := make([]*odds.Tier, 0, len(stakes))
	var total int64
	for _, tier := range orderedTiers(game, stakes) {
		stake := stakes[tier.Key]
		if _, _, err := e.lookup(gameID, tier.Key, stake); err != nil {
			return nil, err
		}
		legs = append(legs, tier)
		total += stake
	}
	if len(legs) != len(stakes) {
		return nil, fmt.Errorf("unknown tier in multi-stake spin: %w", domain.ErrInvalidTier)
	}

	drawn := e.draw(odds.FullScaleBP)
	result := &SpinResult{
		GameID:     gameID,
		DrawnValue: drawn,
		WinningKey: winningTier(game, drawn).Key,
		TotalStake: total,
	}
	for _, tier := range legs {
		leg := priceLeg(game, tier, stakes[tier.Key], drawn)
		result.TotalNet += leg.NetPayout
		result.Legs = append(result.Legs, leg)
	}
	return result, nil
}

// priceLeg decides win/lose for one leg against an already-consumed draw.
func priceLeg(game *odds.Game, tier *odds.Tier, stake, drawn int64) Outcome {
	out := Outcome{
		GameID:     game.ID,
		TierKey:    tier.Key,
		Stake:      stake,
		DrawnValue: drawn,
	}

	switch game.Mode {
	case odds.ModeSingle:
		out.Won = drawn < tier.WinProbBP
		if out.Won {
			out.WinningKey = tier.Key
		}
	case odds.ModeWheel:
		winning := winningTier(game, drawn)
		out.WinningKey = winning.Key
		// A hit on an unstaked tier is a loss for this leg.
		out.Won = winning.Key == tier.Key
	}

	if out.Won {
		out.MultiplierBP = tier.MultiplierBP
		out.GrossPayout = stake * tier.MultiplierBP / odds.FullScaleBP
		out.NetPayout = netPayout(stake, tier.MultiplierBP, tier.HouseEdgeBP)
	}
	return out
}

// winningTier maps a draw onto the cumulative-probability partition of the
// wheel. Probabilities sum to exactly FullScaleBP (validated at load), so the
// loop always terminates inside a tier.
func winningTier(game *odds.Game, drawn int64) *odds.Tier {
	var cum int64
	for i := range game.Tiers {
		cum += game.Tiers[i].WinProbBP
		if drawn < cum {
			return &game.Tiers[i]
		}
	}
	return &game.Tiers[len(game.Tiers)-1]
}

// netPayout = floor(stake * multiplier * (1 - edge)), computed in a single
// integer division so rounding is always down, never up.
func netPayout(stake, multiplierBP, edgeBP int64) int64 {
	return stake * multiplierBP * (odds.FullScaleBP - edgeBP) / (odds.FullScaleBP * odds.FullScaleBP)
}

func orderedTiers(game *odds.Game, stakes map[string]int64) []*odds.Tier {
	tiers := make([]*odds.Tier, 0, len(stakes))
	for i := range game.Tiers {
		if _, staked := stakes[game.Tiers[i].Key]; staked {
			tiers = append(tiers, &game.Tiers[i])
		}
	}
	return tiers
}
