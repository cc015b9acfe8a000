// Package odds holds the versioned, immutable outcome distributions for every
// game. Tables are loaded once at process start and validated before the
// service accepts traffic; a misconfigured table refuses to start.
//
// All probabilities, multipliers and edge fractions are fixed-point basis
// points: 10000 bp = 100% = 1.00x. Integer arithmetic throughout avoids
// floating drift in payout computation.
package odds

import (
	"fmt"

	"github.com/rollsgame/casino/internal/domain"
)

const FullScaleBP = 10000

type Mode string

const (
	// ModeSingle games stake on one chance tier; the draw is compared against
	// the tier's own win probability (Mono).
	ModeSingle Mode = "single"
	// ModeWheel games partition the full draw range across all tiers of one
	// spin; the staked tier wins only if the draw lands inside it (Lucky2,
	// Roulette).
	ModeWheel Mode = "wheel"
)

type Tier struct {
	GameID       string
	Key          string
	WinProbBP    int64
	MultiplierBP int64
	HouseEdgeBP  int64
	MinStake     int64
}

// Playable reports whether a caller may stake on this tier. Zero-multiplier
// wheel sectors exist only to absorb probability mass.
func (t *Tier) Playable() bool {
	return t.MultiplierBP > 0
}

type Game struct {
	ID       string
	Mode     Mode
	Currency domain.Currency
	MaxStake int64
	// Tiers keeps the declared wheel order; cumulative partition follows it.
	Tiers []Tier
}

func (g *Game) Tier(key string) (*Tier, bool) {
	for i := range g.Tiers {
		if g.Tiers[i].Key == key {
			return &g.Tiers[i], true
		}
	}
	return nil, false
}

// Table is an immutable snapshot of all game configurations.
type Table struct {
	version string
	games   map[string]*Game
}

func (t *Table) Version() string { return t.version }

func (t *Table) Game(id string) (*Game, bool) {
	g, ok := t.games[id]
	return g, ok
}

func (t *Table) GameIDs() []string {
	ids := make([]string, 0, len(t.games))
	for id := range t.games {
		ids = append(ids, id)
	}
	return ids
}

// NewTable validates every game and returns an immutable table. Validation
// failures are configuration bugs and must abort startup.
func NewTable(version string, games []Game) (*Table, error) {
	if len(games) == 0 {
		return nil, fmt.Errorf("odds table %q has no games", version)
	}

	byID := make(map[string]*Game, len(games))
	for i := range games {
		g := games[i]
		if err := validateGame(&g); err != nil {
			return nil, err
		}
		if _, dup := byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate game id %q", g.ID)
		}
		byID[g.ID] = &g
	}
	return &Table{version: version, games: byID}, nil
}

func validateGame(g *Game) error {
	if len(g.Tiers) == 0 {
		return fmt.Errorf("game %q has no tiers", g.ID)
	}
	if g.MaxStake <= 0 {
		return fmt.Errorf("game %q: max stake must be positive", g.ID)
	}
	if g.Currency != domain.CurrencyCredits && g.Currency != domain.CurrencySpins {
		return fmt.Errorf("game %q: unknown currency %q", g.ID, g.Currency)
	}

	seen := make(map[string]bool, len(g.Tiers))
	var probSum int64
	for i := range g.Tiers {
		t := &g.Tiers[i]
		if seen[t.Key] {
			return fmt.Errorf("game %q: duplicate tier %q", g.ID, t.Key)
		}
		seen[t.Key] = true

		if t.WinProbBP <= 0 || t.WinProbBP > FullScaleBP {
			return fmt.Errorf("game %q tier %q: win probability %d out of (0, %d]", g.ID, t.Key, t.WinProbBP, FullScaleBP)
		}
		if t.MultiplierBP < 0 {
			return fmt.Errorf("game %q tier %q: negative multiplier", g.ID, t.Key)
		}
		if t.HouseEdgeBP < 0 || t.HouseEdgeBP >= FullScaleBP {
			return fmt.Errorf("game %q tier %q: house edge %d out of [0, %d)", g.ID, t.Key, t.HouseEdgeBP, FullScaleBP)
		}
		if t.MinStake < 0 {
			return fmt.Errorf("game %q tier %q: negative min stake", g.ID, t.Key)
		}
		if t.MinStake > g.MaxStake {
			return fmt.Errorf("game %q tier %q: min stake %d above game max %d", g.ID, t.Key, t.MinStake, g.MaxStake)
		}
		probSum += t.WinProbBP
	}

	switch g.Mode {
	case ModeWheel:
		if probSum != FullScaleBP {
			return fmt.Errorf("game %q: wheel probabilities sum to %d, want %d", g.ID, probSum, FullScaleBP)
		}
	case ModeSingle:
		// Each tier with its complement is its own spin event; nothing to sum.
	default:
		return fmt.Errorf("game %q: unknown mode %q", g.ID, g.Mode)
	}

	return validateRiskMonotonic(g)
}

// validateRiskMonotonic enforces that among playable tiers a lower win
// probability carries an equal-or-higher minimum stake. Configuration-time
// check only.
func validateRiskMonotonic(g *Game) error {
	for i := range g.Tiers {
		a := &g.Tiers[i]
		if !a.Playable() {
			continue
		}
		for j := range g.Tiers {
			b := &g.Tiers[j]
			if !b.Playable() {
				continue
			}
			if a.WinProbBP < b.WinProbBP && a.MinStake < b.MinStake {
				return fmt.Errorf("game %q: tier %q (prob %d) has lower min stake than likelier tier %q", g.ID, a.Key, a.WinProbBP, b.Key)
			}
		}
	}
	return nil
}
