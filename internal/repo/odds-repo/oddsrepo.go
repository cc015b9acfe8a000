package oddsrepo

import (
	"context"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/odds"
	"github.com/rollsgame/casino/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// LoadGames reads game metadata and tiers in declared wheel order. The result
// feeds odds.NewTable, which fails fast on an invalid configuration.
func (r *Repository) LoadGames(ctx context.Context) (string, []odds.Game, error) {
	gamesQuery := `
        SELECT game_id, mode, currency, max_stake, version
        FROM odds_games
        ORDER BY game_id
    `
	rows, err := r.db.Query(ctx, gamesQuery)
	if err != nil {
		zap.L().Error("failed to load odds games", zap.Error(err))
		return "", nil, err
	}
	defer rows.Close()

	var version string
	var games []odds.Game
	for rows.Next() {
		var g odds.Game
		var mode, currency string
		if err := rows.Scan(&g.ID, &mode, &currency, &g.MaxStake, &version); err != nil {
			zap.L().Error("failed to scan odds game", zap.Error(err))
			return "", nil, err
		}
		g.Mode = odds.Mode(mode)
		g.Currency = domain.Currency(currency)
		games = append(games, g)
	}
	rows.Close()

	for i := range games {
		tiers, err := r.loadTiers(ctx, games[i].ID)
		if err != nil {
			return "", nil, err
		}
		games[i].Tiers = tiers
	}
	return version, games, nil
}

func (r *Repository) loadTiers(ctx context.Context, gameID string) ([]odds.Tier, error) {
	query := `
        SELECT game_id, tier_key, win_prob_bp, multiplier_bp, house_edge_bp, min_stake
        FROM odds_tiers
        WHERE game_id = $1
        ORDER BY position
    `
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("failed to load odds tiers", zap.String("game_id", gameID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tiers []odds.Tier
	for rows.Next() {
		var t odds.Tier
		if err := rows.Scan(&t.GameID, &t.Key, &t.WinProbBP, &t.MultiplierBP, &t.HouseEdgeBP, &t.MinStake); err != nil {
			zap.L().Error("failed to scan odds tier", zap.Error(err))
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}
