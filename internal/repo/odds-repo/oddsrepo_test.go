package oddsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/odds"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_LoadGames(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Games loaded with tiers in declared order", func(t *testing.T) {
		gameRows := pgxmock.NewRows([]string{"game_id", "mode", "currency", "max_stake", "version"}).
			AddRow("lucky2", string(odds.ModeWheel), string(domain.CurrencyCredits), int64(50000), "v1")
		mock.ExpectQuery(regexp.QuoteMeta(`FROM odds_games`)).
			WillReturnRows(gameRows)

		tierRows := pgxmock.NewRows([]string{"game_id", "tier_key", "win_prob_bp", "multiplier_bp", "house_edge_bp", "min_stake"}).
			AddRow("lucky2", "blue", int64(6000), int64(20000), int64(100), int64(25)).
			AddRow("lucky2", "red", int64(4000), int64(50000), int64(100), int64(50))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM odds_tiers`)).
			WithArgs("lucky2").
			WillReturnRows(tierRows)

		version, games, err := repo.LoadGames(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v1", version)
		require.Len(t, games, 1)
		assert.Equal(t, odds.ModeWheel, games[0].Mode)
		assert.Equal(t, domain.CurrencyCredits, games[0].Currency)
		require.Len(t, games[0].Tiers, 2)
		assert.Equal(t, "blue", games[0].Tiers[0].Key)
		assert.Equal(t, "red", games[0].Tiers[1].Key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Game query failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM odds_games`)).
			WillReturnError(errors.New("db error"))

		_, _, err := repo.LoadGames(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Tier query failure", func(t *testing.T) {
		gameRows := pgxmock.NewRows([]string{"game_id", "mode", "currency", "max_stake", "version"}).
			AddRow("lucky2", string(odds.ModeWheel), string(domain.CurrencyCredits), int64(50000), "v1")
		mock.ExpectQuery(regexp.QuoteMeta(`FROM odds_games`)).
			WillReturnRows(gameRows)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM odds_tiers`)).
			WithArgs("lucky2").
			WillReturnError(errors.New("db error"))

		_, _, err := repo.LoadGames(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
