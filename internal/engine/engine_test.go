package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollsgame/casino/internal/domain"
	"github.com/rollsgame/casino/internal/odds"
)

func testTable(t *testing.T) *odds.Table {
	t.Helper()
	table, err := odds.NewTable("v1", []odds.Game{
		{
			ID:       "mono",
			Mode:     odds.ModeSingle,
			Currency: domain.CurrencySpins,
			MaxStake: 100,
			Tiers: []odds.Tier{
				{GameID: "mono", Key: "c1", WinProbBP: 6500, MultiplierBP: 15400, MinStake: 1},
				{GameID: "mono", Key: "c4", WinProbBP: 2500, MultiplierBP: 40000, MinStake: 1},
			},
		},
		{
			ID:       "lucky2",
			Mode:     odds.ModeWheel,
			Currency: domain.CurrencyCredits,
			MaxStake: 1000,
			Tiers: []odds.Tier{
				{GameID: "lucky2", Key: "blue", WinProbBP: 6000, MultiplierBP: 20000, HouseEdgeBP: 100, MinStake: 25},
				{GameID: "lucky2", Key: "purple", WinProbBP: 3500, MultiplierBP: 20000, HouseEdgeBP: 100, MinStake: 25},
				{GameID: "lucky2", Key: "red", WinProbBP: 500, MultiplierBP: 50000, HouseEdgeBP: 100, MinStake: 50},
			},
		},
		{
			ID:       "roulette",
			Mode:     odds.ModeWheel,
			Currency: domain.CurrencyCredits,
			MaxStake: 500,
			Tiers: []odds.Tier{
				{GameID: "roulette", Key: "zero", WinProbBP: 5000, MultiplierBP: 0, MinStake: 0},
				{GameID: "roulette", Key: "x2", WinProbBP: 5000, MultiplierBP: 20000, MinStake: 10},
			},
		},
	})
	require.NoError(t, err)
	return table
}

func fixedDraw(v int64) DrawFunc {
	return func(int64) int64 { return v }
}

func TestValidateStake(t *testing.T) {
	e := New(testTable(t))

	tests := []struct {
		name    string
		gameID  string
		tierKey string
		stake   int64
		wantErr error
	}{
		{name: "valid stake", gameID: "lucky2", tierKey: "blue", stake: 100},
		{name: "unknown game", gameID: "slots", tierKey: "blue", stake: 100, wantErr: domain.ErrInvalidTier},
		{name: "unknown tier", gameID: "lucky2", tierKey: "green", stake: 100, wantErr: domain.ErrInvalidTier},
		{name: "unplayable zero sector", gameID: "roulette", tierKey: "zero", stake: 100, wantErr: domain.ErrInvalidTier},
		{name: "below tier minimum", gameID: "lucky2", tierKey: "red", stake: 49, wantErr: domain.ErrStakeTooLow},
		{name: "above game maximum", gameID: "lucky2", tierKey: "blue", stake: 1001, wantErr: domain.ErrStakeTooHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.ValidateStake(tt.gameID, tt.tierKey, tt.stake)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResolveSingleMode(t *testing.T) {
	t.Run("draw inside win probability wins", func(t *testing.T) {
		e := New(testTable(t), WithDraw(fixedDraw(6499)))
		out, err := e.Resolve("mono", "c1", 10)
		require.NoError(t, err)
		assert.True(t, out.Won)
		assert.Equal(t, "c1", out.WinningKey)
		assert.Equal(t, int64(15), out.GrossPayout) // floor(10 * 1.54)
		assert.Equal(t, int64(15), out.NetPayout)   // no edge on mono
	})

	t.Run("draw at boundary loses", func(t *testing.T) {
		e := New(testTable(t), WithDraw(fixedDraw(6500)))
		out, err := e.Resolve("mono", "c1", 10)
		require.NoError(t, err)
		assert.False(t, out.Won)
		assert.Zero(t, out.NetPayout)
		assert.Zero(t, out.GrossPayout)
	})
}

func TestNetPayoutAppliesEdgeWithSingleFloor(t *testing.T) {
	// 100 at 2.00x with a 1% edge: gross 200, net floor(198.0) = 198.
	e := New(testTable(t), WithDraw(fixedDraw(0)))
	out, err := e.Resolve("lucky2", "blue", 100)
	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.Equal(t, int64(200), out.GrossPayout)
	assert.Equal(t, int64(198), out.NetPayout)
}

func TestResolveWheelUnstakedTierLoses(t *testing.T) {
	// Draw 9999 lands on red; a blue leg loses even though the wheel hit a
	// winning sector.
	e := New(testTable(t), WithDraw(fixedDraw(9999)))
	out, err := e.Resolve("lucky2", "blue", 100)
	require.NoError(t, err)
	assert.False(t, out.Won)
	assert.Equal(t, "red", out.WinningKey)
	assert.Zero(t, out.NetPayout)
}

func TestResolveValidatesBeforeDraw(t *testing.T) {
	draws := 0
	e := New(testTable(t), WithDraw(func(int64) int64 {
		draws++
		return 0
	}))

	_, err := e.Resolve("lucky2", "blue", 5)
	assert.ErrorIs(t, err, domain.ErrStakeTooLow)
	assert.Zero(t, draws)
}

func TestResolveShared(t *testing.T) {
	t.Run("one draw settles every leg", func(t *testing.T) {
		draws := 0
		e := New(testTable(t), WithDraw(func(int64) int64 {
			draws++
			return 0 // blue sector
		}))

		spin, err := e.ResolveShared("lucky2", map[string]int64{"blue": 100, "red": 50})
		require.NoError(t, err)
		assert.Equal(t, 1, draws)
		assert.Equal(t, "blue", spin.WinningKey)
		assert.Equal(t, int64(150), spin.TotalStake)
		assert.Equal(t, int64(198), spin.TotalNet)

		require.Len(t, spin.Legs, 2)
		// Legs follow declared wheel order.
		assert.Equal(t, "blue", spin.Legs[0].TierKey)
		assert.True(t, spin.Legs[0].Won)
		assert.Equal(t, "red", spin.Legs[1].TierKey)
		assert.False(t, spin.Legs[1].Won)
		assert.Equal(t, spin.Legs[0].DrawnValue, spin.Legs[1].DrawnValue)
	})

	t.Run("all legs can lose", func(t *testing.T) {
		e := New(testTable(t), WithDraw(fixedDraw(7000))) // purple sector
		spin, err := e.ResolveShared("lucky2", map[string]int64{"blue": 100, "red": 50})
		require.NoError(t, err)
		assert.Equal(t, "purple", spin.WinningKey)
		assert.Zero(t, spin.TotalNet)
	})

	t.Run("unknown tier rejects whole spin", func(t *testing.T) {
		e := New(testTable(t), WithDraw(fixedDraw(0)))
		_, err := e.ResolveShared("lucky2", map[string]int64{"blue": 100, "green": 50})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})

	t.Run("single-mode game rejected", func(t *testing.T) {
		e := New(testTable(t))
		_, err := e.ResolveShared("mono", map[string]int64{"c1": 10})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})

	t.Run("empty stake set rejected", func(t *testing.T) {
		e := New(testTable(t))
		_, err := e.ResolveShared("lucky2", map[string]int64{})
		assert.ErrorIs(t, err, domain.ErrInvalidTier)
	})

	t.Run("one invalid leg consumes no draw", func(t *testing.T) {
		draws := 0
		e := New(testTable(t), WithDraw(func(int64) int64 {
			draws++
			return 0
		}))
		_, err := e.ResolveShared("lucky2", map[string]int64{"blue": 100, "red": 10})
		assert.ErrorIs(t, err, domain.ErrStakeTooLow)
		assert.Zero(t, draws)
	})
}
