package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{ID: 1, Name: "Bronze Token", Rarity: "common", Weight: 50, Value: 5},
		{ID: 2, Name: "Silver Chalice", Rarity: "rare", Weight: 30, Value: 25},
		{ID: 3, Name: "Golden Idol", Rarity: "epic", Weight: 15, Value: 100},
		{ID: 4, Name: "Scroll of Fortune", Rarity: "legendary", Weight: 5, Value: 500},
	}
}

func TestNewPool(t *testing.T) {
	pool, err := NewPool("v1", testItems())
	require.NoError(t, err)
	assert.Equal(t, "v1", pool.Version())
	assert.Len(t, pool.Items(), 4)
}

func TestNewPoolRejectsEmpty(t *testing.T) {
	_, err := NewPool("v1", nil)
	assert.Error(t, err)
}

func TestNewPoolRejectsNonPositiveWeight(t *testing.T) {
	items := testItems()
	items[2].Weight = 0
	_, err := NewPool("v1", items)
	assert.ErrorContains(t, err, "non-positive weight")
}

func TestDrawPartitionsByCumulativeWeight(t *testing.T) {
	pool, err := NewPool("v1", testItems())
	require.NoError(t, err)

	tests := []struct {
		drawn  int64
		wantID int64
	}{
		{drawn: 0, wantID: 1},
		{drawn: 49, wantID: 1},
		{drawn: 50, wantID: 2},
		{drawn: 79, wantID: 2},
		{drawn: 80, wantID: 3},
		{drawn: 94, wantID: 3},
		{drawn: 95, wantID: 4},
		{drawn: 99, wantID: 4},
	}
	for _, tt := range tests {
		item := pool.Draw(func(n int64) int64 {
			assert.Equal(t, int64(100), n)
			return tt.drawn
		})
		assert.Equal(t, tt.wantID, item.ID)
	}
}

func TestItemLookup(t *testing.T) {
	pool, err := NewPool("v1", testItems())
	require.NoError(t, err)

	item, ok := pool.Item(3)
	assert.True(t, ok)
	assert.Equal(t, "Golden Idol", item.Name)

	_, ok = pool.Item(42)
	assert.False(t, ok)
}

func TestPoolItemsIsACopy(t *testing.T) {
	pool, err := NewPool("v1", testItems())
	require.NoError(t, err)

	items := pool.Items()
	items[0].Weight = 9999

	again := pool.Items()
	assert.Equal(t, int64(50), again[0].Weight)
}
