//go:build unit

package equipment_test

import (
	"testing"

	"gear-rental/internal/domain/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tier(t *testing.T, label string, days int, cents int64) equipment.RateTier {
	t.Helper()
	rt, err := equipment.NewRateTier(label, days, cents)
	require.NoError(t, err)
	return rt
}

func TestRateCard_Quote(t *testing.T) {
	card, err := equipment.NewRateCard([]equipment.RateTier{
		tier(t, "day", 1, 3000),
		tier(t, "weekend", 3, 7500),
		tier(t, "week", 7, 15000),
	})
	require.NoError(t, err)

	tests := []struct {
		days int
		want int64
	}{
		{days: 1, want: 3000},
		{days: 2, want: 6000},
		{days: 3, want: 7500},
		{days: 7, want: 15000},
		{days: 8, want: 18000},
		{days: 10, want: 22500},
		{days: 17, want: 15000*2 + 7500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, card.Quote(tt.days).Cents(), "days=%d", tt.days)
	}
}

func TestRateCard_QuoteRemainderUsesShortestTier(t *testing.T) {
	card, err := equipment.NewRateCard([]equipment.RateTier{
		tier(t, "weekend", 2, 5000),
		tier(t, "week", 7, 14000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), card.Quote(1).Cents())
	assert.Equal(t, int64(14000+5000), card.Quote(8).Cents())
}

func TestRateCard_EmptyQuotesZero(t *testing.T) {
	card, err := equipment.NewRateCard(nil)
	require.NoError(t, err)
	assert.True(t, card.Quote(5).IsZero())
}

func TestNewRateCard_Validation(t *testing.T) {
	_, err := equipment.NewRateCard([]equipment.RateTier{
		tier(t, "week", 7, 1),
		tier(t, "day", 1, 1),
	})
	assert.ErrorIs(t, err, equipment.ErrTiersOutOfOrder)

	_, err = equipment.NewRateCard([]equipment.RateTier{
		tier(t, "day", 1, 1),
		tier(t, "also day", 1, 2),
	})
	assert.ErrorIs(t, err, equipment.ErrTiersOutOfOrder)

	tiers := make([]equipment.RateTier, 11)
	for i := range tiers {
		tiers[i] = tier(t, "t", i+1, 100)
	}
	_, err = equipment.NewRateCard(tiers)
	assert.ErrorIs(t, err, equipment.ErrTooManyRateTiers)

	_, err = equipment.NewRateTier("", 1, 100)
	assert.ErrorIs(t, err, equipment.ErrTierLabelEmpty)
	_, err = equipment.NewRateTier("day", 0, 100)
	assert.ErrorIs(t, err, equipment.ErrInvalidTierDays)
}
