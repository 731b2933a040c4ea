package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthFactor(t *testing.T) {
	assert.Equal(t, "1.075", GrowthFactor(stddec.RequireFromString("0.075")).String())
	assert.Equal(t, "0.8", GrowthFactor(stddec.RequireFromString("-0.2")).String())
}

func TestRootAndSqrt(t *testing.T) {
	assert.True(t, Sqrt(stddec.NewFromInt(4)).Equal(stddec.NewFromInt(2)))
	assert.True(t, Root(stddec.NewFromInt(27), 3).Equal(stddec.NewFromInt(3)))
	assert.True(t, Root(stddec.NewFromInt(5), 1).Equal(stddec.NewFromInt(5)))
	assert.True(t, Root(stddec.NewFromInt(-8), 3).IsZero())
	assert.True(t, Root(stddec.NewFromInt(8), 0).IsZero())
	assert.True(t, Root(stddec.Zero, 12).IsZero())
	assert.True(t, Sqrt(stddec.NewFromInt(-1)).IsZero())
	assert.True(t, Sqrt(stddec.Zero).IsZero())
}

func TestRootsKeepTwentyPlaces(t *testing.T) {
	// sqrt(1.075) = 1.03682206766638604372794933999...
	assert.Equal(t, "1.03682206766638604373", Sqrt(stddec.RequireFromString("1.075")).String())
	// sqrt(2) = 1.41421356237309504880168872420...
	assert.Equal(t, "1.4142135623730950488", Root(stddec.NewFromInt(2), 2).String())

	monthly := Root(stddec.RequireFromString("1.07"), 12)
	assert.LessOrEqual(t, -monthly.Exponent(), int32(RootPrecision))
	compounded := monthly.Pow(stddec.NewFromInt(12))
	assert.True(t, compounded.Sub(stddec.RequireFromString("1.07")).Abs().LessThan(stddec.New(1, -18)),
		"12th root compounds back to %s", compounded)
}

func TestPeriodicRateCompoundsBackToAnnual(t *testing.T) {
	annual := stddec.RequireFromString("0.08")
	monthly := PeriodicRate(annual, 12)
	compounded := GrowthFactor(monthly).Pow(stddec.NewFromInt(12)).Sub(stddec.NewFromInt(1))
	assert.True(t, compounded.Sub(annual).Abs().LessThan(stddec.New(1, -18)),
		"expected %s got %s", annual, compounded)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25", Percent(stddec.NewFromInt(1), stddec.NewFromInt(4)).String())
	assert.True(t, Percent(stddec.NewFromInt(1), stddec.Zero).IsZero())
}

func TestAnnualizedRate(t *testing.T) {
	rate, ok := AnnualizedRate(stddec.NewFromInt(100), stddec.NewFromInt(121), 2)
	assert.True(t, ok)
	assert.True(t, rate.Equal(stddec.RequireFromString("0.1")), "got %s", rate)

	_, ok = AnnualizedRate(stddec.Zero, stddec.NewFromInt(121), 2)
	assert.False(t, ok)
	_, ok = AnnualizedRate(stddec.NewFromInt(100), stddec.NewFromInt(-1), 2)
	assert.False(t, ok)
	_, ok = AnnualizedRate(stddec.NewFromInt(100), stddec.NewFromInt(121), 0)
	assert.False(t, ok)
}
