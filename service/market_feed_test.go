package service

import (
	"math"
	"testing"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday noon UTC, well inside trading hours.
var openTime = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func newTestFeed(t *testing.T, at time.Time) *MarketFeed {
	t.Helper()
	return NewMarketFeed(FeedConfig{
		TickInterval:   time.Second,
		UpdateInterval: 10 * time.Second,
		Now:            func() time.Time { return at },
		RandSeed:       42,
	})
}

func TestSeedUniverse(t *testing.T) {
	feed := newTestFeed(t, openTime)
	pairs := feed.Pairs()

	require.Len(t, pairs, 17)

	seen := map[model.PairCategory]int{}
	symbols := map[string]bool{}
	for _, p := range pairs {
		seen[p.Category]++
		assert.False(t, symbols[p.Symbol], "duplicate symbol %s", p.Symbol)
		symbols[p.Symbol] = true

		assert.Greater(t, p.Bid, 0.0, p.Symbol)
		assert.Greater(t, p.Ask, p.Bid, p.Symbol)
		assert.Greater(t, p.Volume, int64(0), p.Symbol)
		assert.Equal(t, openTime, p.LastUpdate, p.Symbol)
	}

	assert.Equal(t, 7, seen[model.CategoryMajor])
	assert.Equal(t, 4, seen[model.CategoryMinor])
	assert.Equal(t, 2, seen[model.CategoryExotic])
	assert.Equal(t, 2, seen[model.CategoryCommodity])
	assert.Equal(t, 2, seen[model.CategoryCrypto])
}

func TestSpreadHoldsAcrossUpdates(t *testing.T) {
	feed := newTestFeed(t, openTime)

	check := func() {
		for _, p := range feed.Pairs() {
			want := feed.spreadInPrice(&p)
			assert.InDelta(t, want, p.Ask-p.Bid, 1e-9, p.Symbol)
		}
	}

	check()
	for i := 1; i <= 5; i++ {
		feed.Tick(openTime.Add(time.Duration(i) * 10 * time.Second))
		check()
	}
}

func TestPriceRounding(t *testing.T) {
	feed := newTestFeed(t, openTime)
	feed.Tick(openTime.Add(10 * time.Second))

	for _, p := range feed.Pairs() {
		decimals := 5
		if p.Symbol[3:] == "JPY" {
			decimals = 3
		}
		scale := math.Pow(10, float64(decimals))
		assert.InDelta(t, math.Round(p.Bid*scale), p.Bid*scale, 1e-6, p.Symbol)
		assert.InDelta(t, math.Round(p.Ask*scale), p.Ask*scale, 1e-6, p.Symbol)
	}
}

func TestUpdateIntervalThrottle(t *testing.T) {
	feed := newTestFeed(t, openTime)
	before := feed.Pairs()

	// Inside the update window nothing may move.
	feed.Tick(openTime.Add(3 * time.Second))
	feed.Tick(openTime.Add(9 * time.Second))
	assert.Equal(t, before, feed.Pairs())
	assert.Equal(t, openTime, feed.LastUpdate())

	feed.Tick(openTime.Add(10 * time.Second))
	after := feed.Pairs()
	assert.NotEqual(t, before, after)
	assert.Equal(t, openTime.Add(10*time.Second), feed.LastUpdate())
}

func TestClosedMarketFreezesPrices(t *testing.T) {
	saturday := time.Date(2025, time.January, 18, 12, 0, 0, 0, time.UTC)
	feed := newTestFeed(t, saturday)

	before := feed.Pairs()
	feed.Tick(saturday.Add(10 * time.Second))
	feed.Tick(saturday.Add(20 * time.Second))

	assert.Equal(t, before, feed.Pairs())
	assert.Equal(t, model.MarketClosed, feed.Status())
}

func TestStatusFollowsClock(t *testing.T) {
	feed := newTestFeed(t, openTime)
	assert.Equal(t, model.MarketOpen, feed.Status())

	fridayClose := time.Date(2025, time.January, 17, 22, 0, 0, 0, time.UTC)
	feed.Tick(fridayClose)
	assert.Equal(t, model.MarketClosed, feed.Status())
}

func TestIsForexMarketOpen(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		open bool
	}{
		{"wednesday noon", time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC), true},
		{"friday 21:59", time.Date(2025, time.January, 17, 21, 59, 0, 0, time.UTC), true},
		{"friday 22:00", time.Date(2025, time.January, 17, 22, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2025, time.January, 18, 10, 0, 0, 0, time.UTC), false},
		{"sunday 21:59", time.Date(2025, time.January, 19, 21, 59, 0, 0, time.UTC), false},
		{"sunday 22:00", time.Date(2025, time.January, 19, 22, 0, 0, 0, time.UTC), true},
		{"monday midnight", time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, IsForexMarketOpen(tc.t))
		})
	}
}

func TestPairsReturnsCopy(t *testing.T) {
	feed := newTestFeed(t, openTime)

	pairs := feed.Pairs()
	pairs[0].Bid = -1

	fresh := feed.Pairs()
	assert.NotEqual(t, -1.0, fresh[0].Bid)
}

func TestPairLookup(t *testing.T) {
	feed := newTestFeed(t, openTime)

	p, ok := feed.Pair("USDJPY")
	require.True(t, ok)
	assert.Equal(t, "USDJPY", p.Symbol)
	assert.Equal(t, model.CategoryMajor, p.Category)

	_, ok = feed.Pair("FOOBAR")
	assert.False(t, ok)
}

func TestDeterministicSeed(t *testing.T) {
	a := newTestFeed(t, openTime)
	b := newTestFeed(t, openTime)

	assert.Equal(t, a.Pairs(), b.Pairs())

	a.Tick(openTime.Add(10 * time.Second))
	b.Tick(openTime.Add(10 * time.Second))
	assert.Equal(t, a.Pairs(), b.Pairs())
}

func TestReanchor(t *testing.T) {
	feed := newTestFeed(t, openTime)
	btcBefore, _ := feed.Pair("BTCUSD")

	feed.Reanchor(map[string]float64{
		"JPY": 150.0,
		"EUR": 0.9,
	})

	usdjpy, _ := feed.Pair("USDJPY")
	assert.InDelta(t, 150.0+usdjpy.Spread*0.01, usdjpy.Ask, 1e-9)
	assert.InDelta(t, 150.0, usdjpy.Bid, 1e-9)

	eurusd, _ := feed.Pair("EURUSD")
	assert.InDelta(t, roundTo(1/0.9, 5), eurusd.Bid, 1e-9)

	// Non-currency instruments keep their seeded level.
	btcAfter, _ := feed.Pair("BTCUSD")
	assert.Equal(t, btcBefore.Bid, btcAfter.Bid)

	// Pairs with no matching rate are untouched.
	gbpusd, _ := feed.Pair("GBPUSD")
	assert.Greater(t, gbpusd.Bid, 0.0)
}
