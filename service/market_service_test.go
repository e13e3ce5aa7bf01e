package service

import (
	"context"
	"testing"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMarketService(t *testing.T) (*MarketFeed, MarketDataService) {
	t.Helper()
	feed := newTestFeed(t, openTime)
	return feed, NewMarketDataService(feed)
}

// setChanges overwrites the change fields of the seeded pairs in order,
// padding with zero. Lets sentiment and trending tests pin exact inputs.
func setChanges(feed *MarketFeed, changes []float64) {
	feed.mu.Lock()
	defer feed.mu.Unlock()
	for i := range feed.pairs {
		var c float64
		if i < len(changes) {
			c = changes[i]
		}
		feed.pairs[i].Change = c
		feed.pairs[i].ChangePercent = c
	}
}

func TestGetSnapshot(t *testing.T) {
	_, svc := newTestMarketService(t)

	snapshot, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.Pairs, 17)
	assert.Equal(t, model.MarketOpen, snapshot.MarketStatus)
	assert.Equal(t, openTime, snapshot.LastUpdate)
	assert.Equal(t, openTime, snapshot.ServerTime)
}

func TestGetSnapshotCancelledContext(t *testing.T) {
	_, svc := newTestMarketService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetSnapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetSnapshotIsolation(t *testing.T) {
	_, svc := newTestMarketService(t)

	first, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	first.Pairs[0].Bid = -1

	second, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, -1.0, second.Pairs[0].Bid)
}

func TestGetPair(t *testing.T) {
	_, svc := newTestMarketService(t)

	pair, ok := svc.GetPair("EURUSD")
	require.True(t, ok)
	assert.Equal(t, "EURUSD", pair.Symbol)

	pair, ok = svc.GetPair("NOPE")
	assert.False(t, ok)
	assert.Nil(t, pair)
}

func TestListSymbols(t *testing.T) {
	_, svc := newTestMarketService(t)

	symbols := svc.ListSymbols()
	assert.Len(t, symbols, 17)
	assert.Contains(t, symbols, "EURUSD")
	assert.Contains(t, symbols, "BTCUSD")
}

func TestPairsByCategory(t *testing.T) {
	_, svc := newTestMarketService(t)

	assert.Len(t, svc.PairsByCategory(""), 17)
	assert.Len(t, svc.PairsByCategory(model.CategoryMajor), 7)
	assert.Len(t, svc.PairsByCategory(model.CategoryCrypto), 2)
	assert.Empty(t, svc.PairsByCategory(model.PairCategory("bonds")))
}

func TestTrending(t *testing.T) {
	feed, svc := newTestMarketService(t)

	changes := make([]float64, 17)
	changes[0] = 0.5
	changes[3] = -3.2
	changes[8] = 1.7
	changes[12] = -0.9
	setChanges(feed, changes)

	top := svc.Trending(3)
	require.Len(t, top, 3)
	assert.Equal(t, -3.2, top[0].ChangePercent)
	assert.Equal(t, 1.7, top[1].ChangePercent)
	assert.Equal(t, -0.9, top[2].ChangePercent)

	// A non-positive limit means no truncation.
	assert.Len(t, svc.Trending(0), 17)
}

func TestSentiment(t *testing.T) {
	feed, svc := newTestMarketService(t)

	// 10 gainers, 5 losers, 2 flat.
	changes := make([]float64, 17)
	for i := 0; i < 10; i++ {
		changes[i] = 0.01
	}
	for i := 10; i < 15; i++ {
		changes[i] = -0.01
	}
	setChanges(feed, changes)

	s := svc.Sentiment()
	assert.Equal(t, 59, s.BullishPct)
	assert.Equal(t, 29, s.BearishPct)
	assert.Equal(t, 12, s.NeutralPct)
	assert.Equal(t, model.SentimentBullish, s.Label)
}

func TestSentimentBearishAndNeutral(t *testing.T) {
	feed, svc := newTestMarketService(t)

	changes := make([]float64, 17)
	for i := 0; i < 12; i++ {
		changes[i] = -0.01
	}
	setChanges(feed, changes)
	assert.Equal(t, model.SentimentBearish, svc.Sentiment().Label)

	for i := range changes {
		changes[i] = 0
	}
	for i := 0; i < 5; i++ {
		changes[i] = 0.01
	}
	for i := 5; i < 10; i++ {
		changes[i] = -0.01
	}
	setChanges(feed, changes)
	assert.Equal(t, model.SentimentNeutral, svc.Sentiment().Label)
}
