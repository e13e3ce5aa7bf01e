package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/database"
	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/rs/zerolog/log"
)

const snapshotMirrorKey = "market:snapshot"

// MarketDataService is the sole read surface over the simulated feed.
// One instance per process, constructed in the routes wiring and shared
// by every consumer.
type MarketDataService interface {
	GetSnapshot(ctx context.Context) (model.MarketSnapshot, error)
	GetPair(symbol string) (*model.ForexPair, bool)
	ListSymbols() []string
	PairsByCategory(category model.PairCategory) []model.ForexPair
	Trending(limit int) []model.ForexPair
	Sentiment() model.MarketSentiment
}

type MarketDataServiceImpl struct {
	feed *MarketFeed
	now  func() time.Time
}

func NewMarketDataService(feed *MarketFeed) MarketDataService {
	return &MarketDataServiceImpl{
		feed: feed,
		now:  feed.config.Now,
	}
}

// GetSnapshot returns a fresh copy of the current instrument set. The
// context is accepted so the signature survives a swap for a networked
// feed; the in-memory read itself never blocks.
func (s *MarketDataServiceImpl) GetSnapshot(ctx context.Context) (model.MarketSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.MarketSnapshot{}, err
	}

	snapshot := model.MarketSnapshot{
		Pairs:        s.feed.Pairs(),
		LastUpdate:   s.feed.LastUpdate(),
		MarketStatus: s.feed.Status(),
		ServerTime:   s.now(),
	}

	s.mirrorSnapshot(snapshot)

	return snapshot, nil
}

func (s *MarketDataServiceImpl) GetPair(symbol string) (*model.ForexPair, bool) {
	pair, ok := s.feed.Pair(symbol)
	if !ok {
		return nil, false
	}
	return &pair, true
}

func (s *MarketDataServiceImpl) ListSymbols() []string {
	pairs := s.feed.Pairs()
	symbols := make([]string, 0, len(pairs))
	for _, p := range pairs {
		symbols = append(symbols, p.Symbol)
	}
	return symbols
}

func (s *MarketDataServiceImpl) PairsByCategory(category model.PairCategory) []model.ForexPair {
	pairs := s.feed.Pairs()
	if category == "" {
		return pairs
	}

	filtered := make([]model.ForexPair, 0, len(pairs))
	for _, p := range pairs {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *MarketDataServiceImpl) Trending(limit int) []model.ForexPair {
	pairs := s.feed.Pairs()

	sort.SliceStable(pairs, func(i, j int) bool {
		return abs(pairs[i].ChangePercent) > abs(pairs[j].ChangePercent)
	})

	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

func (s *MarketDataServiceImpl) Sentiment() model.MarketSentiment {
	pairs := s.feed.Pairs()
	total := len(pairs)
	if total == 0 {
		return model.MarketSentiment{Label: model.SentimentNeutral}
	}

	var gainers, losers int
	for _, p := range pairs {
		switch {
		case p.Change > 0:
			gainers++
		case p.Change < 0:
			losers++
		}
	}

	label := model.SentimentNeutral
	if gainers > losers {
		label = model.SentimentBullish
	} else if losers > gainers {
		label = model.SentimentBearish
	}

	return model.MarketSentiment{
		BullishPct: roundPct(gainers, total),
		BearishPct: roundPct(losers, total),
		NeutralPct: roundPct(total-gainers-losers, total),
		Label:      label,
	}
}

// mirrorSnapshot pushes the snapshot JSON to Redis for out-of-process
// consumers. Failures are logged and swallowed; the mirror is best
// effort and disabled when Redis is not configured.
func (s *MarketDataServiceImpl) mirrorSnapshot(snapshot model.MarketSnapshot) {
	if database.RedisHelper == nil {
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal snapshot for mirror")
		return
	}

	_ = database.RedisHelper.Set(snapshotMirrorKey, payload, 15*time.Second)
}

func roundPct(count, total int) int {
	return int(float64(count)/float64(total)*100 + 0.5)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
