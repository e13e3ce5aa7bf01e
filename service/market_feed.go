package service

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/rs/zerolog/log"
)

// FeedConfig holds the knobs of the simulated market feed.
type FeedConfig struct {
	// TickInterval is the scheduler resolution; every tick re-evaluates
	// market hours and decides whether prices may move.
	TickInterval time.Duration
	// UpdateInterval is the minimum elapsed time between two price
	// mutations. Snapshots taken inside one window are identical.
	UpdateInterval time.Duration
	// Now is the clock; tests stub it to pin market hours.
	Now func() time.Time
	// RandSeed pins the price generator; 0 seeds from the clock.
	RandSeed uint64
}

func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		TickInterval:   1 * time.Second,
		UpdateInterval: 10 * time.Second,
		Now:            time.Now,
	}
}

// volatilityTable maps a symbol to the magnitude of its per-update price
// movement. Unlisted symbols fall back to defaultVolatility.
var volatilityTable = map[string]float64{
	"EURUSD": 0.0008,
	"GBPUSD": 0.0012,
	"USDJPY": 0.3,
	"XAUUSD": 5.0,
	"BTCUSD": 500.0,
	"ETHUSD": 50.0,
	"USOIL":  0.5,
}

const defaultVolatility = 0.0005

func volatilityFor(symbol string) float64 {
	v, ok := volatilityTable[symbol]
	if !ok || v <= 0 {
		return defaultVolatility
	}
	return v
}

// MarketFeed owns the canonical instrument set and advances quotes on a
// wall-clock timer while the market is open. All mutation happens inside
// tick; readers always get copies.
type MarketFeed struct {
	mu         sync.RWMutex
	pairs      []model.ForexPair
	lastUpdate time.Time
	marketOpen bool

	config FeedConfig
	rng    *rand.Rand
}

// NewMarketFeed seeds the instrument set and applies the one-time
// construction jitter. The feed does not move prices until Start.
func NewMarketFeed(config FeedConfig) *MarketFeed {
	if config.TickInterval <= 0 {
		config.TickInterval = 1 * time.Second
	}
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = 10 * time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	seed := config.RandSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	f := &MarketFeed{
		config: config,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	now := config.Now()
	f.pairs = f.seedPairs(now)
	f.lastUpdate = now
	f.marketOpen = IsForexMarketOpen(now)

	return f
}

// Start launches the recurring tick. Cancelling the context is the
// shutdown hook; the goroutine owns the ticker and stops with it.
func (f *MarketFeed) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(f.config.TickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				f.Tick(f.config.Now())
			case <-ctx.Done():
				log.Info().Msg("market feed stopped")
				return
			}
		}
	}()
}

// Tick re-evaluates market hours and, at most once per UpdateInterval,
// mutates every quote. Exported so tests can drive the feed without the
// wall clock.
func (f *MarketFeed) Tick(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.marketOpen = IsForexMarketOpen(now)

	if now.Sub(f.lastUpdate) < f.config.UpdateInterval {
		return
	}

	if f.marketOpen {
		f.mutatePairs(now)
	}
	f.lastUpdate = now
}

// IsForexMarketOpen reports whether the simulated market trades at the
// given instant. The market is closed from Friday 22:00 UTC until
// Sunday 22:00 UTC.
func IsForexMarketOpen(t time.Time) bool {
	utc := t.UTC()
	switch utc.Weekday() {
	case time.Saturday:
		return false
	case time.Sunday:
		return utc.Hour() >= 22
	case time.Friday:
		return utc.Hour() < 22
	}
	return true
}

// Pairs returns a defensive copy of the instrument set in seed order.
func (f *MarketFeed) Pairs() []model.ForexPair {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]model.ForexPair, len(f.pairs))
	copy(out, f.pairs)
	return out
}

// Pair returns a copy of a single instrument by symbol.
func (f *MarketFeed) Pair(symbol string) (model.ForexPair, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, p := range f.pairs {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return model.ForexPair{}, false
}

// LastUpdate is the time of the most recent completed mutation window.
func (f *MarketFeed) LastUpdate() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lastUpdate
}

// Status reports the market state as of the last tick.
func (f *MarketFeed) Status() model.MarketStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.marketOpen {
		return model.MarketOpen
	}
	return model.MarketClosed
}

// Reanchor replaces USD-leg baselines with externally fetched rates,
// keyed by counter currency (rates["EUR"] = EUR per USD). Quotes keep
// their spread and change fields; prices snap to the live level.
func (f *MarketFeed) Reanchor(rates map[string]float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	anchored := 0
	for i := range f.pairs {
		p := &f.pairs[i]
		if p.Category == model.CategoryCommodity || p.Category == model.CategoryCrypto {
			continue
		}

		base, quote := p.Symbol[:3], p.Symbol[3:]
		var bid float64
		switch {
		case base == "USD":
			if r, ok := rates[quote]; ok && r > 0 {
				bid = r
			}
		case quote == "USD":
			if r, ok := rates[base]; ok && r > 0 {
				bid = 1 / r
			}
		}
		if bid == 0 {
			continue
		}

		decimals := decimalsFor(p.Symbol)
		p.Bid = roundTo(bid, decimals)
		p.Ask = roundTo(bid+f.spreadInPrice(p), decimals)
		anchored++
	}

	log.Info().Int("pairs", anchored).Msg("re-anchored feed to live rates")
}

func (f *MarketFeed) mutatePairs(now time.Time) {
	for i := range f.pairs {
		p := &f.pairs[i]

		volatility := volatilityFor(p.Symbol)
		trendBias := (f.rng.Float64() - 0.5) * 0.3 * volatility
		noise := (f.rng.Float64() - 0.5) * volatility

		oldBid := p.Bid
		newBid := oldBid + trendBias + noise
		change := newBid - oldBid
		changePercent := (change / oldBid) * 100

		decimals := decimalsFor(p.Symbol)
		p.Bid = roundTo(newBid, decimals)
		p.Ask = roundTo(newBid+f.spreadInPrice(p), decimals)
		p.Change = roundTo(change, decimals)
		p.ChangePercent = roundTo(changePercent, 2)
		p.LastUpdate = now
	}
}

// spreadInPrice converts the stored spread to price units. Currency
// pairs quote the spread in pips; commodity and crypto instruments
// quote it directly in price units.
func (f *MarketFeed) spreadInPrice(p *model.ForexPair) float64 {
	switch p.Category {
	case model.CategoryCommodity, model.CategoryCrypto:
		return p.Spread
	}
	if isJpyQuoted(p.Symbol) {
		return p.Spread * 0.01
	}
	return p.Spread * 0.0001
}

func isJpyQuoted(symbol string) bool {
	return len(symbol) >= 6 && symbol[3:6] == "JPY"
}

func decimalsFor(symbol string) int {
	if isJpyQuoted(symbol) {
		return 3
	}
	return 5
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

type seedQuote struct {
	symbol    string
	name      string
	category  model.PairCategory
	bid       float64
	jitter    float64
	spread    float64
	change    float64
	chgJitter float64
	pct       float64
	pctJitter float64
	high      float64
	low       float64
	volBase   int64
	volRange  int64
}

var seedQuotes = []seedQuote{
	{"EURUSD", "Euro vs US Dollar", model.CategoryMajor, 1.0300, 0.0050, 2, 0.0015, 0.005, 0.15, 0.5, 1.0350, 1.0285, 500000, 1000000},
	{"GBPUSD", "British Pound vs US Dollar", model.CategoryMajor, 1.2480, 0.0080, 2, -0.0032, 0.008, -0.26, 0.6, 1.2520, 1.2445, 400000, 800000},
	{"USDJPY", "US Dollar vs Japanese Yen", model.CategoryMajor, 155.20, 1.50, 3, 0.85, 2.0, 0.55, 1.2, 156.80, 154.20, 350000, 750000},
	{"USDCHF", "US Dollar vs Swiss Franc", model.CategoryMajor, 0.8890, 0.0040, 2, -0.0025, 0.004, -0.28, 0.4, 0.8920, 0.8865, 200000, 400000},
	{"AUDUSD", "Australian Dollar vs US Dollar", model.CategoryMajor, 0.6245, 0.0060, 2, 0.0042, 0.006, 0.68, 0.9, 0.6280, 0.6220, 250000, 450000},
	{"USDCAD", "US Dollar vs Canadian Dollar", model.CategoryMajor, 1.4420, 0.0070, 2, -0.0035, 0.007, -0.24, 0.5, 1.4465, 1.4385, 180000, 380000},
	{"NZDUSD", "New Zealand Dollar vs US Dollar", model.CategoryMajor, 0.5665, 0.0055, 2, 0.0028, 0.005, 0.50, 0.8, 0.5695, 0.5640, 150000, 320000},
	{"EURGBP", "Euro vs British Pound", model.CategoryMinor, 0.8256, 0.0040, 3, 0.0018, 0.004, 0.22, 0.5, 0.8285, 0.8230, 120000, 280000},
	{"EURJPY", "Euro vs Japanese Yen", model.CategoryMinor, 159.85, 1.20, 3, 0.42, 1.5, 0.26, 0.9, 161.20, 158.60, 100000, 250000},
	{"GBPJPY", "British Pound vs Japanese Yen", model.CategoryMinor, 193.75, 1.80, 4, -0.65, 2.0, -0.33, 1.0, 195.40, 192.80, 90000, 220000},
	{"EURCHF", "Euro vs Swiss Franc", model.CategoryMinor, 0.9158, 0.0045, 3, -0.0022, 0.004, -0.24, 0.4, 0.9185, 0.9140, 80000, 180000},
	{"USDSGD", "US Dollar vs Singapore Dollar", model.CategoryExotic, 1.3685, 0.0050, 3, 0.0025, 0.005, 0.18, 0.4, 1.3720, 1.3665, 60000, 140000},
	{"USDZAR", "US Dollar vs South African Rand", model.CategoryExotic, 18.845, 0.200, 7, 0.125, 0.3, 0.66, 1.5, 19.050, 18.720, 50000, 120000},
	{"XAUUSD", "Gold vs US Dollar", model.CategoryCommodity, 2630.50, 25.0, 0.50, -12.50, 30.0, -0.47, 1.1, 2658.20, 2615.80, 300000, 500000},
	{"USOIL", "US Crude Oil", model.CategoryCommodity, 79.85, 2.00, 0.05, 1.25, 3.0, 1.59, 3.5, 81.20, 78.50, 300000, 600000},
	{"BTCUSD", "Bitcoin vs US Dollar", model.CategoryCrypto, 98500.00, 2500.0, 20.0, -1850.0, 4000.0, -1.84, 4.0, 102500.00, 96200.00, 500000, 1000000},
	{"ETHUSD", "Ethereum vs US Dollar", model.CategoryCrypto, 3285.50, 150.0, 1.50, -125.0, 200.0, -3.67, 6.0, 3450.00, 3180.00, 400000, 800000},
}

func (f *MarketFeed) seedPairs(now time.Time) []model.ForexPair {
	pairs := make([]model.ForexPair, 0, len(seedQuotes))

	for _, s := range seedQuotes {
		decimals := decimalsFor(s.symbol)

		p := model.ForexPair{
			Symbol:     s.symbol,
			Name:       s.name,
			Category:   s.category,
			Spread:     s.spread,
			DailyHigh:  s.high,
			DailyLow:   s.low,
			Volume:     s.volBase + f.rng.Int64N(s.volRange),
			LastUpdate: now,
		}

		bid := s.bid + (f.rng.Float64()-0.5)*s.jitter
		p.Bid = roundTo(bid, decimals)
		p.Ask = roundTo(bid+f.spreadInPrice(&p), decimals)
		p.Change = roundTo(s.change+(f.rng.Float64()-0.5)*s.chgJitter, decimals)
		p.ChangePercent = roundTo(s.pct+(f.rng.Float64()-0.5)*s.pctJitter, 2)

		pairs = append(pairs, p)
	}

	return pairs
}
