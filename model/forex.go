package model

import "time"

// --- FOREX PAIR ---
// ForexPair is a single quoted instrument in the simulated feed.
// Spread is quoted in pips for currency pairs and directly in price
// units for commodity/crypto symbols.
type ForexPair struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Category      PairCategory `json:"category"`
	Bid           float64      `json:"bid"`
	Ask           float64      `json:"ask"`
	Spread        float64      `json:"spread"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	DailyHigh     float64      `json:"dailyHigh"`
	DailyLow      float64      `json:"dailyLow"`
	Volume        int64        `json:"volume"`
	LastUpdate    time.Time    `json:"lastUpdate"`
}

// MarketSnapshot is an immutable copy of the full instrument set.
type MarketSnapshot struct {
	Pairs        []ForexPair  `json:"pairs"`
	LastUpdate   time.Time    `json:"lastUpdate"`
	MarketStatus MarketStatus `json:"marketStatus"`
	ServerTime   time.Time    `json:"serverTime"`
}

// MarketSentiment aggregates gainers vs losers across the snapshot.
type MarketSentiment struct {
	BullishPct int            `json:"bullish"`
	BearishPct int            `json:"bearish"`
	NeutralPct int            `json:"neutral"`
	Label      SentimentLabel `json:"sentiment"`
}

// --- Huma Structs ---

type SnapshotResponse struct {
	Body MarketSnapshot
}

type GetPairInput struct {
	Symbol string `path:"symbol" doc:"Instrument symbol" example:"EURUSD"`
}

type PairResponse struct {
	Body ForexPair
}

type ListPairsInput struct {
	Category string `query:"category" required:"false" doc:"Optional category filter" example:"major"`
}

type PairListResponse struct {
	Body []ForexPair
}

type SymbolListResponse struct {
	Body []string
}

type TrendingInput struct {
	Limit int `query:"limit" default:"5" minimum:"1" doc:"Maximum number of pairs returned"`
}

type SentimentResponse struct {
	Body MarketSentiment
}
