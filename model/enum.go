package model

type PairCategory string

const (
	CategoryMajor     PairCategory = "major"
	CategoryMinor     PairCategory = "minor"
	CategoryExotic    PairCategory = "exotic"
	CategoryCommodity PairCategory = "commodity"
	CategoryCrypto    PairCategory = "crypto"
)

func (c PairCategory) Valid() bool {
	switch c {
	case CategoryMajor, CategoryMinor, CategoryExotic, CategoryCommodity, CategoryCrypto:
		return true
	}
	return false
}

type TradeDirection string

const (
	DirectionBuy  TradeDirection = "buy"
	DirectionSell TradeDirection = "sell"
)

func (d TradeDirection) Valid() bool {
	return d == DirectionBuy || d == DirectionSell
}

type MarketStatus string

const (
	MarketOpen   MarketStatus = "open"
	MarketClosed MarketStatus = "closed"
)

type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "bullish"
	SentimentBearish SentimentLabel = "bearish"
	SentimentNeutral SentimentLabel = "neutral"
)
