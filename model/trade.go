package model

import (
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- TRADE PARAMETERS ---
// TradeParameters is the user input for a position-sizing calculation.
type TradeParameters struct {
	Symbol          string         `json:"symbol" bson:"symbol"`
	AccountBalance  float64        `json:"accountBalance" bson:"accountBalance"`
	AccountCurrency string         `json:"accountCurrency" bson:"accountCurrency"`
	RiskPercentage  float64        `json:"riskPercentage" bson:"riskPercentage"`
	StopLossPips    float64        `json:"stopLossPips" bson:"stopLossPips"`
	TakeProfitPips  float64        `json:"takeProfitPips" bson:"takeProfitPips"`
	Leverage        float64        `json:"leverage" bson:"leverage"`
	Direction       TradeDirection `json:"direction" bson:"direction"`
	Notes           string         `json:"notes,omitempty" bson:"notes,omitempty"`
}

// TradeCalculation is derived from TradeParameters plus the matching quote.
// It has no identity of its own and is recomputed whenever inputs change.
type TradeCalculation struct {
	LotSize         float64 `json:"lotSize" bson:"lotSize"`
	PositionSize    float64 `json:"positionSize" bson:"positionSize"`
	MarginRequired  float64 `json:"marginRequired" bson:"marginRequired"`
	PipValue        float64 `json:"pipValue" bson:"pipValue"`
	RiskAmount      float64 `json:"riskAmount" bson:"riskAmount"`
	PotentialProfit float64 `json:"potentialProfit" bson:"potentialProfit"`
	PotentialLoss   float64 `json:"potentialLoss" bson:"potentialLoss"`
	RiskRewardRatio float64 `json:"riskRewardRatio" bson:"riskRewardRatio"`
}

// CalculationDisplay is the calculation rendered as locale-formatted
// strings, monetary amounts in the request's account currency.
type CalculationDisplay struct {
	LotSize         string `json:"lotSize"`
	PositionSize    string `json:"positionSize"`
	MarginRequired  string `json:"marginRequired"`
	PipValue        string `json:"pipValue"`
	RiskAmount      string `json:"riskAmount"`
	PotentialProfit string `json:"potentialProfit"`
	PotentialLoss   string `json:"potentialLoss"`
	RiskRewardRatio string `json:"riskRewardRatio"`
}

func (c TradeCalculation) Display(accountCurrency string) CalculationDisplay {
	return CalculationDisplay{
		LotSize:         util.FormatNumber(c.LotSize, 2),
		PositionSize:    util.FormatNumber(c.PositionSize, 0),
		MarginRequired:  util.FormatCurrency(c.MarginRequired, accountCurrency),
		PipValue:        util.FormatCurrency(c.PipValue, accountCurrency),
		RiskAmount:      util.FormatCurrency(c.RiskAmount, accountCurrency),
		PotentialProfit: util.FormatCurrency(c.PotentialProfit, accountCurrency),
		PotentialLoss:   util.FormatCurrency(c.PotentialLoss, accountCurrency),
		RiskRewardRatio: util.FormatNumber(c.RiskRewardRatio, 2),
	}
}

// --- TRADE SETUP ---
// TradeSetup is a persisted parameters+calculation pair owned by a user.
// Setups are write-once: a save is always a new record.
type TradeSetup struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      int64              `json:"userId" bson:"userId"`
	Parameters  TradeParameters    `json:"parameters" bson:"parameters"`
	Calculation TradeCalculation   `json:"calculation" bson:"calculation"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// --- Huma Structs ---

type CalculateTradeRequest struct {
	Body TradeParameters
}

type CalculationResult struct {
	Calculation TradeCalculation   `json:"calculation"`
	Display     CalculationDisplay `json:"display"`
}

type CalculationResponse struct {
	Body CalculationResult
}

type SaveSetupRequest struct {
	Body TradeParameters
}

type SetupResponse struct {
	Body TradeSetup
}

type SetupListResponse struct {
	Body []TradeSetup
}

type DeleteSetupInput struct {
	ID string `path:"id" doc:"Trade setup ID"`
}
