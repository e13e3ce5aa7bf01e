// Package engine implements the trade-economics math: pip value, lot
// sizing, margin and risk/reward. Every function is pure and safe for
// concurrent use.
package engine

import (
	"fmt"
	"math"

	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
)

// ContractSize is the number of base-currency units in one standard lot.
const ContractSize = 100000.0

// BaseCurrency returns the first three letters of a pair symbol.
func BaseCurrency(symbol string) string {
	if len(symbol) < 3 {
		return ""
	}
	return symbol[:3]
}

// QuoteCurrency returns characters 4-6 of a pair symbol.
func QuoteCurrency(symbol string) string {
	if len(symbol) < 6 {
		return ""
	}
	return symbol[3:6]
}

// PipSize is 0.01 for JPY-quoted pairs and 0.0001 otherwise.
func PipSize(symbol string) float64 {
	if QuoteCurrency(symbol) == "JPY" {
		return 0.01
	}
	return 0.0001
}

// PipValue computes the pip value of a position in the account currency.
//
// Three pricing regimes apply: the direct regime when the quote currency
// equals the account currency, the inverse regime when the base currency
// equals the account currency (divides by the reference price), and the
// cross regime which deliberately reuses the direct formula instead of
// triangulating through a third rate.
func PipValue(symbol string, lotSize float64, accountCurrency string, referencePrice float64) float64 {
	pipSize := PipSize(symbol)
	actualLotSize := lotSize * ContractSize

	switch accountCurrency {
	case QuoteCurrency(symbol):
		return (pipSize * actualLotSize) / ContractSize
	case BaseCurrency(symbol):
		return (pipSize * actualLotSize) / (referencePrice * ContractSize)
	default:
		return (pipSize * actualLotSize) / ContractSize
	}
}

// LotSize converts an account risk budget into a lot count, rounded
// half-up to two decimals. stopLossPips and perLotPipValue must be
// positive; TradeDetails guards this before calling.
func LotSize(accountBalance, riskPercentage, stopLossPips, perLotPipValue float64) float64 {
	riskAmount := accountBalance * (riskPercentage / 100)
	lotSize := riskAmount / (stopLossPips * perLotPipValue)
	return round2(lotSize)
}

// MarginRequired computes the capital locked for a position. JPY-quoted
// pairs carry an extra /100 to account for the pip-size difference.
func MarginRequired(lotSize, referencePrice, leverage float64, symbol string) float64 {
	positionSize := lotSize * ContractSize

	var margin float64
	if QuoteCurrency(symbol) == "JPY" {
		margin = (positionSize * referencePrice) / (leverage * 100)
	} else {
		margin = (positionSize * referencePrice) / leverage
	}

	return round2(margin)
}

// TradeDetails runs the full sizing pipeline for one instrument quote.
// The reference price is the ask on a buy and the bid on a sell, so the
// spread is paid on entry. Non-positive balance, risk, stop, target or
// leverage yields ErrInvalidTradeInput instead of NaN propagation.
func TradeDetails(params model.TradeParameters, pair model.ForexPair) (model.TradeCalculation, error) {
	if err := validateParams(params); err != nil {
		return model.TradeCalculation{}, err
	}

	referencePrice := pair.Bid
	if params.Direction == model.DirectionBuy {
		referencePrice = pair.Ask
	}

	perLotPipValue := PipValue(params.Symbol, 1, params.AccountCurrency, referencePrice)
	lotSize := LotSize(params.AccountBalance, params.RiskPercentage, params.StopLossPips, perLotPipValue)

	return model.TradeCalculation{
		LotSize:         lotSize,
		PositionSize:    lotSize * ContractSize,
		MarginRequired:  MarginRequired(lotSize, referencePrice, params.Leverage, params.Symbol),
		PipValue:        perLotPipValue * lotSize,
		RiskAmount:      params.AccountBalance * (params.RiskPercentage / 100),
		PotentialProfit: params.TakeProfitPips * perLotPipValue * lotSize,
		PotentialLoss:   params.StopLossPips * perLotPipValue * lotSize,
		RiskRewardRatio: params.TakeProfitPips / params.StopLossPips,
	}, nil
}

func validateParams(params model.TradeParameters) error {
	switch {
	case params.AccountBalance <= 0:
		return fmt.Errorf("%w: accountBalance must be positive", customerrors.ErrInvalidTradeInput)
	case params.RiskPercentage <= 0:
		return fmt.Errorf("%w: riskPercentage must be positive", customerrors.ErrInvalidTradeInput)
	case params.StopLossPips <= 0:
		return fmt.Errorf("%w: stopLossPips must be positive", customerrors.ErrInvalidTradeInput)
	case params.TakeProfitPips <= 0:
		return fmt.Errorf("%w: takeProfitPips must be positive", customerrors.ErrInvalidTradeInput)
	case params.Leverage <= 0:
		return fmt.Errorf("%w: leverage must be positive", customerrors.ErrInvalidTradeInput)
	case !params.Direction.Valid():
		return fmt.Errorf("%w: direction must be buy or sell", customerrors.ErrInvalidTradeInput)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
