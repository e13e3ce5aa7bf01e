package engine

import (
	"testing"

	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipSize(t *testing.T) {
	assert.Equal(t, 0.0001, PipSize("EURUSD"))
	assert.Equal(t, 0.01, PipSize("USDJPY"))
	assert.Equal(t, 0.01, PipSize("GBPJPY"))
	assert.Equal(t, 0.0001, PipSize("XAUUSD"))
}

func TestPipValue(t *testing.T) {
	tests := []struct {
		name            string
		symbol          string
		lotSize         float64
		accountCurrency string
		referencePrice  float64
		want            float64
	}{
		{
			name:            "direct regime quote currency matches account",
			symbol:          "EURUSD",
			lotSize:         1,
			accountCurrency: "USD",
			referencePrice:  1.0300,
			want:            0.0001,
		},
		{
			name:            "inverse regime base currency matches account",
			symbol:          "USDCHF",
			lotSize:         1,
			accountCurrency: "USD",
			referencePrice:  0.8890,
			want:            0.0001 / 0.8890,
		},
		{
			name:            "cross regime falls back to direct formula",
			symbol:          "EURGBP",
			lotSize:         1,
			accountCurrency: "USD",
			referencePrice:  0.8256,
			want:            0.0001,
		},
		{
			name:            "JPY quoted inverse regime",
			symbol:          "USDJPY",
			lotSize:         1,
			accountCurrency: "USD",
			referencePrice:  155.23,
			want:            0.01 / 155.23,
		},
		{
			name:            "lot size scales linearly",
			symbol:          "EURUSD",
			lotSize:         2.5,
			accountCurrency: "USD",
			referencePrice:  1.0300,
			want:            0.00025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PipValue(tt.symbol, tt.lotSize, tt.accountCurrency, tt.referencePrice)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestLotSize(t *testing.T) {
	// riskAmount = 10000 * 2% = 200; 200 / (20 * 0.0001) = 100000
	assert.Equal(t, 100000.0, LotSize(10000, 2, 20, 0.0001))

	// riskAmount = 10000 * 1% = 100; 100 / (50 * 10) = 0.2
	assert.Equal(t, 0.2, LotSize(10000, 1, 50, 10))

	// rounding to two decimals, half-up
	assert.Equal(t, 0.33, LotSize(10000, 1, 30, 10))
}

func TestMarginRequired(t *testing.T) {
	// 1 lot EURUSD at 1.0300 with 100x leverage: 100000*1.03/100 = 1030
	assert.Equal(t, 1030.0, MarginRequired(1, 1.0300, 100, "EURUSD"))

	// JPY pairs divide by an extra 100: 100000*155.20/(100*100) = 1552
	assert.Equal(t, 1552.0, MarginRequired(1, 155.20, 100, "USDJPY"))
}

func validParams() model.TradeParameters {
	return model.TradeParameters{
		Symbol:          "EURUSD",
		AccountBalance:  10000,
		AccountCurrency: "USD",
		RiskPercentage:  2,
		StopLossPips:    20,
		TakeProfitPips:  40,
		Leverage:        100,
		Direction:       model.DirectionBuy,
	}
}

func eurusd() model.ForexPair {
	return model.ForexPair{
		Symbol:   "EURUSD",
		Category: model.CategoryMajor,
		Bid:      1.0300,
		Ask:      1.0302,
		Spread:   2,
	}
}

func TestTradeDetails(t *testing.T) {
	calc, err := TradeDetails(validParams(), eurusd())
	require.NoError(t, err)

	// perLotPipValue = 0.0001; lotSize = 200/(20*0.0001) = 100000
	assert.Equal(t, 100000.0, calc.LotSize)
	assert.Equal(t, 100000.0*ContractSize, calc.PositionSize)
	assert.Equal(t, 200.0, calc.RiskAmount)
	assert.InDelta(t, 0.0001*100000, calc.PipValue, 1e-9)
	assert.InDelta(t, 20*0.0001*100000, calc.PotentialLoss, 1e-9)
	assert.InDelta(t, 40*0.0001*100000, calc.PotentialProfit, 1e-9)
	assert.Equal(t, 2.0, calc.RiskRewardRatio)
}

func TestTradeDetailsReferencePrice(t *testing.T) {
	pair := eurusd()

	buyParams := validParams()
	buyCalc, err := TradeDetails(buyParams, pair)
	require.NoError(t, err)

	sellParams := validParams()
	sellParams.Direction = model.DirectionSell
	sellCalc, err := TradeDetails(sellParams, pair)
	require.NoError(t, err)

	// entry pays the spread: margin on the buy uses the ask, on the sell the bid
	assert.Equal(t, MarginRequired(buyCalc.LotSize, pair.Ask, 100, "EURUSD"), buyCalc.MarginRequired)
	assert.Equal(t, MarginRequired(sellCalc.LotSize, pair.Bid, 100, "EURUSD"), sellCalc.MarginRequired)
	assert.Greater(t, buyCalc.MarginRequired, sellCalc.MarginRequired)
}

func TestTradeDetailsRejectsInvalidInput(t *testing.T) {
	mutations := map[string]func(*model.TradeParameters){
		"zero balance":      func(p *model.TradeParameters) { p.AccountBalance = 0 },
		"negative risk":     func(p *model.TradeParameters) { p.RiskPercentage = -1 },
		"zero stop loss":    func(p *model.TradeParameters) { p.StopLossPips = 0 },
		"zero take profit":  func(p *model.TradeParameters) { p.TakeProfitPips = 0 },
		"zero leverage":     func(p *model.TradeParameters) { p.Leverage = 0 },
		"bad direction":     func(p *model.TradeParameters) { p.Direction = "hold" },
		"negative balance":  func(p *model.TradeParameters) { p.AccountBalance = -500 },
		"negative leverage": func(p *model.TradeParameters) { p.Leverage = -30 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			params := validParams()
			mutate(&params)
			_, err := TradeDetails(params, eurusd())
			assert.ErrorIs(t, err, customerrors.ErrInvalidTradeInput)
		})
	}
}
