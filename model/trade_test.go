package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculationDisplay(t *testing.T) {
	calc := TradeCalculation{
		LotSize:         1.5,
		PositionSize:    150000,
		MarginRequired:  1552,
		PipValue:        15,
		RiskAmount:      200,
		PotentialProfit: 400,
		PotentialLoss:   200,
		RiskRewardRatio: 2,
	}

	d := calc.Display("USD")

	assert.Equal(t, "1.50", d.LotSize)
	assert.Equal(t, "150,000", d.PositionSize)
	assert.Equal(t, "2.00", d.RiskRewardRatio)
	assert.Contains(t, d.MarginRequired, "1,552.00")
	assert.Contains(t, d.RiskAmount, "200.00")
}
