package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/middleware"

	"github.com/go-resty/resty/v2"
)

var (
	exchangeRateUrl = "https://api.exchangerate.host"
	latestPath      = "/latest"
)

type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRateClient fetches real USD rates used to re-anchor the
// simulated feed's baselines at startup.
type ExchangeRateClient interface {
	FetchUsdRates(symbols []string) (map[string]float64, error)
}

type ExchangeRateClientImpl struct {
	client *resty.Client
}

func NewExchangeRateClient() ExchangeRateClient {
	client := resty.New().
		SetBaseURL(exchangeRateUrl).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &ExchangeRateClientImpl{client: client}
}

// FetchUsdRates returns counter-currency rates per one USD for the
// requested currency codes.
func (c *ExchangeRateClientImpl) FetchUsdRates(symbols []string) (map[string]float64, error) {
	resp, err := c.client.R().
		SetQueryParams(map[string]string{
			"base":    "USD",
			"symbols": strings.Join(symbols, ","),
		}).
		Get(latestPath)

	if err != nil || !resp.IsSuccess() {
		return nil, fmt.Errorf("exchange rate API error: %v", err)
	}

	var data latestRatesResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("rates decode error: %w", err)
	}

	if len(data.Rates) == 0 {
		return nil, fmt.Errorf("exchange rate API returned no rates")
	}

	return data.Rates, nil
}
