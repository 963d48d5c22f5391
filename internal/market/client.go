package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"usdt_banc/internal/domain"
)

// DefaultBaseURL points at the public CoinGecko API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Instrument is one ranked market entry from the upstream source.
type Instrument struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
}

// Client fetches ranked market data. It is read-only and fully independent
// of account and ledger state; any failure surfaces as
// domain.ErrMarketUnavailable and never affects the caller's wallet.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a market client. An empty baseURL selects CoinGecko.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// TopMarkets returns the top n instruments by market cap, priced in USD.
func (c *Client) TopMarkets(ctx context.Context, n int) ([]Instrument, error) {
	url := c.baseURL + "/coins/markets?vs_currency=usd&order=market_cap_desc&sparkline=false&page=1&per_page=" + strconv.Itoa(n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", domain.ErrMarketUnavailable, resp.StatusCode)
	}
	var instruments []Instrument
	if err := json.NewDecoder(resp.Body).Decode(&instruments); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, err)
	}
	return instruments, nil
}
