package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"usdt_banc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopMarkets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"tether","symbol":"usdt","name":"Tether","current_price":1.0,"market_cap":83000000000,"market_cap_rank":3},
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":64000,"market_cap":1260000000000,"market_cap_rank":1}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	instruments, err := client.TopMarkets(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, instruments, 2)
	assert.Equal(t, "tether", instruments[0].ID)
	assert.Equal(t, 1.0, instruments[0].CurrentPrice)
}

func TestTopMarkets_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.TopMarkets(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrMarketUnavailable)
}

func TestTopMarkets_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.TopMarkets(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrMarketUnavailable)
}
