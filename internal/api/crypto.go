package api

import (
	"net/http" // HTTP status codes

	"usdt_banc/internal/cache"
	"usdt_banc/internal/domain"
	"usdt_banc/internal/market"
	"usdt_banc/internal/metrics"
	"usdt_banc/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// topMarketsCount is how many instruments the top endpoint returns.
const topMarketsCount = 10

// BuyRequest represents a crypto purchase request. Card details are accepted
// but never stored; payment capture is simulated.
type BuyRequest struct {
	Amount        float64        `json:"amount" binding:"required,gt=0"`
	CryptoType    string         `json:"crypto_type" binding:"required"`
	PaymentMethod string         `json:"payment_method" binding:"required"`
	CardDetails   map[string]any `json:"card_details"`
}

// BuyHandler credits the wallet with a purchased amount.
func BuyHandler(svc *service.AccountService, cc *cache.Cache, m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			return
		}
		var req BuyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, _, err := svc.Buy(c.Request.Context(), id, req.Amount, req.CryptoType, req.PaymentMethod)
		if err != nil {
			m.LedgerOperations.WithLabelValues(domain.TxPurchase, "failure").Inc()
			respondError(c, err)
			return
		}
		m.LedgerOperations.WithLabelValues(domain.TxPurchase, "success").Inc()
		cc.InvalidateAccount(c.Request.Context(), id)
		c.JSON(http.StatusOK, gin.H{
			"message":        "Crypto purchase successful",
			"transaction_id": tx.ID,
			"amount":         tx.Amount,
			"crypto_type":    tx.CryptoType,
		})
	}
}

// TopCryptoHandler is a read-only passthrough to the market-data source,
// cached so upstream rate limits are not hit on every page load. Upstream
// failure never touches account or ledger state.
func TopCryptoHandler(client *market.Client, cc *cache.Cache, m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := cache.MarketKey(topMarketsCount)

		var cached []market.Instrument
		if found, err := cc.Get(ctx, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"cryptocurrencies": cached, "cached": true})
			return
		}
		instruments, err := client.TopMarkets(ctx, topMarketsCount)
		if err != nil {
			m.MarketFailures.Inc()
			respondError(c, err)
			return
		}
		_ = cc.Set(ctx, key, instruments, cache.DefaultTTL)
		c.JSON(http.StatusOK, gin.H{"cryptocurrencies": instruments, "cached": false})
	}
}
