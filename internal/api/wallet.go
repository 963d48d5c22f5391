package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"usdt_banc/internal/cache"
	"usdt_banc/internal/domain"
	"usdt_banc/internal/metrics"
	"usdt_banc/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// WithdrawRequest represents a withdrawal request.
type WithdrawRequest struct {
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	DestinationAddress string  `json:"destination_address" binding:"required"`
	WithdrawalPassword string  `json:"withdrawal_password" binding:"required"`
}

// GetWalletHandler returns the authenticated account's wallet, cached for a
// short window between fund movements.
func GetWalletHandler(svc *service.AccountService, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		key := cache.WalletKey(id)

		var cached domain.Wallet
		if found, err := cc.Get(ctx, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"wallet": cached, "cached": true})
			return
		}
		wallet, err := svc.GetWallet(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cc.Set(ctx, key, wallet, cache.DefaultTTL)
		c.JSON(http.StatusOK, gin.H{"wallet": wallet, "cached": false})
	}
}

// WithdrawHandler moves funds out of the wallet after the ledger engine
// re-verifies the withdrawal password.
func WithdrawHandler(svc *service.AccountService, cc *cache.Cache, m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			return
		}
		var req WithdrawRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, newBalance, err := svc.Withdraw(c.Request.Context(), id, req.Amount, req.DestinationAddress, req.WithdrawalPassword)
		if err != nil {
			m.LedgerOperations.WithLabelValues(domain.TxWithdrawal, "failure").Inc()
			respondError(c, err)
			return
		}
		m.LedgerOperations.WithLabelValues(domain.TxWithdrawal, "success").Inc()
		cc.InvalidateAccount(c.Request.Context(), id)
		c.JSON(http.StatusOK, gin.H{
			"message":        "Withdrawal successful",
			"transaction_id": tx.ID,
			"new_balance":    newBalance,
		})
	}
}

// TransactionHistoryHandler returns a page of the account's ledger records.
func TransactionHistoryHandler(svc *service.AccountService, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			return
		}
		page := 1
		pageSize := 20
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		ctx := c.Request.Context()
		key := cache.HistoryKey(id, page, pageSize)

		var cached struct {
			Transactions []domain.Transaction `json:"transactions"`
			Page         int                  `json:"page"`
			PageSize     int                  `json:"page_size"`
			Total        int64                `json:"total"`
			TotalPages   int                  `json:"total_pages"`
		}
		if found, err := cc.Get(ctx, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"transactions": cached.Transactions,
				"page":         cached.Page,
				"page_size":    cached.PageSize,
				"total":        cached.Total,
				"total_pages":  cached.TotalPages,
				"cached":       true,
			})
			return
		}
		offset := (page - 1) * pageSize
		txs, total, err := svc.Transactions(ctx, id, pageSize, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := gin.H{
			"transactions": txs,
			"page":         page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
			"cached":       false,
		}
		_ = cc.Set(ctx, key, resp, cache.DefaultTTL)
		c.JSON(http.StatusOK, resp)
	}
}
