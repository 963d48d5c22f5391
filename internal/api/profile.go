package api

import (
	"net/http" // HTTP status codes
	"time"

	"usdt_banc/internal/cache"
	"usdt_banc/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// ProfileResponse is the public shape of an account profile.
type ProfileResponse struct {
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileHandler returns the authenticated account's profile.
func ProfileHandler(svc *service.AccountService, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		key := cache.ProfileKey(id)

		var cached ProfileResponse
		if found, err := cc.Get(ctx, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"user": cached, "cached": true})
			return
		}
		account, err := svc.GetProfile(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		resp := ProfileResponse{
			AccountID: account.ID,
			Name:      account.Name,
			Email:     account.Email,
			CreatedAt: account.CreatedAt,
		}
		_ = cc.Set(ctx, key, resp, cache.DefaultTTL)
		c.JSON(http.StatusOK, gin.H{"user": resp, "cached": false})
	}
}
