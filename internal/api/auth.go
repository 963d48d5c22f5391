package api

import (
	"net/http" // HTTP status codes

	"usdt_banc/internal/metrics"
	"usdt_banc/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	WithdrawalPassword string `json:"wallet_withdrawal_password" binding:"required,min=8"`
	AgreeTerms         bool   `json:"agree_terms"` // Checked in the service, not by binding
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents a password-reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SignupHandler registers a new account with a fresh wallet.
func SignupHandler(svc *service.AccountService, m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := svc.Signup(c.Request.Context(), service.SignupInput{
			Name:               req.Name,
			Email:              req.Email,
			Password:           req.Password,
			WithdrawalPassword: req.WithdrawalPassword,
			AgreeTerms:         req.AgreeTerms,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		m.Signups.Inc()
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Welcome to USDT BANC – Your Trusted Gateway to Stable Crypto Finance.",
			"account_id": id,
		})
	}
}

// LoginHandler authenticates an account and returns a session token.
func LoginHandler(svc *service.AccountService, m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, summary, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			m.Logins.WithLabelValues("failure").Inc()
			respondError(c, err)
			return
		}
		m.Logins.WithLabelValues("success").Inc()
		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
			"user":         summary,
		})
	}
}

// ForgotPasswordHandler acks every request with the same message so the
// response never reveals whether the email is registered.
func ForgotPasswordHandler(svc *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		svc.ForgotPassword(c.Request.Context(), req.Email)
		c.JSON(http.StatusOK, gin.H{"message": "If email exists, password reset instructions have been sent"})
	}
}
