package main

import (
	"context"
	"log"
	"net/http"

	"usdt_banc/internal/api"        // API handlers
	"usdt_banc/internal/auth"       // Credential hashing and session tokens
	"usdt_banc/internal/cache"      // Redis read-cache
	"usdt_banc/internal/config"     // Configuration
	"usdt_banc/internal/ledger"     // Ledger engine
	"usdt_banc/internal/market"     // Market data client
	"usdt_banc/internal/metrics"    // Prometheus collector
	"usdt_banc/internal/middleware" // JWT middleware
	"usdt_banc/internal/repository/gormstore"
	"usdt_banc/internal/service" // Use-case orchestration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server. All shared state (DB handle,
// signing secret, Redis client) is constructed here once and injected; there
// are no ambient globals.
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError turns driver duplicate-key
	// errors into gorm.ErrDuplicatedKey, which the account store relies on.
	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the components
	accounts := gormstore.NewAccountStore(gdb)
	ledgerEngine := ledger.NewEngine(gormstore.NewLedgerStore(gdb))
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	svc := service.NewAccountService(accounts, ledgerEngine, tokens, service.LogMailer{})
	marketClient := market.NewClient(cfg.MarketBaseURL)
	cc := cache.New(redisClient)
	collector := metrics.NewCollector()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "USDT BANC API is running"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	apiGroup := r.Group("/api")

	// Auth routes
	apiGroup.POST("/auth/signup", api.SignupHandler(svc, collector))
	apiGroup.POST("/auth/login", api.LoginHandler(svc, collector))
	apiGroup.POST("/auth/forgot-password", api.ForgotPasswordHandler(svc))

	// Market data is public
	apiGroup.GET("/crypto/top10", api.TopCryptoHandler(marketClient, cc, collector))

	// Routes requiring a session token
	protected := apiGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	protected.GET("/wallet", api.GetWalletHandler(svc, cc))
	protected.POST("/wallet/withdraw", api.WithdrawHandler(svc, cc, collector))
	protected.GET("/wallet/transactions", api.TransactionHistoryHandler(svc, cc))
	protected.POST("/crypto/buy", api.BuyHandler(svc, cc, collector))
	protected.GET("/user/profile", api.ProfileHandler(svc, cc))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
