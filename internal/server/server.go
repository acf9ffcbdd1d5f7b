package server

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lacrypta/satsback-api/internal/client/lawallet"
	"github.com/lacrypta/satsback-api/internal/config"
	"github.com/lacrypta/satsback-api/internal/db"
	"github.com/lacrypta/satsback-api/internal/events"
	"github.com/lacrypta/satsback-api/internal/handlers"
	"github.com/lacrypta/satsback-api/internal/logger"
	"github.com/lacrypta/satsback-api/internal/services"
)

// Handler Definitions
var (
	satsbackHandler *handlers.SatsbackHandler
	store           *db.Store
)

// InitializeHandlers loads configuration, connects to the database and wires
// the satsback pipeline. Any missing configuration is fatal.
func InitializeHandlers() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	store = db.NewStore(pool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("Unable to ensure database schema", zap.Error(err))
	}

	resolver := lawallet.NewClient(lawallet.WithBaseURL(cfg.LaWalletAPIURL))
	whitelist := services.NewWhitelist(cfg.Whitelist, cfg.VolunteerWhitelist)

	satsbackService := services.NewSatsbackService(
		whitelist,
		store,
		resolver,
		events.NIP04Encryptor{},
		events.SchnorrSigner{},
		cfg.DefaultRate,
		cfg.VolunteerRate,
	)

	satsbackHandler = handlers.NewSatsbackHandler(
		satsbackService,
		store,
		cfg.LedgerPublicKey,
		cfg.NostrPrivateKey,
	)
}

// InitializeRoutes registers the middleware stack and the API routes.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(handlers.RequestLogger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/satsback", satsbackHandler.CreateSatsback)
		v1.GET("/volunteers/:pubkey/voucher", satsbackHandler.GetVoucherBalance)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.RequestIDHeader}

	return cors.New(corsConfig)
}
