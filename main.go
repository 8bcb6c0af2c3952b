package main

import (
	"log"
	"net/http"
	"time"

	"github.com/grich88/civic/config"
	"github.com/grich88/civic/handlers"
	"github.com/grich88/civic/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Session storage for the auth service
	sessionStore, err := services.NewSessionStore(config.AppConfig.SessionDir)
	if err != nil {
		log.Fatal("Failed to initialize session store:", err)
	}

	// Wire the service layer. The plugin registry is built once here
	// and handed by reference to everything that needs it.
	vendorTimeout := time.Duration(config.AppConfig.VendorTimeoutSeconds) * time.Second

	registry := services.NewDefaultPluginRegistry()
	rewardEngine := services.NewRewardEngine(registry)
	aggregator := services.NewDefaultEventAggregator(registry, vendorTimeout)
	loyaltyLedger := services.NewLoyaltyLedger()
	ticketService := services.NewTicketService(registry, aggregator, loyaltyLedger, vendorTimeout)

	authService := services.NewAuthService(sessionStore)
	authService.RestoreSession()

	handlers.InitializeHandlers(authService, registry, rewardEngine, aggregator, ticketService, loyaltyLedger)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Civic Impact Tickets server is running",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/validate", handlers.ValidateToken)
			auth.POST("/verify-identity", handlers.AuthMiddleware(), handlers.VerifyIdentity)
		}

		// Event routes
		events := api.Group("/events")
		{
			events.GET("/", handlers.GetEvents)
			events.GET("/:id", handlers.GetEvent)
		}

		// Vendor plugin routes
		plugins := api.Group("/plugins")
		{
			plugins.GET("/", handlers.GetPlugins)
			plugins.GET("/:id", handlers.GetPlugin)
			plugins.PUT("/:id/status", handlers.SetPluginStatus)
			plugins.PUT("/:id/configuration", handlers.ConfigurePlugin)
			plugins.GET("/:id/impact", handlers.GetPluginImpactMetrics)
		}

		// Reward routes
		rewards := api.Group("/rewards")
		{
			rewards.GET("/", handlers.GetAllRewards)
			rewards.GET("/catalog/:vendorId", handlers.GetRewardCatalog)
			rewards.POST("/redeem", handlers.AuthMiddleware(), handlers.RedeemReward)
		}

		// Loyalty routes (protected)
		loyalty := api.Group("/loyalty")
		loyalty.Use(handlers.AuthMiddleware())
		{
			loyalty.GET("/profile", handlers.GetLoyaltyProfile)
			loyalty.GET("/points", handlers.GetLoyaltyPoints)
			loyalty.GET("/redemptions", handlers.GetRedemptionHistory)
		}

		// Ticket routes (protected)
		tickets := api.Group("/tickets")
		tickets.Use(handlers.AuthMiddleware())
		{
			tickets.POST("/purchase", handlers.PurchaseTicket)
			tickets.GET("/", handlers.GetUserTickets)
		}

		// Wallet route (protected)
		api.GET("/wallet", handlers.AuthMiddleware(), handlers.GetWallet)

		// Cross-vendor social impact summary
		api.GET("/impact/summary", handlers.GetAggregatedImpact)
	}

	// Start server
	log.Printf("Starting Civic Impact Tickets server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}
