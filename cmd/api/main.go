package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/config"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/handlers"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/metrics"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/middleware"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	store, err := services.NewStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)
	bus := services.NewUpdateBus()

	ledger := services.NewLedger(store, bus, cfg)
	deposits := services.NewDeposits(store, bus)
	orders := services.NewOrders(store, bus)
	settings := services.NewSettings(store)

	wsHandler := handlers.NewWebSocketHandler(ledger, bus)

	// The public live feed is poll-driven; connected clients additionally get
	// it pushed on a fixed interval.
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			wsHandler.BroadcastOrdersFeed(orders.Recent(20))
		}
	}()

	authHandler := handlers.NewAuthHandler(ledger, jwtService)
	userHandler := handlers.NewUserHandler(ledger)
	walletHandler := handlers.NewWalletHandler(deposits)
	orderHandler := handlers.NewOrderHandler(orders)
	catalogHandler := handlers.NewCatalogHandler(settings)
	adminHandler := handlers.NewAdminHandler(store, deposits, orders, settings)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.POST("/auth/login", middleware.RateLimitMiddleware(store), authHandler.Login)

	router.GET("/catalog/categories", catalogHandler.Categories)
	router.GET("/catalog/packages", catalogHandler.Packages)
	router.GET("/settings", catalogHandler.Settings)
	router.GET("/orders/live", orderHandler.LiveOrders)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(store))
	{
		protected.GET("/me", userHandler.GetCurrentUser)
		protected.POST("/logout", userHandler.Logout)
		protected.POST("/rewards/claim", userHandler.ClaimDaily)

		protected.GET("/ws", wsHandler.HandleWebSocket)

		protected.POST("/wallet/deposits", walletHandler.CreateDeposit)
		protected.GET("/wallet/deposits", walletHandler.MyDeposits)

		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders", orderHandler.MyOrders)

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware(ledger))
		{
			admin.GET("/deposits", adminHandler.ListDeposits)
			admin.PUT("/deposits/:id/status", adminHandler.UpdateDepositStatus)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.UpdateSettings)

			admin.GET("/export", adminHandler.Export)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
