package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/controllers"
	"github.com/ai-slice/ai-slice-api/middleware"
	"github.com/ai-slice/ai-slice-api/models"
)

func main() {
	// Basic logging
	log.Println("Starting AI Slice API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database (in-memory SQLite unless DATABASE_URL is set)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.Bid{},
		&models.ReputationEntry{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Recreate the demo accounts and demo order on a fresh database
	if err := models.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize Gin router
	router := setupRouter()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the router with CORS and all API routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/", home)

	api := router.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", healthCheck)

		// Authentication
		api.POST("/auth/signup", controllers.Signup)
		api.POST("/auth/signin", controllers.Signin)

		// Menu catalog
		api.GET("/menu", controllers.GetMenu)
		api.POST("/menu", controllers.AddDish)
		api.PUT("/menu/:id", controllers.UpdateDish)

		// Orders
		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders/user/:id", controllers.GetUserOrders)

		// Delivery bidding
		api.POST("/bids", controllers.PlaceBid)
		api.GET("/bids/order/:id", controllers.GetOrderBids)
		api.POST("/bids/assign", controllers.AssignDelivery)

		// Wallet
		api.POST("/wallet/deposit", controllers.DepositMoney)

		// Reputation
		api.GET("/reputation/user/:id", controllers.GetUserReputation)
		api.POST("/reputation/rating", controllers.SubmitRating)

		// Manager approvals
		api.GET("/manager/registrations", controllers.GetPendingRegistrations)
		api.POST("/manager/approve", controllers.ApproveRegistration)

		// AI chat assistant
		api.POST("/ai/chat", controllers.Chat)
		api.POST("/ai/rate", controllers.RateAnswer)
	}

	return router
}

// home handles the root endpoint
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Slice API is running",
	})
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "AI Slice API is running",
	})
}
