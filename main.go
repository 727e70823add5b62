package main

import (
	"log"

	v1 "github.com/capstone-portal/api/v1"
	"github.com/capstone-portal/config"
	"github.com/capstone-portal/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Connect to database and run migrations
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 Capstone portal API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
