package v1

import (
	"github.com/capstone-portal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Public catalog and profile endpoints
	router.GET("/projects", ListCatalog)
	router.GET("/projects/:id", GetProject)
	router.GET("/projects/:id/comments", ListComments)
	router.GET("/profiles/:id", GetProfile)

	// Everything below requires an authenticated group account
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	// Project endpoints (owner side)
	projectGroup := authRouter.Group("/projects")
	{
		projectGroup.POST("", CreateProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.POST("/:id/comments", CreateComment)
	}
	authRouter.GET("/my-projects", ListMyProjects)

	// Continuation request lifecycle endpoints
	requestController := NewRequestController()
	requestController.RegisterRoutes(authRouter)

	// Group profile endpoints
	profileGroup := authRouter.Group("/profiles")
	{
		profileGroup.PUT("", UpdateProfile)
		profileGroup.POST("/members", AddMember)
		profileGroup.PUT("/members/:id", UpdateMember)
		profileGroup.DELETE("/members/:id", DeleteMember)
	}

	// Admin endpoints
	statsGroup := router.Group("/admin")
	statsGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		statsGroup.GET("/stats", GetPortalStats)
	}
}
