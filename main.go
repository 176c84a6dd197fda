package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nanalmoa/nanalmoa/controllers"
	"github.com/nanalmoa/nanalmoa/database"
	"github.com/nanalmoa/nanalmoa/docs"
	"github.com/nanalmoa/nanalmoa/middleware"
	"github.com/nanalmoa/nanalmoa/websocket"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Nanalmoa API
// @version         1.0
// @description     API Server for the Nanalmoa scheduling application
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Wire controllers to the database and the websocket notifier
	controllers.Setup(database.DB, websocket.NewNotifier())

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Nanalmoa API"
	docs.SwaggerInfo.Description = "API Server for the Nanalmoa scheduling application"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// Invitation routes
		api.POST("/invitations", controllers.CreateInvitation)
		api.GET("/invitations/user", controllers.GetUserInvitations)
		api.GET("/invitations/:id", controllers.GetInvitation)
		api.PATCH("/invitations/:id/accept", controllers.AcceptInvitation)
		api.PATCH("/invitations/:id/reject", controllers.RejectInvitation)
		api.PATCH("/invitations/:id/cancel", controllers.CancelInvitation)

		// Group routes
		api.GET("/groups", controllers.GetGroups)
		api.POST("/groups", controllers.CreateGroup)
		api.GET("/groups/:id", controllers.GetGroup)
		api.DELETE("/groups/:id", controllers.DeleteGroup)
		api.DELETE("/groups/:id/members/:userUuid", controllers.RemoveGroupMember)

		// Manager routes
		api.GET("/managers", controllers.GetManagers)
		api.GET("/managers/subordinates", controllers.GetSubordinates)
		api.DELETE("/managers/:managerUuid/subordinates/:subordinateUuid", controllers.RemoveManagerEdge)

		// User routes
		api.GET("/users/me", controllers.GetMe)
		api.GET("/users/search", controllers.SearchUsers)
	}

	// WebSocket route
	router.GET("/ws", websocket.HandleConnection)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
