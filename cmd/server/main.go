package main

import (
	"context"
	"net/http"

	"deviantdare/backend/internal/auth"
	"deviantdare/backend/internal/config"
	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/handler"
	"deviantdare/backend/internal/hub"
	"deviantdare/backend/internal/logger"
	"deviantdare/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	// Swagger imports
	_ "deviantdare/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
	logger.Init()
}

// @title           Deviant Dare API
// @version         1.0
// @description     This is the API for the Deviant Dare service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	metrics.Init("deviantdare")
	handler.InitEngine()

	// With Redis configured, game events fan out across server processes.
	if config.AppConfig.RedisURL != "" {
		opts, err := redis.ParseURL(config.AppConfig.RedisURL)
		if err != nil {
			logger.Log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		hub.UseRedis(context.Background(), redis.NewClient(opts))
		logger.Log.Info("Redis event bridge enabled")
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.GET("/me/blocks", handler.GetMyBlocks)
			userRoutes.GET("/:id", handler.GetUserByID)

			// Block registry
			userRoutes.POST("/:id/block", handler.BlockUser)
			userRoutes.POST("/:id/unblock", handler.UnblockUser)
		}

		// Switch game routes (protected)
		switchRoutes := apiV1.Group("/switches")
		switchRoutes.Use(auth.AuthMiddleware())
		{
			switchRoutes.POST("", handler.CreateSwitchGame)
			switchRoutes.GET("", handler.SearchSwitchGames)
			switchRoutes.GET("/:id", handler.GetSwitchGameByID)
			switchRoutes.GET("/:id/events", handler.StreamGameEvents)
			switchRoutes.POST("/:id/join", handler.JoinSwitchGame)
			switchRoutes.POST("/:id/gesture", handler.SubmitSwitchGesture)
			switchRoutes.POST("/:id/proof", handler.SubmitSwitchProof)
			switchRoutes.POST("/:id/review", handler.ReviewSwitchProof)
			switchRoutes.POST("/:id/chicken-out", handler.ChickenOutSwitchGame)
			switchRoutes.POST("/:id/cancel", handler.CancelSwitchGame)
		}

		// Dare routes (protected)
		dareRoutes := apiV1.Group("/dares")
		dareRoutes.Use(auth.AuthMiddleware())
		{
			dareRoutes.POST("", handler.CreateDare)
			dareRoutes.GET("", handler.SearchDares)
			dareRoutes.GET("/:id", handler.GetDareByID)
			dareRoutes.POST("/:id/proof", handler.SubmitDareProof)
			dareRoutes.POST("/:id/grade", handler.GradeDare)
			dareRoutes.POST("/:id/chicken-out", handler.ChickenOutDare)
			dareRoutes.POST("/:id/cancel", handler.CancelDare)
		}

		// Claim routes: preview renders without auth, execution requires it
		claimRoutes := apiV1.Group("/claim")
		{
			claimRoutes.GET("/:token", auth.OptionalAuthMiddleware(), handler.PreviewClaim)
			claimRoutes.POST("/:token", auth.AuthMiddleware(), handler.ExecuteClaim)
		}

		// Tag listing (protected)
		tagRoutes := apiV1.Group("/tags")
		tagRoutes.Use(auth.AuthMiddleware())
		{
			tagRoutes.GET("", handler.GetTags)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Tags CRUD
			tags := adminRoutes.Group("/tags")
			{
				tags.POST("", handler.CreateTag)
				tags.PUT("/:id", handler.UpdateTag)
				tags.DELETE("/:id", handler.DeleteTag)
			}
		}
	}

	logger.Log.Infof("Server is running on %s", config.AppConfig.ListenAddress)
	logger.Log.Infof("Swagger UI is available at http://localhost:8080/swagger/index.html")
	logger.Log.Fatal(router.Run(config.AppConfig.ListenAddress))
}
