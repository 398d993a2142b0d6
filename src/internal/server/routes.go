package server

import (
	"time"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/dependency"
	"ips-data-svc/src/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func SetupRoutes(deps *dependency.Manager) {
	router := deps.Router
	router.Use(enableCORS)
	router.Use(middleware.DecompressRequest())

	setupHealthEndpoint(deps)
	setupPublicRoutes(router, deps)
	setupDataRoutes(router, deps)
}

func setupHealthEndpoint(deps *dependency.Manager) {
	router := deps.Router
	mongodb := deps.Mongodb
	redisClient := deps.Redis
	cfg := deps.Config

	router.GET("/health", func(c *gin.Context) {
		log.Info("Health check endpoint requested")

		mongoStatus := "ok"
		if err := mongodb.Client.Ping(c.Request.Context(), nil); err != nil {
			mongoStatus = "error: " + err.Error()
		}

		redisStatus := "ok"
		if err := redisClient.Client.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "error: " + err.Error()
		}

		c.JSON(200, gin.H{
			"status":    "ok",
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mongodb":   mongoStatus,
			"redis":     redisStatus,
			"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	})

	router.GET("/health/detailed", func(c *gin.Context) {
		log.Info("Detailed health check endpoint requested")

		queueStatus := "disabled"
		if deps.RabbitMQ != nil {
			queueStatus = "configured"
		}

		c.JSON(200, gin.H{
			"status":  "operational",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"components": gin.H{
				"database": gin.H{
					"mongodb": getStatus(isMongoConnected(mongodb, c)),
					"redis":   getStatus(isRedisConnected(redisClient.Client, c)),
				},
				"queue": queueStatus,
				"services": gin.H{
					"sessions":  "operational",
					"ingestion": "operational",
					"users":     "operational",
				},
			},
		})
	})
}

func setupPublicRoutes(router *gin.Engine, deps *dependency.Manager) {
	router.GET("/api/v1/status", func(c *gin.Context) {
		log.Info("API status requested")
		c.JSON(200, gin.H{
			"api_version": "v1",
			"status":      "operational",
			"service":     deps.Config.App.Name,
		})
	})

	userHandler := deps.UserHandler
	users := router.Group("/api/v1/user")
	{
		users.POST("/signup", setRouteName("signup"), userHandler.Signup)
		users.POST("/login", setRouteName("login"), userHandler.Login)
		users.POST("/refresh-token", setRouteName("refreshToken"), userHandler.RefreshToken)
		users.POST("/ChangeVerificationStatus", setRouteName("changeVerificationStatus"), userHandler.ChangeVerificationStatus)
	}

	router.POST("/api/v1/app/checkAppVersion",
		setRouteName("checkAppVersion"),
		deps.AppVersionHandler.CheckAppVersion)
}

func setupDataRoutes(router *gin.Engine, deps *dependency.Manager) {
	authMiddleware := middleware.NewAuthMiddleware(deps.Config.Security.JwtKey)

	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		sessions := deps.SessionHandler
		api.POST("/sessions/create", setRouteName("createSession"), sessions.CreateSession)
		api.POST("/sessions/close", setRouteName("closeSession"), sessions.CloseSession)
		api.POST("/sessions/cancel", setRouteName("cancelSession"), sessions.CancelSession)
		api.GET("/sessions", setRouteName("getSessions"), sessions.GetSessions)

		api.POST("/imu-data", setRouteName("uploadIMUData"), deps.IMUHandler.UploadIMUData)
		api.POST("/button-presses", setRouteName("submitButtonPress"), deps.ButtonHandler.SubmitButtonPress)

		api.GET("/bonuses", setRouteName("getBonuses"), deps.BonusHandler.GetBonuses)
	}
}

func setRouteName(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("route_name", name)
		c.Next()
	}
}

func isMongoConnected(mongodb *clients.MongoDB, c *gin.Context) bool {
	if err := mongodb.Client.Ping(c.Request.Context(), nil); err != nil {
		return false
	}
	return true
}

func isRedisConnected(redisClient *redis.Client, c *gin.Context) bool {
	if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
		return false
	}
	return true
}

func enableCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Encoding")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}

	c.Next()
}

func getStatus(b bool) string {
	if b {
		return "connected"
	}
	return "disconnected"
}
