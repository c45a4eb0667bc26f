package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler     *AuthHandler
	ProgressHandler *ProgressHandler
	ScheduleHandler *ScheduleHandler
	GoalHandler     *GoalHandler
	FocusHandler    *FocusHandler
	NoteHandler     *NoteHandler
	SettingsHandler *SettingsHandler
	ArticleHandler  *ArticleHandler
	TokenService    *services.TokenService
	Store           domain.Store
	Redis           *redis.Client
	RateLimit       int
	RateWindow      time.Duration
	StartTime       time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		if p, ok := deps.Store.(domain.Pinger); ok && p.Ping(c.Request.Context()) != nil {
			storeStatus = "unreachable"
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := 200
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  storeStatus,
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")
	if deps.Redis != nil && deps.RateLimit > 0 {
		window := deps.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		apiV1.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, window))
	}

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.ProgressHandler.RegisterRoutes(protected)
		deps.ScheduleHandler.RegisterRoutes(protected)
		deps.GoalHandler.RegisterRoutes(protected)
		deps.FocusHandler.RegisterRoutes(protected)
		deps.NoteHandler.RegisterRoutes(protected)
		deps.SettingsHandler.RegisterRoutes(protected)
		deps.ArticleHandler.RegisterRoutes(protected)
	}

	return router
}
