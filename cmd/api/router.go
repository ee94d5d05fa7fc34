package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)
	if c.Config.RateLimit.RPS > 0 {
		router.Use(middleware.NewRateLimiter(c.Config.RateLimit.RPS, c.Config.RateLimit.Burst).Middleware())
	}

	router.GET("/health", healthCheckHandler(c))

	v1 := router.Group("/api/v1")
	{
		writeGuard := c.WriteGuard()

		// Login chỉ có ý nghĩa khi write routes được bảo vệ
		if c.Config.Auth.Enabled {
			c.AuthHandler.RegisterRoutes(v1)
		}

		c.BookHandler.RegisterRoutes(v1, writeGuard)
		c.AuthorHandler.RegisterRoutes(v1, writeGuard)
		c.GenreHandler.RegisterRoutes(v1, writeGuard)
		c.PublisherHandler.RegisterRoutes(v1, writeGuard)
		c.ReportHandler.RegisterRoutes(v1, writeGuard)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.ErrorResponse(ctx, http.StatusNotFound, "ROUTE_NOT_FOUND", "Route not found")
	})

	return router
}

// ========================================
// HEALTH CHECK
// ========================================

type healthStatus struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Cache    string      `json:"cache"`
	Storage  string      `json:"storage"`
	Pool     interface{} `json:"pool,omitempty"`
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := healthStatus{Status: "ok", Database: "up", Cache: "up", Storage: "up"}
		code := http.StatusOK

		switch {
		case c.DB == nil:
			status.Database = "unmanaged"
		case c.DB.Ping(reqCtx) != nil:
			status.Status, status.Database = "degraded", "down"
			code = http.StatusServiceUnavailable
		default:
			if stats, err := c.DB.Stats(); err == nil {
				status.Pool = stats
			}
		}

		// Cache/storage down chỉ ảnh hưởng reports, không ảnh hưởng availability
		if c.Redis == nil {
			status.Cache = "disabled"
		} else if err := c.Cache.Ping(reqCtx); err != nil {
			status.Cache = "down"
		}
		if c.Storage == nil {
			status.Storage = "disabled"
		} else if err := c.Storage.Ping(reqCtx); err != nil {
			status.Storage = "down"
		}

		if code == http.StatusOK {
			response.Success(ctx, code, status)
			return
		}
		response.ErrorWithDetails(ctx, code, "SERVICE_UNAVAILABLE", "Database is unreachable", status)
	}
}
