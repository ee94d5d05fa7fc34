// cmd/worker/startup.go
package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/container"
)

type dependencyCheck struct {
	name string
	fn   func(ctx context.Context) error
}

func dependencyChecks(c *container.Container) []dependencyCheck {
	var checks []dependencyCheck
	if c.DB != nil {
		checks = append(checks, dependencyCheck{"database", c.DB.Ping})
	}
	if c.Queue != nil {
		checks = append(checks, dependencyCheck{"queue", func(context.Context) error { return c.Queue.Ping() }})
	}
	if c.Storage != nil {
		checks = append(checks, dependencyCheck{"storage", c.Storage.Ping})
	}
	return checks
}

func healthRouter(checks []dependencyCheck) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{"status": "UP", "service": "library-worker"})
	})

	// GET /ready (Kubernetes readiness probe)
	router.GET("/ready", func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := gin.H{}
		ready := true
		for _, check := range checks {
			if err := check.fn(reqCtx); err != nil {
				status[check.name] = "down"
				ready = false
				continue
			}
			status[check.name] = "up"
		}

		if !ready {
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable, "NOT_READY", "A dependency is unreachable", status)
			return
		}
		response.Success(ctx, http.StatusOK, status)
	})
	return router
}

func startHealthServer(cfg *config.Config, c *container.Container) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Snapshot.HealthPort,
		Handler:           healthRouter(dependencyChecks(c)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("[Health] starting health check server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("[Health] server failed")
		}
	}()
	return srv
}

func shutdownHealthServer(cfg *config.Config, srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("[Health] shutdown failed")
	}
}
