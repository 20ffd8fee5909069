package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/MdialloC19/backend-IPDL/cmd/api/router/v1"
	cacheadapter "github.com/MdialloC19/backend-IPDL/internal/infrastructure/cache/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/config"
	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/database"
	queueadapter "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/infrastructure/realtime"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache, err := cacheadapter.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer cache.Close()

	queue, err := queueadapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to create queue client: %v", err)
	}
	defer queue.Close()

	hub := realtime.NewHub(logger)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, v1.Deps{
		Pool:   pool,
		Cache:  cache,
		Queue:  queue,
		Hub:    hub,
		Issuer: issuer,
		Log:    logger,
	})

	// Start HTTP server (blocks until shutdown)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
