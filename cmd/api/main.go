package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/solver/internal/config"
	"github.com/iamasit07/4-in-a-row/solver/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/solver/internal/service/solver"
	transportHttp "github.com/iamasit07/4-in-a-row/solver/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/solver/internal/transport/websocket"
	"github.com/iamasit07/4-in-a-row/solver/pkg/logger"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info().Msg("No .env file found")
	}

	// 1. Initialize Redis (optional result cache)
	var cache solver.CacheRepository
	if cfg.RedisEnabled {
		client, err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without cache")
		} else {
			redisCache := redis.NewRedisCache(client)
			defer redisCache.Close()
			cache = redisCache
		}
	}

	// 2. Initialize Services
	solverService := solver.NewService(solver.Settings{
		Depth:        cfg.SearchDepth,
		ParallelRoot: cfg.SearchParallelRoot,
		CacheTTL:     cfg.CacheTTL,
	}, cache)
	connManager := websocket.NewConnectionManager()

	// 3. Initialize Handlers
	moveHandler := transportHttp.NewMoveHandler(solverService)
	wsHandler := websocket.NewHandler(connManager, solverService, cfg.APIJWTSecret)

	// 4. Setup Gin Router
	gin.SetMode(gin.ReleaseMode)
	router := transportHttp.NewRouter(moveHandler, transportHttp.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		APIJWTSecret:   cfg.APIJWTSecret,
		WebSocket:      wsHandler.Handle,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("depth", cfg.SearchDepth).Bool("cache", cache != nil).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Hijacked WebSocket connections are not tracked by Shutdown
	connManager.CloseAll("server shutting down")

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server exited gracefully")
}
