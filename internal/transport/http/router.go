package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/4-in-a-row/solver/internal/transport/http/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	APIJWTSecret   string
	// WebSocket is mounted on /ws when set
	WebSocket gin.HandlerFunc
}

// NewRouter wires the move endpoints and middlewares on a fresh gin engine.
func NewRouter(moves *MoveHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	protected := router.Group("/")
	protected.Use(middleware.APITokenMiddleware(cfg.APIJWTSecret))
	{
		protected.GET("/move", moves.GetMove)
		protected.GET("/api/v1/move", moves.GetMoveDetails)
	}

	// WebSocket Route (auth handled inside the WS handler itself)
	if cfg.WebSocket != nil {
		router.GET("/ws", cfg.WebSocket)
	}

	return router
}
