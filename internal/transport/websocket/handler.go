package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	transportHttp "github.com/iamasit07/4-in-a-row/solver/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/solver/pkg/auth"
	"github.com/iamasit07/4-in-a-row/solver/pkg/httputil"
	"github.com/iamasit07/4-in-a-row/solver/pkg/logger"
	"github.com/iamasit07/4-in-a-row/solver/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager  *ConnectionManager
	Solver       transportHttp.MoveFinder
	APIJWTSecret string
	Upgrader     websocket.Upgrader
	logger       zerolog.Logger
}

// NewHandler creates a WebSocket handler. An empty secret disables the
// token check.
func NewHandler(cm *ConnectionManager, s transportHttp.MoveFinder, secret string) *Handler {
	return &Handler{
		ConnManager:  cm,
		Solver:       s,
		APIJWTSecret: secret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.Component("ws"),
	}
}

// Handle adapts HandleWebSocket to gin.
func (h *Handler) Handle(c *gin.Context) {
	h.HandleWebSocket(c.Writer, c.Request)
}

// HandleWebSocket checks the API token and upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.APIJWTSecret != "" {
		token, err := httputil.GetTokenFromRequest(r)
		if err == nil {
			_, err = auth.ValidateAPIToken(h.APIJWTSecret, token)
		}
		if err != nil {
			h.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("[WS] Rejected connection")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("[WS] Upgrade error")
		return
	}

	h.handleConnection(r.Context(), conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	id := uid.NewRequestID()
	h.ConnManager.AddConnection(id, conn)
	h.logger.Info().Str("conn_id", id).Msg("[WS] Connection opened")

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		h.ConnManager.RemoveConnection(id)
		h.logger.Info().Str("conn_id", id).Msg("[WS] Connection closed")
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(id); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Str("conn_id", id).Msg("[WS] Client disconnected unexpectedly")
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.send(id, ServerMessage{Type: TypeError, Code: http.StatusBadRequest, Message: "Invalid message format"})
			continue
		}

		h.send(id, h.processMessage(ctx, msg))
	}
}

// processMessage routes one client message to its reply
func (h *Handler) processMessage(ctx context.Context, msg ClientMessage) ServerMessage {
	switch msg.Type {
	case TypeSolve:
		move, err := h.Solver.BestMove(ctx, msg.Board, msg.Difficulty)
		if err != nil {
			status := transportHttp.StatusFor(err)
			if status == http.StatusInternalServerError {
				h.logger.Error().Err(err).Str("board", msg.Board).Msg("[WS] Search failed")
			}
			return ServerMessage{Type: TypeError, ID: msg.ID, Code: status, Message: transportHttp.PublicMessage(err)}
		}
		return ServerMessage{
			Type:   TypeMove,
			ID:     msg.ID,
			Column: move.Column,
			Score:  move.Score,
			Depth:  move.Depth,
			Cached: move.Cached,
		}

	case TypePing:
		return ServerMessage{Type: TypePong, ID: msg.ID}

	default:
		return ServerMessage{Type: TypeError, ID: msg.ID, Code: http.StatusBadRequest, Message: "Unknown message type"}
	}
}

func (h *Handler) send(id string, msg ServerMessage) {
	if err := h.ConnManager.SendMessage(id, msg); err != nil {
		h.logger.Warn().Err(err).Str("conn_id", id).Msg("[WS] Write failed")
	}
}
