package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/solver/internal/service/solver"
	"github.com/iamasit07/4-in-a-row/solver/internal/transport/http/middleware"
)

const (
	BoardQueryParam      = "b"
	DifficultyQueryParam = "difficulty"
)

type MoveFinder interface {
	BestMove(ctx context.Context, encoded, difficulty string) (solver.Move, error)
}

type MoveHandler struct {
	Solver MoveFinder
}

func NewMoveHandler(s MoveFinder) *MoveHandler {
	return &MoveHandler{Solver: s}
}

type moveResponse struct {
	solver.Move
	RequestID string `json:"requestId,omitempty"`
}

// GetMove answers with the 1-based column as a bare JSON number.
func (h *MoveHandler) GetMove(c *gin.Context) {
	move, ok := h.solve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, move.Column)
}

// GetMoveDetails answers with the column and the search statistics.
func (h *MoveHandler) GetMoveDetails(c *gin.Context) {
	move, ok := h.solve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, moveResponse{Move: move, RequestID: middleware.RequestID(c)})
}

func (h *MoveHandler) solve(c *gin.Context) (solver.Move, bool) {
	board := c.Query(BoardQueryParam)
	difficulty := c.Query(DifficultyQueryParam)

	move, err := h.Solver.BestMove(c.Request.Context(), board, difficulty)
	if err != nil {
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).
				Str("component", "server").
				Str("request_id", middleware.RequestID(c)).
				Str("board", board).
				Msg("[MOVE] Search failed")
		}
		c.JSON(status, gin.H{"error": PublicMessage(err)})
		return solver.Move{}, false
	}
	return move, true
}
