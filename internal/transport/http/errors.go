package http

import (
	"errors"
	"net/http"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
	"github.com/iamasit07/4-in-a-row/solver/internal/service/bot"
)

// StatusFor maps a solver error to the status code returned to clients.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidBoard), errors.Is(err, bot.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGameOver):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the error text that is safe to show to a client.
func PublicMessage(err error) string {
	if StatusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
