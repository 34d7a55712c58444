package server

import (
	"errors"
	"log"
	"net/http"

	"codeword/internal/game"
	"codeword/internal/session"

	"github.com/gin-gonic/gin"
)

// respondError maps the service's failure taxonomy to HTTP statuses.
// Sentinel messages double as the user-facing text, so every failure
// stays specific rather than a catch-all.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, session.ErrGameNotFound),
		errors.Is(err, session.ErrMembershipNotFound),
		errors.Is(err, session.ErrAssignmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrDuplicateMembership),
		errors.Is(err, session.ErrInvalidTransition),
		errors.Is(err, session.ErrAlreadyResolved),
		errors.Is(err, session.ErrGameAlreadyStarted),
		errors.Is(err, session.ErrGameNotStarted),
		errors.Is(err, session.ErrGameEnded):
		status = http.StatusConflict
	case errors.Is(err, session.ErrAssignmentMismatch),
		errors.Is(err, game.ErrInsufficientPlayers):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrNotHost),
		errors.Is(err, session.ErrHostCannotLeave):
		status = http.StatusForbidden
	case errors.Is(err, session.ErrCodeSpaceExhausted):
		status = http.StatusServiceUnavailable
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
