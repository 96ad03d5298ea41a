package handler

import (
	"errors"
	"net/http"
	"time"

	"deviantdare/backend/internal/config"
	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/game"
	"deviantdare/backend/internal/guard"
	"deviantdare/backend/internal/logger"
	"deviantdare/backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Engine is the shared state machine instance. InitEngine must run after
// the database connection is established.
var Engine *game.Machine

func InitEngine() {
	ttl := time.Duration(config.AppConfig.ClaimTTLHours) * time.Hour
	Engine = game.NewMachine(database.DB, guard.NewDBChecker(database.DB), game.NewRand(), ttl)
}

// respondGameError translates the machine's typed rejections into HTTP
// responses. The mapping is 1:1; anything unrecognized is a 500.
func respondGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidGesture):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrBlockedPair):
		metrics.M.BlockedDenials.Inc()
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrNotYourTurn):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrAlreadyClaimed):
		metrics.M.ClaimConflicts.Inc()
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrAlreadyResolved), errors.Is(err, game.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		logger.Log.Errorf("unexpected game error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
