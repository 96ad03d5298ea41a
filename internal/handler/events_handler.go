package handler

import (
	"io"
	"net/http"
	"strconv"

	"deviantdare/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// StreamGameEvents godoc
// @Summary      Stream game events
// @Description  Server-sent event stream of a game's lifecycle events (joins, gestures, resolution, proofs, terminal transitions). Parties only.
// @Tags         switches
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {string} string "event stream"
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /switches/{id}/events [get]
func StreamGameEvents(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	g, err := Engine.LoadGame(uint(gameID))
	if err != nil {
		respondGameError(c, err)
		return
	}
	if !g.PartyOf(userID.(uint)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only game parties can stream events"})
		return
	}

	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(g.ID, client)
	defer hub.GlobalHub.Unsubscribe(g.ID, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
