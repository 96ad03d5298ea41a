package handler

import (
	"errors"
	"net/http"
	"strconv"

	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BlockUser godoc
// @Summary      Block a user
// @Description  Blocks another user. The pair is blocked symmetrically: neither side can interact with the other in any game or dare.
// @Tags         blocks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      201  {object}  map[string]string "{"message": "User blocked"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Already blocked"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/block [post]
func BlockUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	if viewerID.(uint) == uint(targetUserID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot block yourself"})
		return
	}

	var targetUser models.User
	if err := database.DB.First(&targetUser, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var existing models.UserBlock
	err = database.DB.Where("blocker_id = ? AND blocked_id = ?", viewerID, targetUserID).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already blocked"})
		return
	}

	block := models.UserBlock{
		BlockerID: viewerID.(uint),
		BlockedID: uint(targetUserID),
	}
	if err := database.DB.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User blocked"})
}

// UnblockUser godoc
// @Summary      Unblock a user
// @Description  Removes the caller's block on another user. A block held by the other side keeps the pair blocked.
// @Tags         blocks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "User unblocked"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Block not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/unblock [post]
func UnblockUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	result := database.DB.Where("blocker_id = ? AND blocked_id = ?", viewerID, targetUserID).Delete(&models.UserBlock{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unblock user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User unblocked"})
}

// GetMyBlocks godoc
// @Summary      List blocked users
// @Description  Lists the users the caller has blocked. Blocks held against the caller are never exposed.
// @Tags         blocks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/blocks [get]
func GetMyBlocks(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var blocks []models.UserBlock
	if err := database.DB.Preload("Blocked").Where("blocker_id = ?", viewerID).Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blocks"})
		return
	}

	var userResponses []PublicUserResponse
	for _, b := range blocks {
		if b.Blocked.ID == 0 {
			continue
		}
		userResponses = append(userResponses, buildPublicUserResponse(b.Blocked))
	}

	c.JSON(http.StatusOK, userResponses)
}
