package handler

import (
	"net/http"
	"strconv"

	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/models"
	"deviantdare/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Nickname string `json:"nickname" binding:"required" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// PublicUserResponse defines the structure for a user's public profile.
// Block relationships are deliberately absent: the registry must never leak.
type PublicUserResponse struct {
	ID             uint   `json:"id" example:"1"`
	Nickname       string `json:"nickname" example:"testuser"`
	GamesWon       int64  `json:"games_won"`
	GamesLost      int64  `json:"games_lost"`
	DaresCompleted int64  `json:"dares_completed"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID             uint   `json:"id" example:"1"`
	Nickname       string `json:"nickname" example:"testuser"`
	Email          string `json:"email" example:"test@example.com"`
	GamesWon       int64  `json:"games_won"`
	GamesLost      int64  `json:"games_lost"`
	DaresCompleted int64  `json:"dares_completed"`
	BlockedUsers   int64  `json:"blocked_users"`
}

// PaginatedUserResponse defines the structure for a paginated list of users.
type PaginatedUserResponse struct {
	Data []PublicUserResponse `json:"data"`
	Meta PaginationMeta       `json:"meta"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Nickname, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Nickname:     input.Nickname,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with nickname/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- User Handlers ---

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches for users by nickname with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for nickname"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedUserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func SearchUsers(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	searchQuery := c.Query("q")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	offset := (page - 1) * limit

	var users []models.User
	var totalItems int64

	query := database.DB.Model(&models.User{})
	if searchQuery != "" {
		query = query.Where("nickname ILIKE ?", "%"+searchQuery+"%")
	}

	// Get total count before pagination
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	// Get paginated users
	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	finalResponses := []PublicUserResponse{}
	for _, user := range users {
		// Don't show the viewer in the search results
		if user.ID == viewerID.(uint) {
			continue
		}
		finalResponses = append(finalResponses, buildPublicUserResponse(user))
	}

	c.JSON(http.StatusOK, PaginatedUserResponse{
		Data: finalResponses,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	})
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user by their ID.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// If target is the same as viewer, redirect to /me
	if viewerID.(uint) == uint(targetUserID) {
		GetMe(c)
		return
	}

	var targetUser models.User
	if err := database.DB.First(&targetUser, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPublicUserResponse(targetUser))
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, viewerID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildPrivateUserResponse(user))
}

// endregion

// region --- Helpers ---

func countUserStats(userID uint) (gamesWon, gamesLost, daresCompleted int64) {
	database.DB.Model(&models.SwitchGame{}).
		Where("winner_id = ? AND status IN ?", userID, []models.GameStatus{models.StatusCompleted, models.StatusForfeited}).
		Count(&gamesWon)
	database.DB.Model(&models.SwitchGame{}).
		Where("loser_id = ? AND status IN ?", userID, []models.GameStatus{models.StatusCompleted, models.StatusForfeited}).
		Count(&gamesLost)
	database.DB.Model(&models.Dare{}).
		Where("performer_id = ? AND status = ?", userID, models.DareCompleted).
		Count(&daresCompleted)
	return
}

func buildPublicUserResponse(targetUser models.User) PublicUserResponse {
	won, lost, dares := countUserStats(targetUser.ID)
	return PublicUserResponse{
		ID:             targetUser.ID,
		Nickname:       targetUser.Nickname,
		GamesWon:       won,
		GamesLost:      lost,
		DaresCompleted: dares,
	}
}

func buildPrivateUserResponse(user models.User) PrivateUserResponse {
	won, lost, dares := countUserStats(user.ID)

	var blocked int64
	database.DB.Model(&models.UserBlock{}).Where("blocker_id = ?", user.ID).Count(&blocked)

	return PrivateUserResponse{
		ID:             user.ID,
		Nickname:       user.Nickname,
		Email:          user.Email,
		GamesWon:       won,
		GamesLost:      lost,
		DaresCompleted: dares,
		BlockedUsers:   blocked,
	}
}

// endregion
