package handler

import (
	"net/http"
	"strconv"
	"time"

	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/hub"
	"deviantdare/backend/internal/metrics"
	"deviantdare/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type SwitchGameInput struct {
	Dare       string            `json:"dare" binding:"required"`
	Difficulty models.Difficulty `json:"difficulty" binding:"required,oneof=titillating arousing explicit edgy hardcore"`
	Move       *models.Gesture   `json:"move" binding:"omitempty,oneof=rock paper scissors"`
	TagIDs     []uint            `json:"tag_ids"`
}

type JoinInput struct {
	Move       models.Gesture    `json:"move" binding:"required,oneof=rock paper scissors"`
	Dare       string            `json:"dare" binding:"required"`
	Consent    bool              `json:"consent" binding:"required"`
	Difficulty models.Difficulty `json:"difficulty" binding:"omitempty,oneof=titillating arousing explicit edgy hardcore"`
}

type GestureInput struct {
	Move models.Gesture `json:"move" binding:"required,oneof=rock paper scissors"`
}

type ProofInput struct {
	Content string `json:"content" binding:"required"`
}

type ReviewInput struct {
	// Pointer so an explicit false survives binding.
	Approve *bool `json:"approve" binding:"required"`
}

type ProofResponse struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Content  string `json:"content"`
	Reviewed bool   `json:"reviewed"`
	Approved bool   `json:"approved"`
}

type SwitchGameResponse struct {
	ID                 uint                `json:"id"`
	Status             models.GameStatus   `json:"status"`
	Difficulty         models.Difficulty   `json:"difficulty"`
	Outcome            *models.GameOutcome `json:"outcome,omitempty"`
	Creator            PublicUserResponse  `json:"creator"`
	Participant        *PublicUserResponse `json:"participant,omitempty"`
	CreatorDare        string              `json:"creator_dare,omitempty"`
	ParticipantDare    string              `json:"participant_dare,omitempty"`
	CreatorGesture     *models.Gesture     `json:"creator_gesture,omitempty"`
	ParticipantGesture *models.Gesture     `json:"participant_gesture,omitempty"`
	WinnerID           *uint               `json:"winner_id,omitempty"`
	LoserID            *uint               `json:"loser_id,omitempty"`
	ClaimToken         *string             `json:"claim_token,omitempty"`
	Tags               []TagResponse       `json:"tags"`
	Proofs             []ProofResponse     `json:"proofs,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// newSwitchGameResponse shapes a game for a specific viewer. Dare content and
// proofs are party-only; a party's gesture stays hidden from the counterpart
// until the outcome is fixed; the claim token is shown to the creator alone,
// and only while the game still waits for a participant.
func newSwitchGameResponse(g models.SwitchGame, viewerID uint) SwitchGameResponse {
	resp := SwitchGameResponse{
		ID:         g.ID,
		Status:     g.Status,
		Difficulty: g.Difficulty,
		Outcome:    g.Outcome,
		Creator:    buildPublicUserResponse(g.Creator),
		WinnerID:   g.WinnerID,
		LoserID:    g.LoserID,
		Tags:       []TagResponse{},
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
	for _, tag := range g.Tags {
		if tag != nil {
			resp.Tags = append(resp.Tags, newTagResponse(*tag))
		}
	}
	if g.Participant != nil {
		participant := buildPublicUserResponse(*g.Participant)
		resp.Participant = &participant
	}

	isParty := g.PartyOf(viewerID)
	if isParty {
		resp.CreatorDare = g.CreatorDare
		resp.ParticipantDare = g.ParticipantDare
		for _, p := range g.Proofs {
			resp.Proofs = append(resp.Proofs, ProofResponse{
				ID:       p.ID,
				UserID:   p.UserID,
				Content:  p.Content,
				Reviewed: p.Reviewed,
				Approved: p.Approved,
			})
		}
	}

	resolved := g.Outcome != nil
	if g.CreatorGesture != nil && (resolved || viewerID == g.CreatorID) {
		resp.CreatorGesture = g.CreatorGesture
	}
	if g.ParticipantGesture != nil && (resolved || (g.ParticipantID != nil && viewerID == *g.ParticipantID)) {
		resp.ParticipantGesture = g.ParticipantGesture
	}

	if viewerID == g.CreatorID && g.Status == models.StatusWaitingForParticipant {
		resp.ClaimToken = g.ClaimToken
	}

	return resp
}

// endregion

// CreateSwitchGame godoc
// @Summary      Create a switch game
// @Description  Creates a rock-paper-scissors switch game with the creator's dare and mints a single-use claim token.
// @Tags         switches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SwitchGameInput true "Game Info"
// @Success      201  {object}  SwitchGameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /switches [post]
func CreateSwitchGame(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input SwitchGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tags []*models.Tag
	if len(input.TagIDs) > 0 {
		database.DB.Find(&tags, input.TagIDs)
	}

	g, err := Engine.CreateGame(userID.(uint), input.Dare, input.Difficulty, input.Move, tags)
	if err != nil {
		respondGameError(c, err)
		return
	}

	metrics.M.GamesCreated.Inc()
	c.JSON(http.StatusCreated, newSwitchGameResponse(*g, userID.(uint)))
}

// SearchSwitchGames godoc
// @Summary      Search for switch games
// @Description  Gets a paginated list of switch games, optionally filtered by status and difficulty.
// @Tags         switches
// @Produce      json
// @Security     BearerAuth
// @Param        status     query string false "Filter by status (waiting_for_participant, in_progress, completed, cancelled, forfeited)"
// @Param        difficulty query string false "Filter by difficulty"
// @Param        page       query int    false "Page number" default(1)
// @Param        limit      query int    false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[SwitchGameResponse]
// @Router       /switches [get]
func SearchSwitchGames(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := database.DB.Model(&models.SwitchGame{}).
		Preload("Creator").
		Preload("Participant").
		Preload("Tags").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	paginated, err := Paginate[models.SwitchGame](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	responses := []SwitchGameResponse{}
	for _, g := range paginated.Data {
		responses = append(responses, newSwitchGameResponse(g, viewerID.(uint)))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, paginated.Meta.TotalItems, page, limit))
}

// GetSwitchGameByID godoc
// @Summary      Get a switch game by ID
// @Description  Gets full details for a single switch game, shaped for the viewer.
// @Tags         switches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} SwitchGameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /switches/{id} [get]
func GetSwitchGameByID(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	g, err := Engine.LoadGame(uint(gameID))
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSwitchGameResponse(*g, viewerID.(uint)))
}

// JoinSwitchGame godoc
// @Summary      Join a switch game
// @Description  Joins a waiting game with an explicit consent flag, the joiner's gesture, and their counter-dare. Exactly one concurrent join succeeds.
// @Tags         switches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int       true "Game ID"
// @Param        input body JoinInput true "Join Info"
// @Success      200 {object} SwitchGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse "No longer available"
// @Router       /switches/{id}/join [post]
func JoinSwitchGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	var input JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Difficulty != "" {
		g, err := Engine.LoadGame(uint(gameID))
		if err != nil {
			respondGameError(c, err)
			return
		}
		if g.Difficulty != input.Difficulty {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Difficulty does not match this game"})
			return
		}
	}

	g, err := Engine.Join(uint(gameID), userID.(uint), input.Move, input.Dare)
	if err != nil {
		respondGameError(c, err)
		return
	}

	hub.Publish(g.ID, hub.Event{Type: "participant_joined", Payload: gin.H{"user_id": userID}})
	if g.Outcome != nil {
		metrics.M.GamesResolved.WithLabelValues(string(*g.Outcome)).Inc()
		hub.Publish(g.ID, hub.Event{Type: "game_resolved", Payload: gin.H{"outcome": g.Outcome}})
	}
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}

// SubmitSwitchGesture godoc
// @Summary      Submit a gesture
// @Description  Records the caller's write-once gesture. When both gestures are in, the outcome is resolved.
// @Tags         switches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int          true "Game ID"
// @Param        input body GestureInput true "Gesture"
// @Success      200 {object} SwitchGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse "Already resolved"
// @Router       /switches/{id}/gesture [post]
func SubmitSwitchGesture(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	var input GestureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := Engine.SubmitGesture(uint(gameID), userID.(uint), input.Move)
	if err != nil {
		respondGameError(c, err)
		return
	}

	// The payload never carries the move itself; the counterpart only learns
	// it once the outcome is fixed.
	hub.Publish(g.ID, hub.Event{Type: "gesture_submitted", Payload: gin.H{"user_id": userID}})
	if g.Outcome != nil {
		metrics.M.GamesResolved.WithLabelValues(string(*g.Outcome)).Inc()
		hub.Publish(g.ID, hub.Event{Type: "game_resolved", Payload: gin.H{"outcome": g.Outcome}})
	}
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}

// SubmitSwitchProof godoc
// @Summary      Submit proof
// @Description  Submits the losing party's evidence of dare completion.
// @Tags         switches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int        true "Game ID"
// @Param        input body ProofInput true "Proof"
// @Success      200 {object} SwitchGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse
// @Router       /switches/{id}/proof [post]
func SubmitSwitchProof(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	var input ProofInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := Engine.SubmitProof(uint(gameID), userID.(uint), input.Content)
	if err != nil {
		respondGameError(c, err)
		return
	}

	hub.Publish(g.ID, hub.Event{Type: "proof_submitted", Payload: gin.H{"user_id": userID}})
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}

// ReviewSwitchProof godoc
// @Summary      Review proof
// @Description  Grades the counterpart's proof. The game completes once every owed proof is reviewed.
// @Tags         switches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Game ID"
// @Param        input body ReviewInput true "Review decision"
// @Success      200 {object} SwitchGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /switches/{id}/review [post]
func ReviewSwitchProof(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := Engine.ReviewProof(uint(gameID), userID.(uint), *input.Approve)
	if err != nil {
		respondGameError(c, err)
		return
	}

	hub.Publish(g.ID, hub.Event{Type: "proof_reviewed", Payload: gin.H{"user_id": userID}})
	if g.Status == models.StatusCompleted {
		hub.Publish(g.ID, hub.Event{Type: "game_completed", Payload: gin.H{}})
	}
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}

// ChickenOutSwitchGame godoc
// @Summary      Chicken out
// @Description  Unilaterally forfeits an in-progress game. The forfeiting party becomes the loser and the game ends without proof. No undo.
// @Tags         switches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} SwitchGameResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse
// @Router       /switches/{id}/chicken-out [post]
func ChickenOutSwitchGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	g, err := Engine.ChickenOut(uint(gameID), userID.(uint))
	if err != nil {
		respondGameError(c, err)
		return
	}

	hub.Publish(g.ID, hub.Event{Type: "chickened_out", Payload: gin.H{"user_id": userID}})
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}

// CancelSwitchGame godoc
// @Summary      Cancel a waiting game
// @Description  Withdraws a game that has no participant yet. Creator only; the claim token is invalidated.
// @Tags         switches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} SwitchGameResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse
// @Router       /switches/{id}/cancel [post]
func CancelSwitchGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, _ := strconv.Atoi(c.Param("id"))

	g, err := Engine.Cancel(uint(gameID), userID.(uint))
	if err != nil {
		respondGameError(c, err)
		return
	}

	hub.Publish(g.ID, hub.Event{Type: "game_cancelled", Payload: gin.H{}})
	c.JSON(http.StatusOK, newSwitchGameResponse(*g, userID.(uint)))
}
