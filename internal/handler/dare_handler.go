package handler

import (
	"net/http"
	"strconv"
	"time"

	"deviantdare/backend/internal/database"
	"deviantdare/backend/internal/metrics"
	"deviantdare/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type DareInput struct {
	Description string            `json:"description" binding:"required"`
	Difficulty  models.Difficulty `json:"difficulty" binding:"required,oneof=titillating arousing explicit edgy hardcore"`
	TagIDs      []uint            `json:"tag_ids"`
}

type DareResponse struct {
	ID          uint                `json:"id"`
	Status      models.DareStatus   `json:"status"`
	Difficulty  models.Difficulty   `json:"difficulty"`
	Creator     PublicUserResponse  `json:"creator"`
	Performer   *PublicUserResponse `json:"performer,omitempty"`
	Description string              `json:"description,omitempty"`
	ClaimToken  *string             `json:"claim_token,omitempty"`
	Tags        []TagResponse       `json:"tags"`
	Proofs      []ProofResponse     `json:"proofs,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// newDareResponse shapes a dare for a specific viewer. The description is
// hidden from everyone but the parties until the dare is claimed ("what you
// get is what you dare to open"); the claim token is creator-only.
func newDareResponse(d models.Dare, viewerID uint) DareResponse {
	resp := DareResponse{
		ID:         d.ID,
		Status:     d.Status,
		Difficulty: d.Difficulty,
		Creator:    buildPublicUserResponse(d.Creator),
		Tags:       []TagResponse{},
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	for _, tag := range d.Tags {
		if tag != nil {
			resp.Tags = append(resp.Tags, newTagResponse(*tag))
		}
	}
	if d.Performer != nil {
		performer := buildPublicUserResponse(*d.Performer)
		resp.Performer = &performer
	}

	isParty := d.CreatorID == viewerID || (d.PerformerID != nil && *d.PerformerID == viewerID)
	if isParty {
		resp.Description = d.Description
		for _, p := range d.Proofs {
			resp.Proofs = append(resp.Proofs, ProofResponse{
				ID:       p.ID,
				UserID:   p.UserID,
				Content:  p.Content,
				Reviewed: p.Reviewed,
				Approved: p.Approved,
			})
		}
	}

	if viewerID == d.CreatorID && d.Status == models.DareWaitingForPerformer {
		resp.ClaimToken = d.ClaimToken
	}

	return resp
}

// endregion

// CreateDare godoc
// @Summary      Create a dare
// @Description  Creates a standalone dare and mints a single-use claim token for sharing.
// @Tags         dares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DareInput true "Dare Info"
// @Success      201  {object}  DareResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /dares [post]
func CreateDare(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input DareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tags []*models.Tag
	if len(input.TagIDs) > 0 {
		database.DB.Find(&tags, input.TagIDs)
	}

	d, err := Engine.CreateDare(userID.(uint), input.Description, input.Difficulty, tags)
	if err != nil {
		respondGameError(c, err)
		return
	}

	metrics.M.DaresCreated.Inc()
	c.JSON(http.StatusCreated, newDareResponse(*d, userID.(uint)))
}

// SearchDares godoc
// @Summary      Search for dares
// @Description  Gets a paginated list of dares, optionally filtered by status and difficulty.
// @Tags         dares
// @Produce      json
// @Security     BearerAuth
// @Param        status     query string false "Filter by status"
// @Param        difficulty query string false "Filter by difficulty"
// @Param        page       query int    false "Page number" default(1)
// @Param        limit      query int    false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[DareResponse]
// @Router       /dares [get]
func SearchDares(c *gin.Context) {
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

	query := database.DB.Model(&models.Dare{}).
		Preload("Creator").
		Preload("Performer").
		Preload("Tags").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	paginated, err := Paginate[models.Dare](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dares"})
		return
	}

	responses := []DareResponse{}
	for _, d := range paginated.Data {
		responses = append(responses, newDareResponse(d, viewerID.(uint)))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, paginated.Meta.TotalItems, page, limit))
}

// GetDareByID godoc
// @Summary      Get a dare by ID
// @Description  Gets full details for a single dare, shaped for the viewer.
// @Tags         dares
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Dare ID"
// @Success      200 {object} DareResponse
// @Failure      404 {object} ErrorResponse "Dare not found"
// @Router       /dares/{id} [get]
func GetDareByID(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	dareID, _ := strconv.Atoi(c.Param("id"))

	d, err := Engine.LoadDare(uint(dareID))
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDareResponse(*d, viewerID.(uint)))
}

// SubmitDareProof godoc
// @Summary      Submit dare proof
// @Description  Submits the performer's evidence of dare completion.
// @Tags         dares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int        true "Dare ID"
// @Param        input body ProofInput true "Proof"
// @Success      200 {object} DareResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Dare not found"
// @Failure      409 {object} ErrorResponse
// @Router       /dares/{id}/proof [post]
func SubmitDareProof(c *gin.Context) {
	userID, _ := c.Get("userID")
	dareID, _ := strconv.Atoi(c.Param("id"))

	var input ProofInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := Engine.SubmitDareProof(uint(dareID), userID.(uint), input.Content)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDareResponse(*d, userID.(uint)))
}

// GradeDare godoc
// @Summary      Grade dare proof
// @Description  The creator reviews the performer's proof; the dare completes either way.
// @Tags         dares
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Dare ID"
// @Param        input body ReviewInput true "Review decision"
// @Success      200 {object} DareResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /dares/{id}/grade [post]
func GradeDare(c *gin.Context) {
	userID, _ := c.Get("userID")
	dareID, _ := strconv.Atoi(c.Param("id"))

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := Engine.GradeDare(uint(dareID), userID.(uint), *input.Approve)
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDareResponse(*d, userID.(uint)))
}

// ChickenOutDare godoc
// @Summary      Chicken out of a dare
// @Description  The performer unilaterally forfeits an in-progress dare. Terminal, no undo.
// @Tags         dares
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Dare ID"
// @Success      200 {object} DareResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Dare not found"
// @Failure      409 {object} ErrorResponse
// @Router       /dares/{id}/chicken-out [post]
func ChickenOutDare(c *gin.Context) {
	userID, _ := c.Get("userID")
	dareID, _ := strconv.Atoi(c.Param("id"))

	d, err := Engine.DareChickenOut(uint(dareID), userID.(uint))
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDareResponse(*d, userID.(uint)))
}

// CancelDare godoc
// @Summary      Cancel a pending dare
// @Description  Withdraws a dare nobody has claimed yet. Creator only; the claim token is invalidated.
// @Tags         dares
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Dare ID"
// @Success      200 {object} DareResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Dare not found"
// @Failure      409 {object} ErrorResponse
// @Router       /dares/{id}/cancel [post]
func CancelDare(c *gin.Context) {
	userID, _ := c.Get("userID")
	dareID, _ := strconv.Atoi(c.Param("id"))

	d, err := Engine.CancelDare(uint(dareID), userID.(uint))
	if err != nil {
		respondGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDareResponse(*d, userID.(uint)))
}
