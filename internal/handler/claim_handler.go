package handler

import (
	"net/http"
	"time"

	"deviantdare/backend/internal/hub"
	"deviantdare/backend/internal/metrics"
	"deviantdare/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ClaimPreviewResponse is what a claim link shows before the viewer commits.
// The dare content itself stays hidden until the claim is executed with
// consent; only the creator, difficulty, and kind of challenge are revealed.
type ClaimPreviewResponse struct {
	Kind       string             `json:"kind"` // "switch_game" or "dare"
	Creator    PublicUserResponse `json:"creator"`
	Difficulty models.Difficulty  `json:"difficulty"`
	Tags       []TagResponse      `json:"tags"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ExecuteClaimInput carries the explicit consent flag plus, for switch
// games, the claimer's gesture and counter-dare.
type ExecuteClaimInput struct {
	Consent bool            `json:"consent" binding:"required"`
	Move    *models.Gesture `json:"move" binding:"omitempty,oneof=rock paper scissors"`
	Dare    string          `json:"dare"`
}

// endregion

// PreviewClaim godoc
// @Summary      Preview a claim link
// @Description  Resolves a claim token to a summary of the pending game or dare. Works without authentication so shared links can render.
// @Tags         claim
// @Produce      json
// @Param        token path string true "Claim Token"
// @Success      200 {object} ClaimPreviewResponse
// @Failure      404 {object} ErrorResponse "Unknown or consumed token"
// @Failure      410 {object} ErrorResponse "Expired token"
// @Router       /claim/{token} [get]
func PreviewClaim(c *gin.Context) {
	token := c.Param("token")

	claimable, err := Engine.ResolveClaim(token, time.Now())
	if err != nil {
		respondGameError(c, err)
		return
	}

	var resp ClaimPreviewResponse
	if claimable.Game != nil {
		resp = ClaimPreviewResponse{
			Kind:       "switch_game",
			Creator:    buildPublicUserResponse(claimable.Game.Creator),
			Difficulty: claimable.Game.Difficulty,
			Tags:       []TagResponse{},
			CreatedAt:  claimable.Game.CreatedAt,
		}
		for _, tag := range claimable.Game.Tags {
			if tag != nil {
				resp.Tags = append(resp.Tags, newTagResponse(*tag))
			}
		}
	} else {
		resp = ClaimPreviewResponse{
			Kind:       "dare",
			Creator:    buildPublicUserResponse(claimable.Dare.Creator),
			Difficulty: claimable.Dare.Difficulty,
			Tags:       []TagResponse{},
			CreatedAt:  claimable.Dare.CreatedAt,
		}
		for _, tag := range claimable.Dare.Tags {
			if tag != nil {
				resp.Tags = append(resp.Tags, newTagResponse(*tag))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ExecuteClaim godoc
// @Summary      Claim a game or dare
// @Description  Consumes a single-use claim token with explicit consent. For switch games the body must carry the claimer's gesture and counter-dare. Of any set of concurrent claims exactly one succeeds.
// @Tags         claim
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        token path string            true "Claim Token"
// @Param        input body ExecuteClaimInput true "Claim Info"
// @Success      200 {object} SwitchGameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Unknown or consumed token"
// @Failure      409 {object} ErrorResponse "No longer available"
// @Failure      410 {object} ErrorResponse "Expired token"
// @Router       /claim/{token} [post]
func ExecuteClaim(c *gin.Context) {
	userID, _ := c.Get("userID")
	token := c.Param("token")

	var input ExecuteClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claimable, err := Engine.ResolveClaim(token, time.Now())
	if err != nil {
		respondGameError(c, err)
		return
	}

	if claimable.Game != nil {
		if input.Move == nil || input.Dare == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A move and a counter-dare are required to claim a switch game"})
			return
		}
		g, err := Engine.ClaimGame(token, userID.(uint), *input.Move, input.Dare)
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
		return
	}

	d, err := Engine.ClaimDare(token, userID.(uint))
	if err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDareResponse(*d, userID.(uint)))
}
