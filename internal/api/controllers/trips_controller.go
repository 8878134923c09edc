package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type TripsController struct {
	tripService       services.TripServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewTripsController(
	tripService services.TripServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *TripsController {
	return &TripsController{
		tripService:       tripService,
		suggestionService: suggestionService,
	}
}

// GetScoredPlaces godoc
// @Summary Get a trip's places ranked by group votes
// @Description Places with at least one positive vote, sorted by like count descending
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.ScoredPlace
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{tripId}/places/scored [get]
func (t *TripsController) GetScoredPlaces(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	places, err := t.tripService.GetScoredPlaces(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Scored places fetched successfully")
}

// SuggestPlaces godoc
// @Summary Suggest places for a trip matching a free-text query
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param q query string true "Search text"
// @Success 200 {array} response_models.SuggestedPlace
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{tripId}/places/suggest [get]
func (t *TripsController) SuggestPlaces(c *gin.Context) {
	tripId := c.Param("tripId")
	query := c.Query("q")
	if tripId == "" || query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID and q are required")
		return
	}

	suggestions, err := t.suggestionService.SuggestPlaces(c.Request.Context(), tripId, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

// ReindexPlaces godoc
// @Summary Rebuild the suggestion index for a trip's places
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/places/reindex [post]
func (t *TripsController) ReindexPlaces(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	indexed, err := t.suggestionService.ReindexTripPlaces(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"indexed": indexed}, "Places reindexed successfully")
}
