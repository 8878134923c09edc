package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate the itinerary for a trip
// @Description Geocode the trip's voted places, order them into a coherent route, derive transit legs, and persist a day-by-day schedule. Replaces any previous itinerary for the trip.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetItinerary godoc
// @Summary Get the persisted itinerary for a trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.ItineraryItemResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{tripId}/itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	items, err := i.itineraryService.GetItinerary(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itinerary fetched successfully")
}
