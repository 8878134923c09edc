package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	tripService services.TripServiceInterface,
	geocoder services.GeocoderServiceInterface,
	matrixService services.DistanceMatrixService,
	optimizer services.RouteOptimizerInterface,
	advisor services.TransitAdvisorInterface,
	planner utils.PlannerClientInterface,
	itineraryRepo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		tripService,
		geocoder,
		matrixService,
		optimizer,
		advisor,
		planner,
		itineraryRepo)
}
