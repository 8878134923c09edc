package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, providePlaceRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, placeRepo repositories.PlaceRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, placeRepo)
}
