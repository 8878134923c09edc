package suggestions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingRepo, provideSuggestionService)

func provideEmbeddingRepo(db *gorm.DB) repositories.IPlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func provideSuggestionService(
	embeddingClient utils.EmbeddingClientInterface,
	embeddingRepo repositories.IPlaceEmbeddingRepository,
	placeRepo repositories.PlaceRepository,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(embeddingClient, embeddingRepo, placeRepo)
}
