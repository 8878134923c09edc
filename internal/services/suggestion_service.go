package services

import (
	"context"
	"log"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

type SuggestionServiceInterface interface {
	SuggestPlaces(ctx context.Context, tripId string, query string) ([]response_models.SuggestedPlace, error)
	ReindexTripPlaces(ctx context.Context, tripId string) (int, error)
}

type SuggestionService struct {
	embeddingClient utils.EmbeddingClientInterface
	embeddingRepo   repositories.IPlaceEmbeddingRepository
	placeRepo       repositories.PlaceRepository
}

func NewSuggestionService(
	embeddingClient utils.EmbeddingClientInterface,
	embeddingRepo repositories.IPlaceEmbeddingRepository,
	placeRepo repositories.PlaceRepository,
) SuggestionServiceInterface {
	return &SuggestionService{
		embeddingClient: embeddingClient,
		embeddingRepo:   embeddingRepo,
		placeRepo:       placeRepo,
	}
}

// SuggestPlaces finds the trip's indexed places closest in meaning to a
// free-text query via vector similarity.
func (s *SuggestionService) SuggestPlaces(ctx context.Context, tripId string, query string) ([]response_models.SuggestedPlace, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Embedding error for query %q: %v", query, err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	embeddings, err := s.embeddingRepo.GetListOfPlaceEmbeddingsByVector(vector, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	suggestions := make([]response_models.SuggestedPlace, 0, len(embeddings))
	for _, embedding := range embeddings {
		suggestions = append(suggestions, response_models.SuggestedPlace{
			ID:          embedding.PlaceID,
			Name:        embedding.Name,
			Description: embedding.Description,
			Tags:        embedding.Tags,
		})
	}

	return suggestions, nil
}

// ReindexTripPlaces recomputes and stores the embedding for every place on
// the trip. Returns how many places were indexed.
func (s *SuggestionService) ReindexTripPlaces(ctx context.Context, tripId string) (int, error) {
	places, err := s.placeRepo.ListPlacesByTripId(ctx, tripId)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	indexed := 0
	for _, place := range places {
		if err := s.indexPlace(ctx, place); err != nil {
			return indexed, err
		}
		indexed++
	}

	log.Printf("Indexed %d places for trip %s", indexed, tripId)
	return indexed, nil
}

func (s *SuggestionService) indexPlace(ctx context.Context, place dbm.Place) error {
	vector, err := s.embeddingClient.GetEmbedding(ctx, place.Name+" "+place.Description)
	if err != nil {
		log.Printf("Embedding error for place %s: %v", place.ID, err)
		return utils.ErrUnexpectedBehaviorOfAI
	}

	embedding := dbm.PlaceEmbedding{
		PlaceID:     place.ID.String(),
		TripID:      place.TripID.String(),
		Name:        place.Name,
		Description: place.Description,
		Tags:        []string{place.Category},
		Embedding:   vector,
	}

	if err := s.embeddingRepo.UpsertPlaceEmbedding(embedding); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
