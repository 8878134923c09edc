package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	dbm "tripforge/internal/models/db_models"
)

type IPlaceEmbeddingRepository interface {
	GetListOfPlaceEmbeddingsByVector(vector pgvector.Vector, tripId string) ([]dbm.PlaceEmbedding, error)
	UpsertPlaceEmbedding(embedding dbm.PlaceEmbedding) error
}

type PlaceEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) IPlaceEmbeddingRepository {
	return &PlaceEmbeddingRepository{
		db: db,
	}
}

func (p *PlaceEmbeddingRepository) GetListOfPlaceEmbeddingsByVector(vector pgvector.Vector, tripId string) ([]dbm.PlaceEmbedding, error) {
	var results []dbm.PlaceEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM place_embeddings
        WHERE trip_id = $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := p.db.Raw(query, vecStr, tripId).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (p *PlaceEmbeddingRepository) UpsertPlaceEmbedding(embedding dbm.PlaceEmbedding) error {
	return p.db.Save(&embedding).Error
}
