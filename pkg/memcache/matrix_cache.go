// pkg/mem/matrix_cache.go
package mem

import (
	"sync"
	"time"
)

// MatrixCache keeps recently fetched distance matrices keyed by the
// coordinate signature of the request, so regenerating the same trip
// does not hit the routing service again within the TTL.
type MatrixCache interface {
	Get(key string) ([][]*float64, bool)
	Set(key string, distances [][]*float64, ttl time.Duration)
}

type matrixEntry struct {
	distances [][]*float64
	expiresAt time.Time
}

type MatrixResults struct {
	mu   sync.RWMutex
	data map[string]matrixEntry
}

func NewMatrixResults() *MatrixResults {
	return &MatrixResults{
		data: make(map[string]matrixEntry),
	}
}

func (s *MatrixResults) Get(key string) ([][]*float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.distances, true
}

func (s *MatrixResults) Set(key string, distances [][]*float64, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = matrixEntry{
		distances: distances,
		expiresAt: time.Now().Add(ttl),
	}
}
