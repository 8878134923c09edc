package matrix_fx

import (
	"os"

	"go.uber.org/fx"
	"tripforge/internal/services"
	mem "tripforge/pkg/memcache"
)

var Module = fx.Provide(provideMatrixService)

func provideMatrixService() services.DistanceMatrixService {
	return services.NewOSRMTableClient(os.Getenv("OSRM_BASE_URL"), mem.NewMatrixResults())
}
