package geocoder_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"tripforge/internal/services"
)

var Module = fx.Provide(provideGeocoder)

func provideGeocoder() services.GeocoderServiceInterface {
	// Free-tier politeness: one lookup every 1.5s unless overridden.
	delay := 1500 * time.Millisecond
	if ms := os.Getenv("GEOCODE_DELAY_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= 0 {
			delay = time.Duration(v) * time.Millisecond
		}
	}

	strict := services.NewNominatimProvider(os.Getenv("NOMINATIM_BASE_URL"))
	fuzzy := services.NewPhotonProvider(os.Getenv("PHOTON_BASE_URL"))

	return services.NewGeocoderService(strict, fuzzy, delay)
}
