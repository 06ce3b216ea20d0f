package weather

import (
	"sync"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"

	"github.com/jonboulle/clockwork"
)

const (
	minForecastDays = 1

	// maxForecastDays is the provider's forecast horizon: the furthest day
	// for which per-sample forecast data exists.
	maxForecastDays = 5

	// DefaultForecastDays is used when the caller does not ask for a specific
	// day count.
	DefaultForecastDays = 3

	// samplesPerDay is the provider's 3-hour forecast resolution.
	samplesPerDay = 8
)

// currentWeatherCacheEntry is one cached current-weather reading.
type currentWeatherCacheEntry struct {
	data      entity.WeatherData
	fetchedAt time.Time
}

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	clock      clockwork.Clock
	cacheTTL   time.Duration

	cacheMu sync.RWMutex
	cache   map[string]currentWeatherCacheEntry
}

// NewWeatherUseCase creates the weather use case. The clock is injected so
// tests can control cache expiry and the risk horizon deterministically.
func NewWeatherUseCase(apiGateway api.WeatherGateway, clock clockwork.Clock, currentWeatherTTL time.Duration) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
		clock:      clock,
		cacheTTL:   currentWeatherTTL,
		cache:      make(map[string]currentWeatherCacheEntry),
	}
}

// CachedLocationCount reports how many locations currently have a cached
// current-weather reading, stale entries included.
func (uc *weatherUseCase) CachedLocationCount() int {
	uc.cacheMu.RLock()
	defer uc.cacheMu.RUnlock()
	return len(uc.cache)
}
