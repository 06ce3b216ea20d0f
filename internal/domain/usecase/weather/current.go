package weather

import (
	"fmt"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
)

// GetCurrentWeather serves a location's current conditions from the cache
// while the cached reading is younger than the staleness window, otherwise
// fetches once and re-populates the entry. The cache is keyed by the raw
// requested string and is left untouched when the fetch fails.
func (uc *weatherUseCase) GetCurrentWeather(location string) (*entity.WeatherData, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", model.ErrInvalidParams)
	}

	uc.cacheMu.RLock()
	entry, found := uc.cache[location]
	uc.cacheMu.RUnlock()

	if found && uc.clock.Since(entry.fetchedAt) < uc.cacheTTL {
		log.Debugf("Current weather cache hit for %s", location)
		data := entry.data
		return &data, nil
	}

	coords, err := uc.apiGateway.GeocodeCity(location)
	if err != nil {
		return nil, err
	}

	conditions, err := uc.apiGateway.GetCurrentConditions(coords.Lat, coords.Lon)
	if err != nil {
		return nil, err
	}

	name := conditions.Name
	if name == "" {
		name = location
	}

	data := entity.WeatherData{
		Location:    name,
		Temperature: conditions.Temperature,
		Conditions:  conditions.Conditions,
		Humidity:    conditions.Humidity,
		WindSpeed:   conditions.WindSpeed,
		Timestamp:   uc.clock.Now(),
	}

	// Concurrent misses for the same location may both fetch; last write wins.
	uc.cacheMu.Lock()
	uc.cache[location] = currentWeatherCacheEntry{data: data, fetchedAt: data.Timestamp}
	uc.cacheMu.Unlock()

	log.Infof("Refreshed current weather for %s", location)
	return &data, nil
}
