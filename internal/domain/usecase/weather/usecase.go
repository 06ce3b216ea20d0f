package weather

import (
	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// GetForecast builds a multi-day forecast summary for a city. The day
	// count is silently clamped to [1,5].
	GetForecast(city string, days int) (*entity.ForecastSummary, error)

	// AssessEventRisk rates the weather risk for an event from its location,
	// date, type and attendee count.
	AssessEventRisk(query model.EventRiskQueryDTO) (*entity.WeatherRisk, error)

	// GetCurrentWeather returns current conditions for a location, served from
	// the in-memory cache while the cached reading is fresh.
	GetCurrentWeather(location string) (*entity.WeatherData, error)

	// CachedLocationCount reports how many locations currently have a cached
	// current-weather reading.
	CachedLocationCount() int
}
