package api

import (
	"weather-api/internal/domain/entity"
)

// WeatherGateway is the narrow adapter over the upstream weather provider.
// Implementations translate provider responses into normalized entities so
// the aggregation and classification logic never sees provider field names.
type WeatherGateway interface {
	// GeocodeCity resolves a free-text place name to coordinates, taking the
	// first candidate only. Returns a model.ErrInvalidLocation error when the
	// lookup yields zero candidates.
	GeocodeCity(city string) (entity.Coordinates, error)

	// GetForecastSamples fetches up to count three-hour forecast samples for
	// the given coordinates, in provider order.
	GetForecastSamples(lat, lon float64, count int) ([]entity.ForecastSample, error)

	// GetCurrentConditions fetches the current weather for the given
	// coordinates.
	GetCurrentConditions(lat, lon float64) (entity.CurrentConditions, error)
}
