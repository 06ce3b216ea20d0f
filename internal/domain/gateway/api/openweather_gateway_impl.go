package api

import (
	"fmt"
	"strconv"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

const (
	geocodePath        = "/geo/1.0/direct"
	forecastPath       = "/data/2.5/forecast"
	currentWeatherPath = "/data/2.5/weather"

	sampleDateLayout = "2006-01-02"
)

// openWeatherGateway implements WeatherGateway against the OpenWeather REST API.
type openWeatherGateway struct {
	httpClient *http.Client
}

// NewOpenWeatherGateway creates a WeatherGateway backed by the OpenWeather
// API. The API key is sent on every request; an empty key is a configuration
// error surfaced here, before any call is attempted.
func NewOpenWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) (WeatherGateway, error) {
	if apiKey == "" {
		return nil, model.ErrMissingConfiguration
	}

	if clientOptions.DefaultQueryParams == nil {
		clientOptions.DefaultQueryParams = make(map[string]string)
	}
	clientOptions.DefaultQueryParams["appid"] = apiKey
	clientOptions.DefaultQueryParams["units"] = "metric"

	return &openWeatherGateway{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}, nil
}

// GeocodeCity resolves a city name via the geocoding endpoint, first candidate only.
func (g *openWeatherGateway) GeocodeCity(city string) (entity.Coordinates, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(geocodePath).
		WithQueryParams(map[string]string{"q": city, "limit": "1"}).
		WithSuccessResp(&[]external.GeoDirectResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return entity.Coordinates{}, upstreamError("geocoding", errResp, err)
	}

	candidates := *successResp.(*[]external.GeoDirectResponse)
	if len(candidates) == 0 {
		return entity.Coordinates{}, fmt.Errorf("%w: %s", model.ErrInvalidLocation, city)
	}

	first := candidates[0]
	return entity.Coordinates{Label: first.Name, Lat: first.Lat, Lon: first.Lon}, nil
}

// GetForecastSamples fetches count three-hour samples and normalizes them.
func (g *openWeatherGateway) GetForecastSamples(lat, lon float64, count int) ([]entity.ForecastSample, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"lat": formatCoordinate(lat),
			"lon": formatCoordinate(lon),
			"cnt": strconv.Itoa(count),
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError("forecast", errResp, err)
	}

	response := successResp.(*external.ForecastResponse)
	samples := make([]entity.ForecastSample, 0, len(response.List))
	for _, item := range response.List {
		sample := entity.ForecastSample{
			Date:        sampleDate(item),
			Temperature: item.Main.Temp,
			WindSpeed:   item.Wind.Speed,
			Pop:         item.Pop,
		}
		if len(item.Weather) > 0 {
			sample.ConditionMain = item.Weather[0].Main
			sample.Condition = item.Weather[0].Description
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

// GetCurrentConditions fetches the current weather for the given coordinates.
func (g *openWeatherGateway) GetCurrentConditions(lat, lon float64) (entity.CurrentConditions, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(map[string]string{
			"lat": formatCoordinate(lat),
			"lon": formatCoordinate(lon),
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return entity.CurrentConditions{}, upstreamError("current weather", errResp, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	conditions := entity.CurrentConditions{
		Name:        response.Name,
		Temperature: response.Main.Temp,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
	}
	if len(response.Weather) > 0 {
		conditions.Conditions = response.Weather[0].Description
	}

	return conditions, nil
}

// sampleDate derives the calendar day of a sample. The provider's dt_txt
// carries the provider-timezone date; fall back to the UTC date of the unix
// timestamp when it is absent.
func sampleDate(item external.ForecastItem) string {
	if len(item.DtTxt) >= len(sampleDateLayout) {
		return item.DtTxt[:len(sampleDateLayout)]
	}
	return time.Unix(item.Dt, 0).UTC().Format(sampleDateLayout)
}

// upstreamError wraps a failed provider call as model.ErrUpstream, preferring
// the provider's own message when the response carried one.
func upstreamError(operation string, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("%w: %s: %s", model.ErrUpstream, operation, apiErr.Message)
	}
	return fmt.Errorf("%w: %s: %v", model.ErrUpstream, operation, err)
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
