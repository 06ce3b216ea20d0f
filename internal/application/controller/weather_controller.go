package controller

import (
	"errors"
	"net/http"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/forecast", controller.GetForecast)
	controller.api.POST("/weather-risk", controller.AssessEventRisk)
	controller.api.GET("/weather/current/:location", controller.GetCurrentWeather)
}

// GetForecast godoc
// @Summary Get multi-day forecast summary
// @Description Resolve a city and reduce the provider's 3-hour samples into per-day summaries
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string true "City name"
// @Param days query int false "Number of days, clamped to 1-5" default(3)
// @Success 200 {object} entity.ForecastSummary "Forecast summary"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} map[string]string "Unknown location"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := c.QueryParam("city")
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), weather.DefaultForecastDays)

	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	summary, err := controller.useCase.GetForecast(city, days)
	if err != nil {
		return c.JSON(statusForError(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summary)
}

// AssessEventRisk godoc
// @Summary Assess weather risk for an event
// @Description Rate weather-driven event risk as low/medium/high with a rationale and mitigations
// @Tags weather
// @Accept json
// @Produce json
// @Param query body model.EventRiskQueryDTO true "Event to assess"
// @Success 200 {object} entity.WeatherRisk "Risk assessment"
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 404 {object} map[string]string "Unknown location"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /weather-risk [post]
func (controller *WeatherController) AssessEventRisk(c echo.Context) error {
	var query model.EventRiskQueryDTO
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	risk, err := controller.useCase.AssessEventRisk(query)
	if err != nil {
		return c.JSON(statusForError(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, risk)
}

// GetCurrentWeather godoc
// @Summary Get current weather for a location
// @Description Return current conditions, served from a 30-minute cache
// @Tags weather
// @Accept json
// @Produce json
// @Param location path string true "Location name"
// @Success 200 {object} entity.WeatherData "Current conditions"
// @Failure 404 {object} map[string]string "Unknown location"
// @Failure 502 {object} map[string]string "Provider failure"
// @Router /weather/current/{location} [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	location := c.Param("location")

	data, err := controller.useCase.GetCurrentWeather(location)
	if err != nil {
		return c.JSON(statusForError(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}

// statusForError maps domain error kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidLocation):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
