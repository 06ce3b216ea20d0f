package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWeatherUseCase is a scriptable weather.UseCase.
type fakeWeatherUseCase struct {
	summary *entity.ForecastSummary
	risk    *entity.WeatherRisk
	data    *entity.WeatherData
	err     error

	lastCity string
	lastDays int
	lastRisk model.EventRiskQueryDTO
}

func (f *fakeWeatherUseCase) GetForecast(city string, days int) (*entity.ForecastSummary, error) {
	f.lastCity = city
	f.lastDays = days
	return f.summary, f.err
}

func (f *fakeWeatherUseCase) AssessEventRisk(query model.EventRiskQueryDTO) (*entity.WeatherRisk, error) {
	f.lastRisk = query
	return f.risk, f.err
}

func (f *fakeWeatherUseCase) GetCurrentWeather(location string) (*entity.WeatherData, error) {
	return f.data, f.err
}

func (f *fakeWeatherUseCase) CachedLocationCount() int {
	return 0
}

func newTestServer(useCase *fakeWeatherUseCase) *echo.Echo {
	e := echo.New()
	controller := NewWeatherController(e.Group(""), useCase)
	controller.InitWeatherRoutes()
	return e
}

func TestGetForecastHandler(t *testing.T) {
	useCase := &fakeWeatherUseCase{
		summary: &entity.ForecastSummary{
			Location: "Lisbon",
			Daily: []entity.DailyForecast{{
				Date:                     "2025-06-02",
				TempMin:                  14.2,
				TempMax:                  21.7,
				Condition:                "clear sky",
				PrecipitationProbability: 10,
				WindSpeed:                3.4,
			}},
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/forecast?city=Lisbon&days=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lisbon", useCase.lastCity)
	assert.Equal(t, 2, useCase.lastDays)
	assert.Contains(t, rec.Body.String(), `"precipitation_probability":10`)
	assert.Contains(t, rec.Body.String(), `"wind_speed":3.4`)
}

func TestGetForecastHandlerDefaultsDays(t *testing.T) {
	useCase := &fakeWeatherUseCase{summary: &entity.ForecastSummary{Location: "Lisbon"}}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/forecast?city=Lisbon", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, useCase.lastDays)
}

func TestGetForecastHandlerRequiresCity(t *testing.T) {
	e := newTestServer(&fakeWeatherUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/forecast", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssessEventRiskHandler(t *testing.T) {
	useCase := &fakeWeatherUseCase{
		risk: &entity.WeatherRisk{
			RiskLevel:       entity.RiskHigh,
			Description:     "Weather risk assessment for outdoor wedding at Miami on 2025-06-04: Precipitation forecast",
			Recommendations: []string{"Arrange covered areas or an indoor alternative"},
		},
	}
	e := newTestServer(useCase)

	body := `{"location":"Miami","event_date":"2025-06-04","event_type":"outdoor wedding","attendee_count":200}`
	req := httptest.NewRequest(http.MethodPost, "/weather-risk", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Miami", useCase.lastRisk.Location)
	assert.Equal(t, 200, useCase.lastRisk.AttendeeCount)
	assert.Contains(t, rec.Body.String(), `"risk_level":"high"`)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid params", fmt.Errorf("%w: event_date is in the past", model.ErrInvalidParams), http.StatusBadRequest},
		{"unknown location", fmt.Errorf("%w: Atlantis", model.ErrInvalidLocation), http.StatusNotFound},
		{"upstream failure", fmt.Errorf("%w: forecast: timeout", model.ErrUpstream), http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeWeatherUseCase{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/forecast?city=X", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestGetCurrentWeatherHandler(t *testing.T) {
	useCase := &fakeWeatherUseCase{
		data: &entity.WeatherData{
			Location:    "Paris",
			Temperature: 18.5,
			Conditions:  "scattered clouds",
			Humidity:    64,
			WindSpeed:   4.2,
		},
	}
	e := newTestServer(useCase)

	req := httptest.NewRequest(http.MethodGet, "/weather/current/Paris", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location":"Paris"`)
	assert.Contains(t, rec.Body.String(), `"wind_speed":4.2`)
}
