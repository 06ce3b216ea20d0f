package weather

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run with "today" pinned to 2025-06-01.
func newRiskUseCase(gateway *fakeGateway) UseCase {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC))
	return NewWeatherUseCase(gateway, clock, 30*time.Minute)
}

func riskQuery(location, eventDate, eventType string, attendees int) model.EventRiskQueryDTO {
	return model.EventRiskQueryDTO{
		Location:      location,
		EventDate:     eventDate,
		EventType:     eventType,
		AttendeeCount: attendees,
	}
}

func rainyDay(date string) []entity.ForecastSample {
	return []entity.ForecastSample{
		sampleOn(date, 24.0, 4.0, 0.8, "Rain", "moderate rain"),
		sampleOn(date, 25.0, 5.0, 0.9, "Rain", "heavy intensity rain"),
		sampleOn(date, 23.0, 4.5, 0.7, "Clouds", "overcast clouds"),
	}
}

func TestAssessEventRiskOutdoorRain(t *testing.T) {
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Miami", Lat: 25.76, Lon: -80.19},
		samples: rainyDay("2025-06-04"),
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Miami", "2025-06-04", "outdoor wedding", 200))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskHigh, risk.RiskLevel)
	assert.Contains(t, risk.Description, "Precipitation forecast")
	assert.Contains(t, strings.Join(risk.Recommendations, "; "), "cancellation/postponement")
}

func TestAssessEventRiskLongRange(t *testing.T) {
	gateway := &fakeGateway{}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Chicago", "2025-06-11", "outdoor conference", 0))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, risk.RiskLevel)
	// The long-range branch never inspects live weather data.
	assert.Zero(t, gateway.geocodeCalls)
	assert.Zero(t, gateway.forecastCalls)
	assert.Contains(t, strings.Join(risk.Recommendations, "; "), "indoor backup option")
}

func TestAssessEventRiskLongRangeIndoorOmitsBackup(t *testing.T) {
	useCase := newRiskUseCase(&fakeGateway{})

	risk, err := useCase.AssessEventRisk(riskQuery("Chicago", "2025-06-20", "indoor summit", 0))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, risk.RiskLevel)
	assert.NotContains(t, strings.Join(risk.Recommendations, "; "), "indoor backup option")
	assert.Contains(t, strings.Join(risk.Recommendations, "; "), "weather insurance")
}

func TestAssessEventRiskCalmIndoor(t *testing.T) {
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Austin", Lat: 30.3, Lon: -97.7},
		samples: calmDay("2025-06-03"),
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Austin", "2025-06-03", "indoor gala", 100))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, risk.RiskLevel)
	assert.Contains(t, risk.Description, "No significant weather risks identified")
}

func TestAssessEventRiskSportsOverride(t *testing.T) {
	windy := []entity.ForecastSample{
		sampleOn("2025-06-02", 20.0, 12.5, 0, "Clouds", "broken clouds"),
		sampleOn("2025-06-02", 21.0, 11.0, 0, "Clouds", "broken clouds"),
	}
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Denver", Lat: 39.7, Lon: -105.0},
		samples: windy,
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Denver", "2025-06-02", "outdoor sports marathon", 1000))

	require.NoError(t, err)
	// Strong wind alone would leave an outdoor event at medium; the sports
	// check runs last and forces high.
	assert.Equal(t, entity.RiskHigh, risk.RiskLevel)
	assert.Contains(t, risk.Description, "Strong winds forecast")
	assert.Contains(t, risk.Description, "player performance and safety")
}

func TestAssessEventRiskOutdoorWindOnlyIsMedium(t *testing.T) {
	gateway := &fakeGateway{
		coords: entity.Coordinates{Label: "Denver", Lat: 39.7, Lon: -105.0},
		samples: []entity.ForecastSample{
			sampleOn("2025-06-02", 20.0, 12.5, 0, "Clouds", "broken clouds"),
		},
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Denver", "2025-06-02", "outdoor concert", 300))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, risk.RiskLevel)
}

func TestAssessEventRiskAccumulatesToHigh(t *testing.T) {
	// Wind plus extreme temperature, no rain: medium after the wind check,
	// high after the temperature check. The level never regresses.
	gateway := &fakeGateway{
		coords: entity.Coordinates{Label: "Phoenix", Lat: 33.4, Lon: -112.1},
		samples: []entity.ForecastSample{
			sampleOn("2025-06-02", 38.0, 12.0, 0, "Clear", "clear sky"),
		},
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Phoenix", "2025-06-02", "outdoor festival", 400))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskHigh, risk.RiskLevel)
	assert.Contains(t, risk.Description, "Strong winds forecast")
	assert.Contains(t, risk.Description, "Extreme temperature forecast")
}

func TestAssessEventRiskIndoorLargeCrowdRain(t *testing.T) {
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Seattle", Lat: 47.6, Lon: -122.3},
		samples: rainyDay("2025-06-03"),
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Seattle", "2025-06-03", "indoor expo", 800))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, risk.RiskLevel)
	assert.Contains(t, risk.Description, "arrival and departure")
}

func TestAssessEventRiskIndoorSmallCrowdRain(t *testing.T) {
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Seattle", Lat: 47.6, Lon: -122.3},
		samples: rainyDay("2025-06-03"),
	}
	useCase := newRiskUseCase(gateway)

	risk, err := useCase.AssessEventRisk(riskQuery("Seattle", "2025-06-03", "indoor expo", 200))

	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, risk.RiskLevel)
}

func TestAssessEventRiskDateBoundaries(t *testing.T) {
	t.Run("yesterday fails", func(t *testing.T) {
		useCase := newRiskUseCase(&fakeGateway{})

		_, err := useCase.AssessEventRisk(riskQuery("Boston", "2025-05-31", "outdoor fair", 100))

		assert.ErrorIs(t, err, model.ErrInvalidParams)
	})

	t.Run("today is in horizon", func(t *testing.T) {
		gateway := &fakeGateway{
			coords:  entity.Coordinates{Label: "Boston", Lat: 42.4, Lon: -71.1},
			samples: calmDay("2025-06-01"),
		}
		useCase := newRiskUseCase(gateway)

		risk, err := useCase.AssessEventRisk(riskQuery("Boston", "2025-06-01", "outdoor fair", 100))

		require.NoError(t, err)
		assert.Equal(t, 1, gateway.forecastCalls)
		assert.Equal(t, entity.RiskLow, risk.RiskLevel)
	})
}

func TestAssessEventRiskValidation(t *testing.T) {
	useCase := newRiskUseCase(&fakeGateway{})

	tests := []struct {
		name  string
		query model.EventRiskQueryDTO
	}{
		{"missing location", riskQuery("", "2025-06-03", "outdoor fair", 100)},
		{"missing date", riskQuery("Boston", "", "outdoor fair", 100)},
		{"missing type", riskQuery("Boston", "2025-06-03", "", 100)},
		{"unparsable date", riskQuery("Boston", "not-a-date", "outdoor fair", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.AssessEventRisk(tt.query)
			assert.ErrorIs(t, err, model.ErrInvalidParams)
		})
	}
}

func TestAssessEventRiskNoSamplesForDate(t *testing.T) {
	gateway := &fakeGateway{
		coords:  entity.Coordinates{Label: "Boston", Lat: 42.4, Lon: -71.1},
		samples: calmDay("2025-06-05"),
	}
	useCase := newRiskUseCase(gateway)

	_, err := useCase.AssessEventRisk(riskQuery("Boston", "2025-06-03", "outdoor fair", 100))

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUpstream)
	assert.Contains(t, err.Error(), "no forecast data for event date")
}

func TestClassifyEventTypeIsCaseInsensitive(t *testing.T) {
	category := classifyEventType("Outdoor SPORTS tournament")
	assert.True(t, category.outdoor)
	assert.True(t, category.sports)

	category = classifyEventType("banquet")
	assert.False(t, category.outdoor)
	assert.False(t, category.sports)
}

func TestRiskLevelNeverRegresses(t *testing.T) {
	signalSets := []riskSignals{
		{},
		{hasStrongWind: true},
		{hasStrongWind: true, hasExtremeTemp: true},
		{hasRain: true, hasStrongWind: true, hasExtremeTemp: true},
	}
	category := eventCategory{outdoor: true}

	previous := entity.RiskLow
	for i, signals := range signalSets {
		level, _, _ := classifyEventRisk(category, 100, signals)
		assert.Equal(t, level, previous.Escalate(level), fmt.Sprintf("set %d regressed", i))
		previous = level
	}
}
