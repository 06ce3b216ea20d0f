package weather

import (
	"fmt"
	"strings"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	eventDateLayout = "2006-01-02"

	defaultAttendeeCount = 100

	strongWindThreshold  = 10.0 // m/s
	extremeHeatThreshold = 35.0 // °C
	extremeColdThreshold = 0.0  // °C
)

// eventCategory captures the loose substring-based event typing carried over
// from the caller contract: event types are free text inspected for
// "outdoor" and "sports". Scoring only reads this struct, so a structured
// category can replace the detection without touching the rules.
type eventCategory struct {
	outdoor bool
	sports  bool
}

func classifyEventType(eventType string) eventCategory {
	lower := strings.ToLower(eventType)
	return eventCategory{
		outdoor: strings.Contains(lower, "outdoor"),
		sports:  strings.Contains(lower, "sports"),
	}
}

// riskSignals are the boolean weather signals derived from the event day's
// forecast samples.
type riskSignals struct {
	hasRain        bool
	hasStrongWind  bool
	hasExtremeTemp bool
}

// AssessEventRisk validates the query, picks the in-horizon or long-range
// branch, and returns a three-level risk rating with rationale and
// recommended mitigations.
func (uc *weatherUseCase) AssessEventRisk(query model.EventRiskQueryDTO) (*entity.WeatherRisk, error) {
	if query.Location == "" || query.EventDate == "" || query.EventType == "" {
		return nil, fmt.Errorf("%w: location, event_date and event_type are required", model.ErrInvalidParams)
	}

	eventDate, err := time.Parse(eventDateLayout, query.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be a calendar date (YYYY-MM-DD)", model.ErrInvalidParams)
	}

	attendees := query.AttendeeCount
	if attendees <= 0 {
		attendees = defaultAttendeeCount
	}

	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if eventDate.Before(today) {
		return nil, fmt.Errorf("%w: event_date %s is in the past", model.ErrInvalidParams, query.EventDate)
	}
	daysUntilEvent := int(eventDate.Sub(today).Hours()+23) / 24

	requestID := uuid.New().String()
	category := classifyEventType(query.EventType)

	var risk *entity.WeatherRisk
	if daysUntilEvent > maxForecastDays {
		// The event is beyond the forecast horizon; never inspect live data.
		risk = longRangeAdvisory(query, category, daysUntilEvent)
	} else {
		risk, err = uc.assessFromForecast(query, category, attendees, eventDate)
		if err != nil {
			return nil, err
		}
	}

	log.Info("Assessed weather risk",
		zap.String("request_id", requestID),
		zap.String("location", query.Location),
		zap.String("event_date", query.EventDate),
		zap.String("event_type", query.EventType),
		zap.Int("days_until_event", daysUntilEvent),
		zap.String("risk_level", string(risk.RiskLevel)),
	)
	return risk, nil
}

// assessFromForecast handles the in-horizon branch: fetch the full forecast,
// keep the event day's samples, derive signals and classify.
func (uc *weatherUseCase) assessFromForecast(query model.EventRiskQueryDTO, category eventCategory, attendees int, eventDate time.Time) (*entity.WeatherRisk, error) {
	coords, err := uc.apiGateway.GeocodeCity(query.Location)
	if err != nil {
		return nil, err
	}

	samples, err := uc.apiGateway.GetForecastSamples(coords.Lat, coords.Lon, maxForecastDays*samplesPerDay)
	if err != nil {
		return nil, err
	}

	dateKey := eventDate.Format(eventDateLayout)
	var daySamples []entity.ForecastSample
	for _, sample := range samples {
		if sample.Date == dateKey {
			daySamples = append(daySamples, sample)
		}
	}
	if len(daySamples) == 0 {
		return nil, fmt.Errorf("%w: no forecast data for event date", model.ErrUpstream)
	}

	signals := deriveRiskSignals(daySamples)
	level, factors, recommendations := classifyEventRisk(category, attendees, signals)

	return &entity.WeatherRisk{
		RiskLevel:       level,
		Description:     riskDescription(query, factors),
		Recommendations: recommendations,
	}, nil
}

func deriveRiskSignals(samples []entity.ForecastSample) riskSignals {
	var signals riskSignals
	for _, sample := range samples {
		if sample.ConditionMain == "Rain" || sample.ConditionMain == "Thunderstorm" {
			signals.hasRain = true
		}
		if sample.WindSpeed > strongWindThreshold {
			signals.hasStrongWind = true
		}
		if sample.Temperature > extremeHeatThreshold || sample.Temperature < extremeColdThreshold {
			signals.hasExtremeTemp = true
		}
	}
	return signals
}

// classifyEventRisk applies the risk rules in fixed order. The level starts
// low and only ever escalates; the sports check runs last and can override a
// lower level but never reduce one.
func classifyEventRisk(category eventCategory, attendees int, signals riskSignals) (entity.RiskLevel, []string, []string) {
	level := entity.RiskLow
	var factors []string
	var recommendations []string

	if category.outdoor {
		if signals.hasRain {
			level = level.Escalate(entity.RiskHigh)
			factors = append(factors, "Precipitation forecast")
			recommendations = append(recommendations,
				"Arrange covered areas or an indoor alternative",
				"Communicate a cancellation/postponement policy in advance",
			)
		}
		if signals.hasStrongWind {
			if level == entity.RiskLow {
				level = entity.RiskMedium
			} else {
				level = entity.RiskHigh
			}
			factors = append(factors, "Strong winds forecast")
			recommendations = append(recommendations,
				"Secure temporary structures and decorations",
				"Prepare a wind management plan",
			)
		}
		if signals.hasExtremeTemp {
			if level == entity.RiskLow {
				level = entity.RiskMedium
			} else {
				level = entity.RiskHigh
			}
			factors = append(factors, "Extreme temperature forecast")
			recommendations = append(recommendations,
				"Provide heating or cooling stations",
				"Remind attendees to stay hydrated",
			)
		}
	} else if signals.hasRain && attendees > 500 {
		level = level.Escalate(entity.RiskMedium)
		factors = append(factors, "Rain may affect attendee arrival and departure")
		recommendations = append(recommendations,
			"Provide covered entry and exit points",
			"Plan transportation for wet conditions",
		)
	}

	if category.sports && (signals.hasRain || signals.hasStrongWind) {
		level = entity.RiskHigh
		factors = append(factors, "Weather may impact player performance and safety")
		recommendations = append(recommendations,
			"Define safe-play criteria with officials in advance",
			"Schedule buffer time for weather delays",
		)
	}

	recommendations = append(recommendations,
		"Monitor weather forecasts as the event approaches",
		"Communicate weather expectations to attendees",
	)

	if len(factors) == 0 {
		factors = append(factors, "No significant weather risks identified")
	}

	return level, factors, recommendations
}

// longRangeAdvisory produces the fixed medium-risk advisory for events beyond
// the forecast horizon.
func longRangeAdvisory(query model.EventRiskQueryDTO, category eventCategory, daysUntilEvent int) *entity.WeatherRisk {
	recommendations := []string{
		"Monitor weather forecasts as the event approaches",
		"Develop contingency plans for adverse weather",
		"Consider weather insurance for the event",
		"Plan for seasonal weather norms at the venue",
	}
	if category.outdoor {
		recommendations = append(recommendations,
			"Identify an indoor backup option",
			"Prepare for typical seasonal conditions",
		)
	}

	factor := fmt.Sprintf("Event is %d days out, beyond the %d-day forecast horizon", daysUntilEvent, maxForecastDays)
	return &entity.WeatherRisk{
		RiskLevel:       entity.RiskMedium,
		Description:     riskDescription(query, []string{factor}),
		Recommendations: recommendations,
	}
}

// riskDescription formats the single-sentence rationale embedding event type,
// location, date and the recorded factors.
func riskDescription(query model.EventRiskQueryDTO, factors []string) string {
	return fmt.Sprintf("Weather risk assessment for %s at %s on %s: %s",
		query.EventType, query.Location, query.EventDate, strings.Join(factors, ", "))
}
