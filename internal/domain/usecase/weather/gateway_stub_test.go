package weather

import (
	"weather-api/internal/domain/entity"
)

// fakeGateway is a scriptable WeatherGateway recording upstream call counts.
type fakeGateway struct {
	coords        entity.Coordinates
	geocodeErr    error
	samples       []entity.ForecastSample
	samplesErr    error
	conditions    entity.CurrentConditions
	conditionsErr error

	geocodeCalls    int
	forecastCalls   int
	currentCalls    int
	lastSampleCount int
}

func (f *fakeGateway) GeocodeCity(city string) (entity.Coordinates, error) {
	f.geocodeCalls++
	if f.geocodeErr != nil {
		return entity.Coordinates{}, f.geocodeErr
	}
	return f.coords, nil
}

func (f *fakeGateway) GetForecastSamples(lat, lon float64, count int) ([]entity.ForecastSample, error) {
	f.forecastCalls++
	f.lastSampleCount = count
	if f.samplesErr != nil {
		return nil, f.samplesErr
	}
	return f.samples, nil
}

func (f *fakeGateway) GetCurrentConditions(lat, lon float64) (entity.CurrentConditions, error) {
	f.currentCalls++
	if f.conditionsErr != nil {
		return entity.CurrentConditions{}, f.conditionsErr
	}
	return f.conditions, nil
}

func sampleOn(date string, temp, wind, pop float64, main, description string) entity.ForecastSample {
	return entity.ForecastSample{
		Date:          date,
		Temperature:   temp,
		WindSpeed:     wind,
		Pop:           pop,
		ConditionMain: main,
		Condition:     description,
	}
}

// calmDay builds a full day of unremarkable samples.
func calmDay(date string) []entity.ForecastSample {
	samples := make([]entity.ForecastSample, 0, 8)
	for i := 0; i < 8; i++ {
		samples = append(samples, sampleOn(date, 22.0, 3.0, 0, "Clear", "clear sky"))
	}
	return samples
}
