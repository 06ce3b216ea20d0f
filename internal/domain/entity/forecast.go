package entity

// ForecastSample is one normalized three-hour forecast sample from the
// provider. Date is the calendar day of the sample in the provider's
// timezone, formatted as YYYY-MM-DD.
type ForecastSample struct {
	Date          string
	Temperature   float64 // °C
	WindSpeed     float64 // m/s
	Pop           float64 // probability of precipitation, 0..1
	ConditionMain string  // primary condition group, e.g. "Rain"
	Condition     string  // free-text description, e.g. "light rain"
}

// DailyForecast is the reduction of all intraday samples for one calendar day.
type DailyForecast struct {
	Date                     string  `json:"date"`
	TempMin                  float64 `json:"temp_min"`
	TempMax                  float64 `json:"temp_max"`
	Condition                string  `json:"condition"`
	PrecipitationProbability int     `json:"precipitation_probability"`
	WindSpeed                float64 `json:"wind_speed"`
}

// ForecastSummary is an ordered multi-day forecast for one location,
// chronological, at most five days. Immutable once produced.
type ForecastSummary struct {
	Location string          `json:"location"`
	Daily    []DailyForecast `json:"daily"`
}
