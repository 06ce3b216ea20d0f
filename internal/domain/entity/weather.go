package entity

import "time"

// Coordinates is a geocoded location. Label carries the provider-normalized
// place name.
type Coordinates struct {
	Label string
	Lat   float64
	Lon   float64
}

// CurrentConditions is the normalized current weather reading from the
// provider.
type CurrentConditions struct {
	Name        string
	Temperature float64
	Conditions  string
	Humidity    int
	WindSpeed   float64
}

// WeatherData is the current weather snapshot returned to callers and held in
// the current-weather cache.
type WeatherData struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	Conditions  string    `json:"conditions"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Timestamp   time.Time `json:"timestamp"`
}
