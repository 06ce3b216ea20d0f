package external

// GeoDirectResponse is one candidate from the geocoding-by-name endpoint.
type GeoDirectResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// WeatherCondition is the condition element shared by the forecast and
// current-weather responses.
type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// ForecastItem is one three-hour sample in the forecast response.
type ForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop   float64 `json:"pop"`
	DtTxt string  `json:"dt_txt"`
}

// ForecastResponse is the multi-day forecast-by-coordinates response
// (3-hour resolution, up to 5 days).
type ForecastResponse struct {
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []ForecastItem `json:"list"`
}

// CurrentWeatherResponse is the current-conditions-by-coordinates response.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// APIErrorResponse is the provider's error envelope.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
