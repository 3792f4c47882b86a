package models

import "time"

// WeatherLocation identifies the place a weather report describes.
type WeatherLocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentConditions is the present-moment slice of a weather report.
// Temperatures are degrees Celsius, wind speed m/s, visibility km.
type CurrentConditions struct {
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection int     `json:"wind_direction"`
	Visibility    float64 `json:"visibility"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

// ForecastEntry is one 3-hour step of the 5-day forecast.
type ForecastEntry struct {
	Date        time.Time `json:"date"`
	TempMin     int       `json:"temp_min"`
	TempMax     int       `json:"temp_max"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// FarmingAdvice is derived from current conditions and tells the farmer what
// the weather means for field work.
type FarmingAdvice struct {
	CropSuitability       string `json:"crop_suitability"`
	IrrigationNeeded      bool   `json:"irrigation_needed"`
	PestRisk              string `json:"pest_risk"`
	HarvestRecommendation string `json:"harvest_recommendation"`
}

// WeatherReport is the full weather payload shown to the user: location,
// current conditions, the near-term forecast and derived farming advice.
// Source records where the data came from ("openweathermap" or "cached").
type WeatherReport struct {
	Location  WeatherLocation   `json:"location"`
	Current   CurrentConditions `json:"current"`
	Condition string            `json:"condition"`
	Forecast  []ForecastEntry   `json:"forecast"`
	Advice    FarmingAdvice     `json:"farming_advice"`
	Source    string            `json:"source"`
	Timestamp time.Time         `json:"timestamp"`
}
