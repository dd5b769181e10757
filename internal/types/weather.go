package types

import (
	"strings"
	"time"
)

// WeatherCode is a provider-normalized condition token, stored in the
// canonical uppercase form (e.g. "PARTLY_CLOUDY").
type WeatherCode string

const (
	CodeClear        WeatherCode = "CLEAR"
	CodePartlyCloudy WeatherCode = "PARTLY_CLOUDY"
	CodeCloudy       WeatherCode = "CLOUDY"
	CodeFog          WeatherCode = "FOG"
	CodeDrizzle      WeatherCode = "DRIZZLE"
	CodeRain         WeatherCode = "RAIN"
	CodeFreezingRain WeatherCode = "FREEZING_RAIN"
	CodeSnow         WeatherCode = "SNOW"
	CodeHail         WeatherCode = "HAIL"
	CodeThunderstorm WeatherCode = "THUNDERSTORM"
	CodeWind         WeatherCode = "WIND"
)

// Normalized returns the lowercase snake-case form used on external
// surfaces such as the widget payload.
func (c WeatherCode) Normalized() string {
	return strings.ToLower(string(c))
}

// Temperature is an observed or forecast temperature. Apparent is the
// feels-like value when the provider supplies one.
type Temperature struct {
	Temperature float64  `json:"temperature"`
	Apparent    *float64 `json:"apparent,omitempty"`
}

// Wind describes wind conditions.
type Wind struct {
	Speed     *float64 `json:"speed,omitempty"`
	Direction *float64 `json:"direction,omitempty"`
	Gusts     *float64 `json:"gusts,omitempty"`
}

// Probability is a 0-100 chance, split by type where the provider allows.
type Probability struct {
	Total         *float64 `json:"total,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
}

// AirQuality carries the normalized pollution indices for a period.
type AirQuality struct {
	AQI  *float64 `json:"aqi,omitempty"`
	PM25 *float64 `json:"pm25,omitempty"`
	PM10 *float64 `json:"pm10,omitempty"`
}

// SunEvents holds the sunrise/sunset instants for a day.
type SunEvents struct {
	Rise *time.Time `json:"rise,omitempty"`
	Set  *time.Time `json:"set,omitempty"`
}

// MoonEvents holds the moonrise/moonset instants and phase for a day.
type MoonEvents struct {
	Rise  *time.Time `json:"rise,omitempty"`
	Set   *time.Time `json:"set,omitempty"`
	Phase *float64   `json:"phase,omitempty"`
}

// CurrentConditions is the point-in-time observation block.
type CurrentConditions struct {
	Temperature      *Temperature `json:"temperature,omitempty"`
	WeatherCode      WeatherCode  `json:"weatherCode,omitempty"`
	WeatherText      string       `json:"weatherText,omitempty"`
	RelativeHumidity *float64     `json:"relativeHumidity,omitempty"`
	Wind             *Wind        `json:"wind,omitempty"`
	Pressure         *float64     `json:"pressure,omitempty"`
	UVIndex          *float64     `json:"uvIndex,omitempty"`
	Visibility       *float64     `json:"visibility,omitempty"`
	DewPoint         *float64     `json:"dewPoint,omitempty"`
	CloudCover       *float64     `json:"cloudCover,omitempty"`
	IsDaylight       *bool        `json:"isDaylight,omitempty"`
}

// HalfDay is the day or night portion of a daily forecast entry.
type HalfDay struct {
	Temperature              *Temperature `json:"temperature,omitempty"`
	WeatherCode              WeatherCode  `json:"weatherCode,omitempty"`
	WeatherText              string       `json:"weatherText,omitempty"`
	PrecipitationProbability *Probability `json:"precipitationProbability,omitempty"`
}

// DailyForecast is one calendar day of forecast data.
type DailyForecast struct {
	Date       time.Time   `json:"date"`
	Day        *HalfDay    `json:"day,omitempty"`
	Night      *HalfDay    `json:"night,omitempty"`
	Sun        *SunEvents  `json:"sun,omitempty"`
	Moon       *MoonEvents `json:"moon,omitempty"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
}

// HourlyForecast is one hour of forecast data.
type HourlyForecast struct {
	Date                     time.Time    `json:"date"`
	Temperature              *Temperature `json:"temperature,omitempty"`
	WeatherCode              WeatherCode  `json:"weatherCode,omitempty"`
	Wind                     *Wind        `json:"wind,omitempty"`
	PrecipitationProbability *Probability `json:"precipitationProbability,omitempty"`
	IsDaylight               *bool        `json:"isDaylight,omitempty"`
	AirQuality               *AirQuality  `json:"airQuality,omitempty"`
}

// Alert is an active weather advisory.
type Alert struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Severity    string     `json:"severity,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
}

// WeatherBase carries snapshot-level metadata.
type WeatherBase struct {
	RefreshTime time.Time `json:"refreshTime"`
}

// WeatherSnapshot is a complete forecast for one location. It is owned by
// its Location and replaced wholesale on refresh; forecast slices are never
// merged incrementally.
type WeatherSnapshot struct {
	Base           WeatherBase        `json:"base"`
	Current        *CurrentConditions `json:"current,omitempty"`
	DailyForecast  []DailyForecast    `json:"dailyForecast"`
	HourlyForecast []HourlyForecast   `json:"hourlyForecast"`
	Alerts         []Alert            `json:"alerts,omitempty"`
}
