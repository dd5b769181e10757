// Package widget projects the selected location's weather into the reduced
// payload consumed by the home-screen widget and writes it to the shared
// cross-process slot.
package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tempestweather/tempest-core/internal/storage"
	"github.com/tempestweather/tempest-core/internal/types"
)

// Fixed identity of the shared slot. The widget process reads the same
// namespace/key pair.
const (
	SlotNamespace = "group.com.tempestweather.shared"
	SlotKey       = "weatherData"
)

// Payload size caps: the widget renders at most a week of days and a day of
// hours.
const (
	maxDailyEntries  = 7
	maxHourlyEntries = 24
)

// CurrentPayload is the reduced current-conditions block.
type CurrentPayload struct {
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feelsLike"`
	WeatherCode *string  `json:"weatherCode"`
	WeatherText *string  `json:"weatherText"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windSpeed"`
	IsDaylight  *bool    `json:"isDaylight"`
}

// DailyPayload is one reduced daily forecast entry.
type DailyPayload struct {
	Date             string   `json:"date"`
	DayTemp          *float64 `json:"dayTemp"`
	NightTemp        *float64 `json:"nightTemp"`
	DayWeatherCode   *string  `json:"dayWeatherCode"`
	NightWeatherCode *string  `json:"nightWeatherCode"`
	DayWeatherText   *string  `json:"dayWeatherText"`
	PrecipProb       *float64 `json:"precipProbability"`
}

// HourlyPayload is one reduced hourly forecast entry.
type HourlyPayload struct {
	Date        string   `json:"date"`
	Temperature *float64 `json:"temperature"`
	WeatherCode *string  `json:"weatherCode"`
	PrecipProb  *float64 `json:"precipProbability"`
	IsDaylight  *bool    `json:"isDaylight"`
}

// Payload is the full projection handed to the widget. It has no lifecycle
// of its own: every trigger recomputes it from scratch and overwrites the
// slot wholesale.
type Payload struct {
	Current         *CurrentPayload `json:"current"`
	Daily           []DailyPayload  `json:"daily"`
	Hourly          []HourlyPayload `json:"hourly"`
	LocationName    string          `json:"locationName"`
	TemperatureUnit string          `json:"temperatureUnit"`
}

// Projector writes widget payloads to a shared slot. A nil slot means the
// host has no shared surface and every update is a no-op.
type Projector struct {
	slot storage.Slot
}

// NewProjector creates a Projector. slot may be nil.
func NewProjector(slot storage.Slot) *Projector {
	return &Projector{slot: slot}
}

// Update projects the location and overwrites the shared slot. It is a
// no-op when there is no shared surface or the location has no weather.
func (p *Projector) Update(ctx context.Context, loc types.Location, settings types.AppSettings) error {
	if p.slot == nil {
		return nil
	}
	if loc.Weather == nil {
		return nil
	}

	blob, err := json.Marshal(BuildPayload(loc, settings))
	if err != nil {
		return fmt.Errorf("failed to serialize widget payload: %w", err)
	}
	if err := p.slot.Write(ctx, SlotNamespace, SlotKey, blob); err != nil {
		return fmt.Errorf("failed to write widget payload: %w", err)
	}
	return nil
}

// BuildPayload maps a location with weather plus settings to the reduced
// widget payload. Pure; callers guarantee loc.Weather is non-nil.
func BuildPayload(loc types.Location, settings types.AppSettings) Payload {
	w := loc.Weather

	unit := string(settings.TemperatureUnit)
	if unit == "" {
		unit = string(types.UnitFahrenheit)
	}

	out := Payload{
		Daily:           make([]DailyPayload, 0, maxDailyEntries),
		Hourly:          make([]HourlyPayload, 0, maxHourlyEntries),
		LocationName:    loc.City,
		TemperatureUnit: unit,
	}

	if w.Current != nil {
		cur := CurrentPayload{
			WeatherCode: normalizeCode(w.Current.WeatherCode),
			Humidity:    w.Current.RelativeHumidity,
			IsDaylight:  w.Current.IsDaylight,
		}
		if w.Current.Temperature != nil {
			t := w.Current.Temperature.Temperature
			cur.Temperature = &t
			cur.FeelsLike = w.Current.Temperature.Apparent
		}
		if w.Current.WeatherText != "" {
			text := w.Current.WeatherText
			cur.WeatherText = &text
		}
		if w.Current.Wind != nil {
			cur.WindSpeed = w.Current.Wind.Speed
		}
		out.Current = &cur
	}

	for _, day := range w.DailyForecast {
		if len(out.Daily) == maxDailyEntries {
			break
		}
		entry := DailyPayload{Date: day.Date.Format("2006-01-02")}
		if day.Day != nil {
			entry.DayWeatherCode = normalizeCode(day.Day.WeatherCode)
			if day.Day.Temperature != nil {
				t := day.Day.Temperature.Temperature
				entry.DayTemp = &t
			}
			if day.Day.WeatherText != "" {
				text := day.Day.WeatherText
				entry.DayWeatherText = &text
			}
			if day.Day.PrecipitationProbability != nil {
				entry.PrecipProb = day.Day.PrecipitationProbability.Total
			}
		}
		if day.Night != nil {
			entry.NightWeatherCode = normalizeCode(day.Night.WeatherCode)
			if day.Night.Temperature != nil {
				t := day.Night.Temperature.Temperature
				entry.NightTemp = &t
			}
		}
		out.Daily = append(out.Daily, entry)
	}

	for _, hour := range w.HourlyForecast {
		if len(out.Hourly) == maxHourlyEntries {
			break
		}
		entry := HourlyPayload{
			Date:        hour.Date.Format(time.RFC3339),
			WeatherCode: normalizeCode(hour.WeatherCode),
			IsDaylight:  hour.IsDaylight,
		}
		if hour.Temperature != nil {
			t := hour.Temperature.Temperature
			entry.Temperature = &t
		}
		if hour.PrecipitationProbability != nil {
			entry.PrecipProb = hour.PrecipitationProbability.Total
		}
		out.Hourly = append(out.Hourly, entry)
	}

	return out
}

func normalizeCode(code types.WeatherCode) *string {
	if code == "" {
		return nil
	}
	normalized := code.Normalized()
	return &normalized
}
