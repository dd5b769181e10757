package types

// ThemeMode selects the visual theme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// TemperatureUnit is the unit used to display temperatures.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "celsius"
	UnitFahrenheit TemperatureUnit = "fahrenheit"
)

// SpeedUnit is the unit used to display wind speeds.
type SpeedUnit string

const (
	SpeedKMH   SpeedUnit = "kmh"
	SpeedMPH   SpeedUnit = "mph"
	SpeedMS    SpeedUnit = "ms"
	SpeedKnots SpeedUnit = "kn"
)

// PressureUnit is the unit used to display barometric pressure.
type PressureUnit string

const (
	PressureHPA  PressureUnit = "hpa"
	PressureMB   PressureUnit = "mb"
	PressureInHg PressureUnit = "inhg"
	PressureMmHg PressureUnit = "mmhg"
)

// PrecipitationUnit is the unit used to display precipitation amounts.
type PrecipitationUnit string

const (
	PrecipMM   PrecipitationUnit = "mm"
	PrecipInch PrecipitationUnit = "inch"
)

// DistanceUnit is the unit used to display distances such as visibility.
type DistanceUnit string

const (
	DistanceKM DistanceUnit = "km"
	DistanceMI DistanceUnit = "mi"
)

// TimeFormat is the user's hour-cycle preference. "auto" defers to the
// locale signals at render time.
type TimeFormat string

const (
	TimeFormatAuto TimeFormat = "auto"
	TimeFormat12H  TimeFormat = "12h"
	TimeFormat24H  TimeFormat = "24h"
)

// AppSettings is the flat record of unit and format preferences.
type AppSettings struct {
	Theme                         ThemeMode         `json:"theme"`
	TemperatureUnit               TemperatureUnit   `json:"temperatureUnit"`
	SpeedUnit                     SpeedUnit         `json:"speedUnit"`
	PressureUnit                  PressureUnit      `json:"pressureUnit"`
	PrecipitationUnit             PrecipitationUnit `json:"precipitationUnit"`
	DistanceUnit                  DistanceUnit      `json:"distanceUnit"`
	TimeFormat                    TimeFormat        `json:"timeFormat"`
	DefaultForecastSource         string            `json:"defaultForecastSource"`
	RefreshIntervalMinutes        int               `json:"refreshInterval"`
	ShowNotifications             bool              `json:"showNotifications"`
	AlertNotifications            bool              `json:"alertNotifications"`
	PrecipitationNotifications    bool              `json:"precipitationNotifications"`
	TodayForecastNotifications    bool              `json:"todayForecastNotifications"`
	TomorrowForecastNotifications bool              `json:"tomorrowForecastNotifications"`
}

// DefaultSettings returns the compiled default preferences.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:                  ThemeSystem,
		TemperatureUnit:        UnitFahrenheit,
		SpeedUnit:              SpeedMPH,
		PressureUnit:           PressureInHg,
		PrecipitationUnit:      PrecipInch,
		DistanceUnit:           DistanceMI,
		TimeFormat:             TimeFormatAuto,
		DefaultForecastSource:  "nws",
		RefreshIntervalMinutes: 60,
		ShowNotifications:      true,
		AlertNotifications:     true,
	}
}

// SettingsPatch is a partial AppSettings update. Nil fields are left
// untouched by Apply; the merge is shallow and field-by-field.
type SettingsPatch struct {
	Theme                         *ThemeMode
	TemperatureUnit               *TemperatureUnit
	SpeedUnit                     *SpeedUnit
	PressureUnit                  *PressureUnit
	PrecipitationUnit             *PrecipitationUnit
	DistanceUnit                  *DistanceUnit
	TimeFormat                    *TimeFormat
	DefaultForecastSource         *string
	RefreshIntervalMinutes        *int
	ShowNotifications             *bool
	AlertNotifications            *bool
	PrecipitationNotifications    *bool
	TodayForecastNotifications    *bool
	TomorrowForecastNotifications *bool
}

// Apply merges the patch into s, overriding only the fields that are set.
func (p SettingsPatch) Apply(s *AppSettings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.TemperatureUnit != nil {
		s.TemperatureUnit = *p.TemperatureUnit
	}
	if p.SpeedUnit != nil {
		s.SpeedUnit = *p.SpeedUnit
	}
	if p.PressureUnit != nil {
		s.PressureUnit = *p.PressureUnit
	}
	if p.PrecipitationUnit != nil {
		s.PrecipitationUnit = *p.PrecipitationUnit
	}
	if p.DistanceUnit != nil {
		s.DistanceUnit = *p.DistanceUnit
	}
	if p.TimeFormat != nil {
		s.TimeFormat = *p.TimeFormat
	}
	if p.DefaultForecastSource != nil {
		s.DefaultForecastSource = *p.DefaultForecastSource
	}
	if p.RefreshIntervalMinutes != nil {
		s.RefreshIntervalMinutes = *p.RefreshIntervalMinutes
	}
	if p.ShowNotifications != nil {
		s.ShowNotifications = *p.ShowNotifications
	}
	if p.AlertNotifications != nil {
		s.AlertNotifications = *p.AlertNotifications
	}
	if p.PrecipitationNotifications != nil {
		s.PrecipitationNotifications = *p.PrecipitationNotifications
	}
	if p.TodayForecastNotifications != nil {
		s.TodayForecastNotifications = *p.TodayForecastNotifications
	}
	if p.TomorrowForecastNotifications != nil {
		s.TomorrowForecastNotifications = *p.TomorrowForecastNotifications
	}
}
