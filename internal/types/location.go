package types

// Location is a saved place the user tracks weather for. Identity is ID;
// the Weather field is session-only and never persisted.
type Location struct {
	ID                string           `json:"id"`
	Latitude          float64          `json:"latitude"`
	Longitude         float64          `json:"longitude"`
	Timezone          string           `json:"timezone"`
	City              string           `json:"city"`
	Province          string           `json:"province,omitempty"`
	Country           string           `json:"country,omitempty"`
	CountryCode       string           `json:"countryCode,omitempty"`
	IsCurrentPosition bool             `json:"isCurrentPosition"`
	ForecastSource    string           `json:"forecastSource"`
	Weather           *WeatherSnapshot `json:"weather,omitempty"`
}

// LocationPatch is a partial Location update. Nil fields are left untouched
// by Apply; the merge is shallow and field-by-field. Weather is not part of
// the patch: it is replaced wholesale through its own operation.
type LocationPatch struct {
	Latitude          *float64
	Longitude         *float64
	Timezone          *string
	City              *string
	Province          *string
	Country           *string
	CountryCode       *string
	IsCurrentPosition *bool
	ForecastSource    *string
}

// Apply merges the patch into l, overriding only the fields that are set.
func (p LocationPatch) Apply(l *Location) {
	if p.Latitude != nil {
		l.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = *p.Longitude
	}
	if p.Timezone != nil {
		l.Timezone = *p.Timezone
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.Province != nil {
		l.Province = *p.Province
	}
	if p.Country != nil {
		l.Country = *p.Country
	}
	if p.CountryCode != nil {
		l.CountryCode = *p.CountryCode
	}
	if p.IsCurrentPosition != nil {
		l.IsCurrentPosition = *p.IsCurrentPosition
	}
	if p.ForecastSource != nil {
		l.ForecastSource = *p.ForecastSource
	}
}
