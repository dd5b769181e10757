// Package timefmt resolves the 12h/24h convention from the user's setting
// and ambient locale signals, and renders timestamps with it. Locale
// signals are injected as narrow query functions; nothing here reads global
// state.
package timefmt

import (
	"strings"
	"time"

	"github.com/tempestweather/tempest-core/internal/types"
)

// HourCycle is the resolved time display convention.
type HourCycle string

const (
	Hour12 HourCycle = "12h"
	Hour24 HourCycle = "24h"
)

// Placeholder is rendered for an absent instant.
const Placeholder = "--:--"

// LocaleSignals are the ambient inputs to hour-cycle detection. Any field
// may be nil; a nil or failing signal simply yields no answer and the
// cascade moves on.
type LocaleSignals struct {
	// HourCycle returns the locale formatter's resolved hour cycle, one
	// of "h11", "h12", "h23", "h24".
	HourCycle func() (string, error)

	// FormatReference renders a fixed 13:00 local reference instant with
	// a generic numeric time formatter.
	FormatReference func() (string, error)

	// LocaleID returns the platform locale identifier, e.g. "en-US".
	LocaleID func() (string, error)
}

var meridiemMarkers = []string{"AM", "PM", "am", "pm", "a.m.", "p.m."}

// Known 12-hour locales checked when the formatter gives no answer.
var twelveHourLocalePrefixes = []string{"en-us", "en-ca", "en-au", "en-ph"}

// ResolveHourCycle resolves the hour cycle. A non-auto setting wins
// outright; otherwise the locale signals are consulted in order and the
// first definitive answer is returned, defaulting to 12h.
func ResolveHourCycle(setting types.TimeFormat, signals LocaleSignals) HourCycle {
	switch setting {
	case types.TimeFormat12H:
		return Hour12
	case types.TimeFormat24H:
		return Hour24
	}

	if signals.HourCycle != nil {
		if cycle, err := signals.HourCycle(); err == nil {
			switch cycle {
			case "h11", "h12":
				return Hour12
			case "h23", "h24":
				return Hour24
			}
		}
	}

	if signals.FormatReference != nil {
		if rendered, err := signals.FormatReference(); err == nil {
			for _, marker := range meridiemMarkers {
				if strings.Contains(rendered, marker) {
					return Hour12
				}
			}
			if strings.Contains(rendered, "13") {
				return Hour24
			}
		}
	}

	if signals.LocaleID != nil {
		if id, err := signals.LocaleID(); err == nil {
			locale := strings.ToLower(id)
			for _, prefix := range twelveHourLocalePrefixes {
				if strings.HasPrefix(locale, prefix) {
					return Hour12
				}
			}
			if locale == "en" {
				return Hour12
			}
		}
	}

	return Hour12
}

// Options control time rendering.
type Options struct {
	ShowMinutes bool
	Lowercase   bool
}

// DefaultOptions renders minutes and keeps the meridiem marker uppercase.
var DefaultOptions = Options{ShowMinutes: true}

// FormatTime renders the instant with the given hour cycle. A nil instant
// renders the fixed placeholder.
func FormatTime(t *time.Time, cycle HourCycle, opts Options) string {
	if t == nil {
		return Placeholder
	}

	var layout string
	if cycle == Hour24 {
		if opts.ShowMinutes {
			layout = "15:04"
		} else {
			layout = "15"
		}
	} else {
		if opts.ShowMinutes {
			layout = "3:04 PM"
		} else {
			layout = "3PM"
		}
	}

	rendered := t.Format(layout)
	if opts.Lowercase {
		rendered = strings.ToLower(rendered)
	}
	return rendered
}

// FormatHourlyLabel renders the label for an hourly forecast bucket: the
// literal "Now" for the current hour regardless of the cycle, otherwise the
// time with minutes shown.
func FormatHourlyLabel(t time.Time, isCurrentHour bool, cycle HourCycle) string {
	if isCurrentHour {
		return "Now"
	}
	return FormatTime(&t, cycle, DefaultOptions)
}
