package timefmt

import (
	"errors"
	"testing"
	"time"

	"github.com/tempestweather/tempest-core/internal/types"
)

func fixedSignal(v string) func() (string, error) {
	return func() (string, error) { return v, nil }
}

func failingSignal() (string, error) {
	return "", errors.New("signal unavailable")
}

func TestResolveHourCycle(t *testing.T) {
	tests := []struct {
		name    string
		setting types.TimeFormat
		signals LocaleSignals
		want    HourCycle
	}{
		{
			name:    "explicit 12h wins",
			setting: types.TimeFormat12H,
			signals: LocaleSignals{HourCycle: fixedSignal("h23")},
			want:    Hour12,
		},
		{
			name:    "explicit 24h wins",
			setting: types.TimeFormat24H,
			signals: LocaleSignals{HourCycle: fixedSignal("h12")},
			want:    Hour24,
		},
		{
			name:    "auto uses formatter hour cycle h23",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{HourCycle: fixedSignal("h23")},
			want:    Hour24,
		},
		{
			name:    "auto uses formatter hour cycle h11",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{HourCycle: fixedSignal("h11")},
			want:    Hour12,
		},
		{
			name:    "unknown hour cycle falls through to reference render",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{
				HourCycle:       fixedSignal("weird"),
				FormatReference: fixedSignal("13:00"),
			},
			want: Hour24,
		},
		{
			name:    "meridiem marker in reference means 12h",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{FormatReference: fixedSignal("1:00 PM")},
			want:    Hour12,
		},
		{
			name:    "dotted lowercase meridiem recognized",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{FormatReference: fixedSignal("1.00 p.m.")},
			want:    Hour12,
		},
		{
			name:    "13 in reference means 24h",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{FormatReference: fixedSignal("13.00")},
			want:    Hour24,
		},
		{
			name:    "failing signals fall through to locale id",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{
				HourCycle:       failingSignal,
				FormatReference: failingSignal,
				LocaleID:        fixedSignal("en-US"),
			},
			want: Hour12,
		},
		{
			name:    "bare en locale means 12h",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{LocaleID: fixedSignal("en")},
			want:    Hour12,
		},
		{
			name:    "non-12h locale falls to default",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{LocaleID: fixedSignal("de-DE")},
			want:    Hour12, // default when nothing is definitive
		},
		{
			name:    "no signals at all defaults to 12h",
			setting: types.TimeFormatAuto,
			signals: LocaleSignals{},
			want:    Hour12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveHourCycle(tt.setting, tt.signals); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	onePM := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	halfPast9 := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		t     *time.Time
		cycle HourCycle
		opts  Options
		want  string
	}{
		{"nil instant renders placeholder", nil, Hour12, DefaultOptions, "--:--"},
		{"24h with minutes", &onePM, Hour24, DefaultOptions, "13:00"},
		{"12h with minutes", &onePM, Hour12, DefaultOptions, "1:00 PM"},
		{"24h hour only", &onePM, Hour24, Options{}, "13"},
		{"12h hour only", &onePM, Hour12, Options{}, "1PM"},
		{"12h lowercase meridiem", &onePM, Hour12, Options{ShowMinutes: true, Lowercase: true}, "1:00 pm"},
		{"morning 12h", &halfPast9, Hour12, DefaultOptions, "9:30 AM"},
		{"morning 24h", &halfPast9, Hour24, DefaultOptions, "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.t, tt.cycle, tt.opts); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatHourlyLabel(t *testing.T) {
	ts := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	if got := FormatHourlyLabel(ts, true, Hour24); got != "Now" {
		t.Errorf(`current hour should render "Now" regardless of cycle, got %q`, got)
	}
	if got := FormatHourlyLabel(ts, false, Hour24); got != "13:00" {
		t.Errorf("expected delegated 24h rendering, got %q", got)
	}
	if got := FormatHourlyLabel(ts, false, Hour12); got != "1:00 PM" {
		t.Errorf("expected delegated 12h rendering, got %q", got)
	}
}

func TestSystemSignalsLocaleID(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")

	id, err := SystemSignals().LocaleID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "en-US" {
		t.Errorf("expected normalized en-US, got %q", id)
	}
}
