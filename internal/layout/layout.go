// Package layout maps live window metrics and the device class to the
// layout descriptor the presentation layer renders with.
package layout

// Descriptor describes how content should be laid out for the current
// window. MaxContentWidth of 0 means unconstrained (full width).
type Descriptor struct {
	ContentPadding  float64
	MaxContentWidth float64
	DetailColumns   int
	IsWideScreen    bool
	IsMultiColumn   bool
	IsDesktop       bool
	WindowWidth     float64
	WindowHeight    float64
}

// Resolve picks the layout for the given window. isDesktop is the static
// per-process device-class flag; width and height change on rotation or
// resize. The breakpoint table is ordered and the first match wins.
func Resolve(windowWidth, windowHeight float64, isDesktop bool) Descriptor {
	d := Descriptor{
		IsDesktop:     isDesktop,
		IsWideScreen:  isDesktop || windowWidth >= 600,
		IsMultiColumn: isDesktop || windowWidth >= 700,
		WindowWidth:   windowWidth,
		WindowHeight:  windowHeight,
	}

	switch {
	case isDesktop:
		d.ContentPadding = 32
		d.MaxContentWidth = 900
		d.DetailColumns = 4
	case windowWidth >= 1024:
		d.ContentPadding = 40
		d.MaxContentWidth = 800
		d.DetailColumns = 4
	case windowWidth >= 700:
		d.ContentPadding = 28
		d.MaxContentWidth = 700
		d.DetailColumns = 4
	case windowWidth >= 600:
		d.ContentPadding = 24
		d.MaxContentWidth = 600
		d.DetailColumns = 2
	default:
		d.ContentPadding = 16
		d.MaxContentWidth = 0
		d.DetailColumns = 2
	}

	return d
}
