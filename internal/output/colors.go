package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Label   *color.Color
	Metric  *color.Color
	Value   *color.Color
	Unit    *color.Color
	Success *color.Color
	Error   *color.Color
	Warning *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:   color.New(color.FgCyan, color.Bold),
		Metric:  color.New(color.FgYellow),
		Value:   color.New(color.FgWhite, color.Bold),
		Unit:    color.New(color.FgWhite),
		Success: color.New(color.FgGreen),
		Error:   color.New(color.FgRed),
		Warning: color.New(color.FgYellow, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Label.DisableColor()
	scheme.Metric.DisableColor()
	scheme.Value.DisableColor()
	scheme.Unit.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Warning.DisableColor()

	return scheme
}
