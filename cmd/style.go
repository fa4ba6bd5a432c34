package cmd

import "charm.land/lipgloss/v2"

// Output palette.
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorGood    = lipgloss.Color("#22C55E")
	colorWarn    = lipgloss.Color("#F97316")
	colorBad     = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleGood  = lipgloss.NewStyle().Foreground(colorGood)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
	styleBad   = lipgloss.NewStyle().Foreground(colorBad)
)

// scoreStyle picks a color band for a percentage.
func scoreStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 80:
		return styleGood
	case pct >= 50:
		return styleWarn
	default:
		return styleBad
	}
}
