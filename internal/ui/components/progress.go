package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/budai/internal/ui/theme"
)

// ScoreBar displays a labelled horizontal bar for a value in [Min, Max].
type ScoreBar struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Width int
}

// NewScoreBar creates a bar for a 5C score on the 1-5 scale.
func NewScoreBar(label string, score float64, width int) ScoreBar {
	return ScoreBar{Label: label, Value: score, Min: 1, Max: 5, Width: width}
}

// NewXPBar creates a bar for experience gathered inside the current level.
func NewXPBar(into, next, width int) ScoreBar {
	return ScoreBar{Label: "经验", Value: float64(into), Max: float64(next), Width: width}
}

// Fraction returns how full the bar is, clamped to [0,1].
func (b ScoreBar) Fraction() float64 {
	span := b.Max - b.Min
	if span <= 0 {
		return 0
	}
	f := (b.Value - b.Min) / span
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// View renders the bar.
func (b ScoreBar) View() string {
	var result string
	if b.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	value := fmt.Sprintf("  %.1f", b.Value)
	if b.Min == 0 {
		value = fmt.Sprintf("  %d/%d", int(b.Value), int(b.Max))
	}

	barWidth := b.Width - lipgloss.Width(result) - lipgloss.Width(value)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * b.Fraction())

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(value)
	return result
}
