package renderer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GaugeWidth is the number of cells of a full bar.
const GaugeWidth = 40

// Gauge draws the horizontal result bar of a valid report: the filled part
// is BarWidth percent of width cells, in the border color of the band,
// followed by the signed rate.
// An invalid report has no gauge.
func Gauge(r *Report, width int) string {
	if !r.Valid {
		return ""
	}
	if width <= 0 {
		width = GaugeWidth
	}
	filled := int(math.Round(r.BarWidth / 100 * float64(width)))
	filled = min(max(filled, 0), width)

	style := r.Interpretation.Style
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Border))
	empty := lipgloss.NewStyle().Faint(true)
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.Border))

	return fill.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", width-filled)) +
		" " + label.Render(r.Signed)
}
