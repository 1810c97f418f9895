package colormap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SwatchString renders cmap as width terminal cells, each one a space with the
// entry's color as background. Terminals without color support get plain
// spaces.
func SwatchString(cmap Colormap, width int) string {
	cells := cmap.Resample(width)
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return b.String()
}
