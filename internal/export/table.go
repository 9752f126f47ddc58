package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00afff"))
	gasGiantRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	habitableRow = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true)
	plainRow     = lipgloss.NewStyle()
)

// RenderTable formats records as a fixed-width, lipgloss-styled table:
// habitable planets highlighted green, gas giants amber.
func RenderTable(records []PlanetRecord) string {
	var b strings.Builder

	header := fmt.Sprintf("%-4s %-12s %-10s %-14s %-6s %-10s %-12s %s",
		"#", "axis (AU)", "ecc", "mass (Earth)", "giant", "habitable", "atmosphere", "uwp")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, r := range records {
		line := fmt.Sprintf("%-4d %-12.4f %-10.4f %-14.6g %-6t %-10t %-12s %s",
			r.Index, r.AxisAU, r.Eccentricity, r.MassEarth, r.IsGasGiant, r.Habitable, r.Atmosphere, r.UWP)

		style := plainRow
		switch {
		case r.Habitable:
			style = habitableRow
		case r.IsGasGiant:
			style = gasGiantRow
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
