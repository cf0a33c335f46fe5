package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Hero renders a full-width banner with a bold title and a subtitle.
func Hero(title, subtitle string, width int) string {
	style := Style(lipgloss.NewStyle(), Background(PalettePrimary), PaddingY(SpacingSizeExtraSmall), PaddingX(SpacingSizeSmall)).
		Align(lipgloss.Center)
	if width > 0 {
		style = style.Width(width)
	}

	titleLine := lipgloss.NewStyle().Bold(true).Render(title)
	return style.Render(titleLine + "\n\n" + subtitle)
}

// SectionTitle renders a centred section heading.
func SectionTitle(text string, width int) string {
	style := Style(lipgloss.NewStyle(), Typography(TypographyVariantHeading)).Align(lipgloss.Center)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// Centered centres every line of s in width columns.
func Centered(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Grid lays blocks out in rows of up to cols columns.
func Grid(blocks []string, cols int) string {
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(blocks); start += cols {
		end := min(start+cols, len(blocks))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns picks how many cards of cardWidth fit into width, capped at max.
func Columns(width, cardWidth, maxCols int) int {
	if cardWidth <= 0 {
		return 1
	}
	cols := width / cardWidth
	return max(1, min(cols, maxCols))
}

// Fade renders s dimmed and without its own colours, used while a section
// is appearing.
func Fade(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	faint := Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted)).Faint(true)
	for i, line := range lines {
		lines[i] = faint.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Blank returns an empty block with the same footprint as s.
func Blank(s string) string {
	height := lipgloss.Height(s)
	if height <= 1 {
		return ""
	}
	return strings.Repeat("\n", height-1)
}
