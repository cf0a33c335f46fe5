package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/components"
)

func brandStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.Foreground(components.PaletteAccent)).
		Bold(true).
		PaddingRight(2)
}

func linkStyle(active bool) lipgloss.Style {
	if active {
		return components.Style(lipgloss.NewStyle(),
			components.Foreground(components.PalettePrimary),
			components.PaddingX(components.SpacingSizeExtraSmall),
		).Bold(true).Underline(true)
	}
	return components.Style(lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantBody),
		components.PaddingX(components.SpacingSizeExtraSmall),
	)
}

func navStyle(width int) lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.BorderColour(components.PaletteNeutral)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Width(width)
}

func bannerStyle(slot components.PaletteSlot, width int) lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.Foreground(slot)).
		Bold(true).
		Width(width)
}

func footerStyle(width int) lipgloss.Style {
	return components.Style(lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantMuted),
		components.BorderColour(components.PaletteNeutral),
	).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Align(lipgloss.Center).
		Width(width)
}
