package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the look of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantLink
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button is a single-line pressable label.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// View renders the button. Focused buttons get a leading marker so focus is
// visible without colour.
func (b *Button) View() string {
	label := b.label
	if b.options.Variant == ButtonVariantLink {
		label += " →"
	}

	marker := "  "
	if b.options.Focus && !b.options.Disabled {
		marker = Style(lipgloss.NewStyle(), Foreground(PalettePrimary)).Render("▸ ")
	}
	return marker + b.buildStyle().Render(label)
}

func (b *Button) buildStyle() lipgloss.Style {
	if b.options.Disabled {
		return Style(lipgloss.NewStyle(), Background(PaletteNeutral), PaddingX(SpacingSizeExtraSmall)).Faint(true)
	}

	var style lipgloss.Style
	switch b.options.Variant {
	case ButtonVariantSecondary:
		style = Style(lipgloss.NewStyle(), Background(PaletteRaised), Foreground(PalettePrimary), PaddingX(SpacingSizeExtraSmall))
	case ButtonVariantLink:
		style = Style(lipgloss.NewStyle(), Foreground(PalettePrimary))
	default:
		style = Style(lipgloss.NewStyle(), Background(PalettePrimary), PaddingX(SpacingSizeExtraSmall))
	}
	style = style.Bold(true)

	if b.options.Focus {
		if b.options.Variant == ButtonVariantLink {
			style = style.Underline(true)
		} else {
			style = style.Reverse(true)
		}
	}
	return style
}
