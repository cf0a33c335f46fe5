package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour of an alert.
type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
)

// AlertOptions configures an alert.
type AlertOptions struct {
	Variant AlertVariant
	Title   string
	Width   int
}

// Alert is a bordered message block.
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates an alert.
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// WithWidth sets the outer width.
func (a *Alert) WithWidth(width int) *Alert {
	a.options.Width = width
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	slot := alertSlot(a.options.Variant)
	style := Style(lipgloss.NewStyle(),
		Border(BorderVariantNormal),
		BorderColour(slot),
		Foreground(slot),
		PaddingX(SpacingSizeExtraSmall),
	)
	if a.options.Width > 0 {
		style = style.Width(a.options.Width - 2)
	}

	var content []string
	if a.options.Title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	return style.Render(strings.Join(content, "\n"))
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantError:
		return PaletteDanger
	default:
		return PalettePrimary
	}
}

// ErrorAlert creates an untitled error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError})
}

// SuccessAlert creates a success alert.
func SuccessAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Title: title})
}
