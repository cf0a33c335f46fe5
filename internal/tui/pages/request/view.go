package request

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/catalog"
	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
)

const (
	blockHero    = "hero"
	blockStatus  = "status"
	blockSubmit  = "submit"
	blockSuccess = "success"
	blockSteps   = "steps"

	submitLabel     = "Submit Request"
	submittingLabel = "Submitting..."
	anotherLabel    = "Submit Another Request"

	successTitle   = "Request Submitted Successfully!"
	successMessage = "Our team will analyze your requirements and get back to you shortly."
)

func fieldBlockID(field lead.Field) string {
	return "field-" + field.Key()
}

// View implements router.Page.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) blocks() []layout.Block {
	blocks := []layout.Block{
		{ID: blockHero, View: components.Hero(catalog.RequestHero.Title, catalog.RequestHero.Subtitle, m.width)},
	}

	status := m.form.Status()
	if !status.ShowsForm() {
		blocks = append(blocks, layout.Block{ID: blockSuccess, View: m.renderSuccess(status.Ack)})
		return append(blocks, layout.Block{ID: blockSteps, View: m.renderSteps()})
	}

	if status.Kind == lead.StatusFailed {
		alert := components.ErrorAlert(status.Message).WithWidth(m.cardWidth()).View()
		blocks = append(blocks, layout.Block{ID: blockStatus, View: m.centre(alert)})
	}

	for i, field := range fieldOrder {
		blocks = append(blocks, layout.Block{ID: fieldBlockID(field), View: m.centre(m.renderField(i, field))})
	}

	blocks = append(blocks,
		layout.Block{ID: blockSubmit, View: m.centre(m.renderSubmit())},
		layout.Block{ID: blockSteps, View: m.renderSteps()},
	)
	return blocks
}

func (m *Model) renderField(index int, field lead.Field) string {
	focused := m.focus == index

	label := components.TypographyStyle(components.TypographyVariantEmphasis).Render(fieldLabels[field])

	var input string
	switch field {
	case lead.FieldServiceType:
		input = m.selector.view(m.fieldWidth())
	case lead.FieldDescription:
		input = m.description.View()
	default:
		input = m.inputs[field].View()
	}

	slot := components.PaletteNeutral
	if focused {
		slot = components.PalettePrimary
	}
	box := components.Style(lipgloss.NewStyle(),
		components.Border(components.BorderVariantRounded),
		components.BorderColour(slot),
		components.PaddingX(components.SpacingSizeExtraSmall),
	).Width(m.fieldWidth() + 2).Render(input)

	rows := []string{label, box}
	if m.hint != "" && m.hintField == field {
		hint := components.Style(lipgloss.NewStyle(), components.Foreground(components.PaletteWarning)).
			Render("⚠ " + m.hint)
		rows = append(rows, hint)
	}
	return lipgloss.NewStyle().Width(m.cardWidth()).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderSubmit() string {
	var button string
	if m.form.Status().Kind == lead.StatusSubmitting {
		button = m.spinner.View() + " " + components.NewButton(submittingLabel, components.ButtonOptions{Disabled: true}).View()
	} else {
		button = components.NewButton(submitLabel, components.ButtonOptions{Focus: m.focus == focusSubmit}).View()
	}
	return lipgloss.NewStyle().Width(m.cardWidth()).Render(button)
}

func (m *Model) renderSuccess(ack lead.Ack) string {
	message := successMessage
	if ack.Reference != "" {
		message += "\n\n" + components.TypographyStyle(components.TypographyVariantMuted).
			Render(fmt.Sprintf("Reference: %s", ack.Reference))
	}
	alert := components.SuccessAlert(successTitle, message).WithWidth(m.cardWidth()).View()
	button := components.NewButton(anotherLabel, components.ButtonOptions{Focus: true}).View()
	return m.centre(lipgloss.JoinVertical(lipgloss.Left, alert, "", button))
}

func (m *Model) renderSteps() string {
	steps := catalog.Steps()
	cols := components.Columns(m.width, 32, len(steps))
	width := max(m.width/cols, 24)

	cards := make([]string, 0, len(steps))
	for _, s := range steps {
		cards = append(cards, components.NewCard(components.CardData{
			Icon:        fmt.Sprintf("%d.", s.Number),
			Title:       s.Title,
			Description: s.Description,
		}).WithWidth(width).View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.SectionTitle("How It Works", m.width),
		"",
		components.Centered(components.Grid(cards, cols), m.width),
	)
}

func (m *Model) centre(s string) string {
	return components.Centered(s, m.width)
}

func (m *Model) cardWidth() int {
	return m.fieldWidth() + 4
}

// fieldWidth is the text width of an input: the page width less the field
// frame, capped so lines stay readable.
func (m *Model) fieldWidth() int {
	return max(min(m.width-6, maxInputWidth), 20)
}
