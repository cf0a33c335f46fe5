package home

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/catalog"
	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
)

const cardWidth = 34

// View implements router.Page.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) blocks() []layout.Block {
	raw := []layout.Block{
		{ID: sectionHero, View: m.renderHero()},
		{ID: sectionServices, View: m.renderServices()},
		{ID: sectionCTA, View: m.renderCTA()},
		{ID: sectionFeatures, View: m.renderFeatures()},
	}

	for i, b := range raw {
		switch m.phases[b.ID] {
		case phaseHidden:
			raw[i].View = components.Blank(b.View)
		case phaseFading:
			raw[i].View = components.Fade(b.View)
		}
	}
	return raw
}

func (m *Model) focused(section string, slot int) bool {
	idx := m.focus.Index()
	if idx < 0 {
		return false
	}
	a := m.actions[idx]
	return a.section == section && a.slot == slot
}

func (m *Model) renderHero() string {
	hero := components.Hero(catalog.HomeHero.Title, catalog.HomeHero.Subtitle, m.width)
	start := components.NewButton("Start", components.ButtonOptions{
		Variant: components.ButtonVariantSecondary,
		Focus:   m.focused(sectionHero, 0),
	}).View()
	return hero + "\n\n" + components.Centered(start, m.width)
}

func (m *Model) renderServices() string {
	highlights := catalog.Highlights()
	cols := components.Columns(m.width, cardWidth, len(highlights))
	width := max(m.width/cols, 20)

	cards := make([]string, 0, len(highlights))
	for i, h := range highlights {
		cards = append(cards, components.NewCard(components.CardData{
			Icon:        h.Icon,
			Title:       h.Title,
			Description: h.Description,
			Action:      "Learn More",
		}).WithWidth(width).WithActionFocus(m.focused(sectionServices, i)).View())
	}

	return components.SectionTitle("Our Services", m.width) + "\n\n" +
		components.Centered(components.Grid(cards, cols), m.width)
}

func (m *Model) renderCTA() string {
	style := components.Style(lipgloss.NewStyle(),
		components.Background(components.PaletteRaised),
		components.PaddingY(components.SpacingSizeExtraSmall),
	).Align(lipgloss.Center)
	if m.width > 0 {
		style = style.Width(m.width)
	}

	button := components.NewButton(catalog.HomeCTA.Action, components.ButtonOptions{
		Focus: m.focused(sectionCTA, 0),
	}).View()

	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(catalog.HomeCTA.Title),
		catalog.HomeCTA.Body,
		"",
		button,
	}, "\n")
	return style.Render(body)
}

func (m *Model) renderFeatures() string {
	features := catalog.Features()
	cols := components.Columns(m.width, cardWidth-8, len(features))
	width := max(m.width/cols, 20)

	cards := make([]string, 0, len(features))
	for _, f := range features {
		cards = append(cards, components.NewCard(components.CardData{
			Title:       f.Title,
			Description: f.Description,
		}).WithWidth(width).View())
	}

	return components.SectionTitle("Why Choose Us", m.width) + "\n\n" +
		components.Centered(components.Grid(cards, cols), m.width)
}
