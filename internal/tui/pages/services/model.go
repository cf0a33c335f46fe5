// Package services lists the managed service offerings.
package services

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/catalog"
	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
	"github.com/alexisbeaulieu97/techconsult/internal/visibility"
)

const (
	sectionHero      = "hero"
	sectionOfferings = "offerings"
	sectionCTA       = "cta"

	cardWidth = 48
)

// Model is the managed services page.
type Model struct {
	offerings []catalog.Offering

	width    int
	height   int
	ready    bool
	viewport viewport.Model
	regions  map[string]visibility.Region

	// One focus slot per offering plus the consultation button.
	focus layout.FocusRing
	keys  layout.NavKeys
}

var _ router.Page = (*Model)(nil)

// New builds the page.
func New() *Model {
	offerings := catalog.Offerings()
	return &Model{
		offerings: offerings,
		focus:     layout.NewFocusRing(len(offerings) + 1),
		keys:      layout.DefaultNavKeys(),
	}
}

// Init implements router.Page.
func (m *Model) Init() tea.Cmd { return nil }

// Capturing implements router.Page.
func (m *Model) Capturing() bool { return false }

// KeyBindings implements router.Page.
func (m *Model) KeyBindings() []key.Binding { return m.keys.Bindings() }

// Unmount implements router.Page.
func (m *Model) Unmount() {}

// Update implements router.Page.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = msg.Width, msg.Height
		}
		m.refresh()
		return nil

	case router.ThemeChangedMsg:
		m.refresh()
		return nil

	case tea.KeyMsg:
		if !m.ready {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			m.focus.Next()
			m.scrollToFocus()
			return nil
		case key.Matches(msg, m.keys.Prev):
			m.focus.Prev()
			m.scrollToFocus()
			return nil
		case key.Matches(msg, m.keys.Activate):
			if m.focus.Index() >= 0 {
				return router.Navigate(router.RequestForm)
			}
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// View implements router.Page.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	doc := layout.Stack([]layout.Block{
		{ID: sectionHero, View: components.Hero(catalog.ServicesHero.Title, catalog.ServicesHero.Subtitle, m.width)},
		{ID: sectionOfferings, View: m.renderOfferings()},
		{ID: sectionCTA, View: m.renderCTA()},
	}, 1)
	m.regions = doc.Regions
	m.viewport.SetContent(doc.Content)
}

func (m *Model) scrollToFocus() {
	section := sectionOfferings
	if m.focus.Index() == len(m.offerings) {
		section = sectionCTA
	}
	m.refresh()
	m.viewport.SetYOffset(layout.ScrollInto(m.regions[section], m.viewport.YOffset, m.viewport.Height))
}

func (m *Model) renderOfferings() string {
	cols := components.Columns(m.width, cardWidth, 2)
	width := max(m.width/cols, 24)

	cards := make([]string, 0, len(m.offerings))
	for i, o := range m.offerings {
		cards = append(cards, components.NewCard(components.CardData{
			Title:       o.Title,
			Description: o.Description,
			ListTitle:   "Key Features:",
			Items:       o.Features,
			Action:      "Request Service",
		}).WithWidth(width).WithActionFocus(m.focus.Focused(i)).View())
	}
	return components.Centered(components.Grid(cards, cols), m.width)
}

func (m *Model) renderCTA() string {
	style := components.Style(lipgloss.NewStyle(),
		components.Background(components.PaletteRaised),
		components.PaddingY(components.SpacingSizeExtraSmall),
	).Align(lipgloss.Center)
	if m.width > 0 {
		style = style.Width(m.width)
	}

	button := components.NewButton(catalog.ServicesCTA.Action, components.ButtonOptions{
		Focus: m.focus.Focused(len(m.offerings)),
	}).View()

	return style.Render(strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(catalog.ServicesCTA.Title),
		catalog.ServicesCTA.Body,
		"",
		button,
	}, "\n"))
}
