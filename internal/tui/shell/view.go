package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/catalog"
	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
)

const (
	fallbackTitle = "Something went wrong"
	fallbackBody  = "This page could not be displayed. Choose another page from the navigation above."
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	height := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	body := lipgloss.NewStyle().
		Height(height).
		MaxHeight(height).
		Render(m.renderBody())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) bodyHeight() int {
	return max(m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderFooter()), 1)
}

func (m *Model) renderHeader() string {
	rows := []string{m.renderNav()}

	if m.tooSmall() {
		rows = append(rows, bannerStyle(components.PaletteWarning, m.width).Render(
			fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d", m.width, m.height, minWidth, minHeight),
		))
	}
	if m.notice != "" {
		rows = append(rows, bannerStyle(components.PaletteDanger, m.width).Render(m.notice))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderNav() string {
	links := make([]string, 0, len(router.Routes()))
	for i, r := range router.Routes() {
		links = append(links, linkStyle(r == m.route).Render(fmt.Sprintf("%d %s", i+1, r.Label())))
	}

	left := brandStyle().Render(catalog.Brand) + strings.Join(links, "")
	toggle := components.NewButton(m.theme.Get().ToggleLabel(), components.ButtonOptions{
		Variant: components.ButtonVariantSecondary,
	}).View()

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(toggle), 1)
	return navStyle(m.width).Render(left + strings.Repeat(" ", gap) + toggle)
}

func (m *Model) renderFooter() string {
	keys := m.keys
	keys.page = m.pageBindings()

	return lipgloss.JoinVertical(lipgloss.Left,
		footerStyle(m.width).Render(catalog.Copyright),
		m.help.View(keys),
	)
}

func (m *Model) renderBody() string {
	if m.pageErr == nil {
		if view, ok := m.safeView(); ok {
			return view
		}
	}

	card := components.NewCard(components.CardData{
		Icon:        "⚠",
		Title:       fallbackTitle,
		Description: fallbackBody,
	}).WithWidth(min(m.width, 60)).View()
	return components.Centered("\n"+card, m.width)
}

func (m *Model) safeView() (view string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.fail("view", r)
			view, ok = "", false
		}
	}()
	return m.page.View(), true
}
