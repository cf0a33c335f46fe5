package shell

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.tooSmall() {
			m.logger.Debug(m.ctx, "terminal below minimum size", "width", msg.Width, "height", msg.Height)
		}
		return m, m.resizePage()

	case router.NavigateMsg:
		return m, m.navigate(msg.To)

	case noticeExpiredMsg:
		if msg.id != m.noticeID || m.notice == "" {
			return m, nil
		}
		m.notice = ""
		return m, m.resizePage()

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	if !m.capturing() {
		if route, ok := m.keys.routeFor(msg); ok {
			return m.navigate(route)
		}
		switch {
		case key.Matches(msg, m.keys.Theme):
			return m.toggleTheme()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m.resizePage()
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		}
	}

	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	return m.safeCall("update", func() tea.Cmd { return m.page.Update(msg) })
}

// navigate mounts a fresh page for to. Re-selecting the mounted route is a
// no-op unless the page crashed.
func (m *Model) navigate(to router.Route) tea.Cmd {
	if to.Index() < 0 {
		m.logger.Warn(m.ctx, "ignoring navigation to unknown route", "route", string(to))
		return nil
	}
	if to == m.route && m.pageErr == nil {
		return nil
	}

	resize := m.mount(to)
	return tea.Batch(m.safeCall("init", m.page.Init), resize)
}

func (m *Model) toggleTheme() tea.Cmd {
	next, err := theme.Toggle(m.theme)
	if err != nil {
		m.logger.Error(m.ctx, "theme toggle failed", "error", err)
		notice := m.setNotice(fmt.Sprintf("Could not save theme preference; staying on %s mode.", next))
		return tea.Batch(notice, m.resizePage())
	}

	m.logger.Info(m.ctx, "theme changed", "theme", next.String())
	return m.forward(router.ThemeChangedMsg{Dark: next.IsDark()})
}

// capturing asks the page whether it owns the keyboard. A crashed page
// never does.
func (m *Model) capturing() (captured bool) {
	if m.pageErr != nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			m.fail("capturing", r)
			captured = false
		}
	}()
	return m.page.Capturing()
}

func (m *Model) pageBindings() (bindings []key.Binding) {
	if m.pageErr != nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.fail("bindings", r)
			bindings = nil
		}
	}()
	return m.page.KeyBindings()
}
