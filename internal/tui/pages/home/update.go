package home

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
	"github.com/alexisbeaulieu97/techconsult/internal/visibility"
)

// Update implements router.Page.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.reveal()

	case router.ThemeChangedMsg:
		m.refresh()
		return nil

	case fadeDoneMsg:
		if msg.mountID != m.mountID {
			return nil
		}
		if m.phases[msg.section] == phaseFading {
			m.phases[msg.section] = phaseShown
			m.refresh()
		}
		return nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if !m.ready {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.focus.Next()
		m.scrollToFocus()
		return m.reveal()

	case key.Matches(msg, m.keys.Prev):
		m.focus.Prev()
		m.scrollToFocus()
		return m.reveal()

	case key.Matches(msg, m.keys.Activate):
		if idx := m.focus.Index(); idx >= 0 {
			return m.actions[idx].run(m)
		}
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return tea.Batch(cmd, m.reveal())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.refresh()
}

// refresh re-renders the document and moves pending watches to the new
// section positions.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	doc := layout.Stack(m.blocks(), 1)
	m.regions = doc.Regions
	m.viewport.SetContent(doc.Content)

	for _, id := range m.observer.Pending() {
		m.observer.Observe(id, m.regions[id])
	}
}

// reveal checks the watched sections against the visible window and starts
// a fade for each one that just came into view.
func (m *Model) reveal() tea.Cmd {
	if !m.ready {
		return nil
	}

	fired := m.observer.Check(visibility.Window{Top: m.viewport.YOffset, Height: m.viewport.Height})
	if len(fired) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(fired))
	for _, id := range fired {
		m.phases[id] = phaseFading
		cmds = append(cmds, fadeCmd(m.mountID, id))
	}
	m.refresh()
	return tea.Batch(cmds...)
}

func (m *Model) scrollToFocus() {
	idx := m.focus.Index()
	if idx < 0 {
		return
	}
	region := m.regions[m.actions[idx].section]
	m.viewport.SetYOffset(layout.ScrollInto(region, m.viewport.YOffset, m.viewport.Height))
	m.refresh()
}

func (m *Model) scrollToFeatures() tea.Cmd {
	m.viewport.SetYOffset(m.regions[sectionFeatures].Top)
	return m.reveal()
}
