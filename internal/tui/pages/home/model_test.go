package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
)

func sized(t *testing.T, width, height int) *Model {
	t.Helper()
	m := New(1, Options{})
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.True(t, m.ready)
	return m
}

func pageDown(m *Model, times int) []tea.Cmd {
	var cmds []tea.Cmd
	for i := 0; i < times; i++ {
		if cmd := m.Update(tea.KeyMsg{Type: tea.KeyPgDown}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func TestLowerSectionsStartHidden(t *testing.T) {
	m := sized(t, 100, 5)

	assert.Equal(t, phaseShown, m.phases[sectionHero])
	for _, id := range fadeSections {
		assert.Equal(t, phaseHidden, m.phases[id], id)
	}
	assert.ElementsMatch(t, fadeSections, m.observer.Pending())

	full := ansi.Strip(layout.Stack(m.blocks(), 1).Content)
	assert.Contains(t, full, "Transform Your Business")
	assert.NotContains(t, full, "Our Services")
	assert.NotContains(t, full, "Why Choose Us")
}

func TestScrollingRevealsEachSectionOnce(t *testing.T) {
	m := sized(t, 100, 5)

	cmds := pageDown(m, 40)
	assert.NotEmpty(t, cmds)
	for _, id := range fadeSections {
		assert.Equal(t, phaseFading, m.phases[id], id)
	}
	assert.Empty(t, m.observer.Pending())

	for _, id := range fadeSections {
		m.Update(fadeDoneMsg{mountID: 1, section: id})
		assert.Equal(t, phaseShown, m.phases[id], id)
	}

	m.viewport.GotoTop()
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Empty(t, pageDown(m, 40), "revealed sections never fade again")
	for _, id := range fadeSections {
		assert.Equal(t, phaseShown, m.phases[id], id)
	}
}

func TestRevealedContentIsRendered(t *testing.T) {
	m := sized(t, 100, 200)

	for _, id := range fadeSections {
		require.Equal(t, phaseFading, m.phases[id], "a tall window shows everything at once")
		m.Update(fadeDoneMsg{mountID: 1, section: id})
	}

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Our Services")
	assert.Contains(t, view, "Cloud Management")
	assert.Contains(t, view, "Ready to Optimize Your IT Infrastructure?")
	assert.Contains(t, view, "Why Choose Us")
	assert.Contains(t, view, "Scalable Solutions")
}

func TestFadeFromAnotherMountIsIgnored(t *testing.T) {
	m := sized(t, 100, 200)

	m.Update(fadeDoneMsg{mountID: 99, section: sectionServices})
	assert.Equal(t, phaseFading, m.phases[sectionServices])
}

func TestStartScrollsToFeatures(t *testing.T) {
	m := sized(t, 100, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus.Index())

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, phaseFading, m.phases[sectionFeatures])
	assert.Greater(t, m.viewport.YOffset, 0)
}

func TestLearnMoreNavigatesToServices(t *testing.T) {
	m := sized(t, 100, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Learn More", m.actions[m.focus.Index()].label)
	assert.NotEqual(t, phaseHidden, m.phases[sectionServices], "focusing an action scrolls it into view")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{To: router.Services}, cmd())
}

func TestRequestAnalysisNavigatesToForm(t *testing.T) {
	m := sized(t, 100, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Request AI Analysis", m.actions[m.focus.Index()].label)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{To: router.RequestForm}, cmd())
}

func TestEnterWithoutFocusDoesNothing(t *testing.T) {
	m := sized(t, 100, 5)
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestUnmountStopsReveals(t *testing.T) {
	m := sized(t, 100, 5)
	m.Unmount()

	assert.True(t, m.observer.Disconnected())
	assert.Empty(t, pageDown(m, 40))
	assert.Equal(t, phaseHidden, m.phases[sectionFeatures])
}

func TestKeysBeforeSizeAreIgnored(t *testing.T) {
	m := New(1, Options{})
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Empty(t, m.View())
}

func TestThemeChangeRerenders(t *testing.T) {
	m := sized(t, 80, 20)
	before := ansi.Strip(m.View())
	m.Update(router.ThemeChangedMsg{Dark: true})
	assert.Equal(t, before, ansi.Strip(m.View()))
	assert.False(t, m.Capturing())
	assert.NotEmpty(t, m.KeyBindings())
}
