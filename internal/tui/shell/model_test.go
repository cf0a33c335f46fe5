package shell

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/infrastructure/preferences"
	"github.com/alexisbeaulieu97/techconsult/internal/logger"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
)

type fakePage struct {
	route     router.Route
	mountID   int
	capture   bool
	panicView bool
	unmounted bool
	received  []tea.Msg
}

func (p *fakePage) Init() tea.Cmd { return nil }

func (p *fakePage) Update(msg tea.Msg) tea.Cmd {
	p.received = append(p.received, msg)
	return nil
}

func (p *fakePage) View() string {
	if p.panicView {
		panic("boom")
	}
	return "page:" + string(p.route)
}

func (p *fakePage) Capturing() bool            { return p.capture }
func (p *fakePage) KeyBindings() []key.Binding { return nil }
func (p *fakePage) Unmount()                   { p.unmounted = true }

type harness struct {
	shell   *Model
	mounted []*fakePage
	store   *preferences.MemoryStore
	applied []theme.Theme
	logs    *logger.Buffer
}

func newHarness(t *testing.T, initial router.Route) *harness {
	t.Helper()
	h := &harness{store: preferences.NewMemoryStore(nil), logs: logger.NewBuffer(0)}

	pages := make(map[router.Route]router.Factory)
	for _, r := range router.Routes() {
		r := r
		pages[r] = func(mountID int) router.Page {
			p := &fakePage{route: r, mountID: mountID}
			h.mounted = append(h.mounted, p)
			return p
		}
	}

	svc := theme.NewStoreService(h.store, func(th theme.Theme) { h.applied = append(h.applied, th) })
	m, err := New(Options{Theme: svc, Pages: pages, Initial: initial, Logger: h.logs.Logger()})
	require.NoError(t, err)
	h.shell = m
	h.shell.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func (h *harness) current() *fakePage {
	return h.mounted[len(h.mounted)-1]
}

func (h *harness) key(s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := h.shell.Update(msg)
	return cmd
}

func TestNewRequiresEveryPage(t *testing.T) {
	_, err := New(Options{Theme: theme.NewStoreService(preferences.NewMemoryStore(nil), nil)})
	assert.Error(t, err)
}

func TestMountsInitialRoute(t *testing.T) {
	h := newHarness(t, router.Services)

	assert.Equal(t, router.Services, h.shell.Route())
	require.Len(t, h.mounted, 1)

	page := h.current()
	require.NotEmpty(t, page.received)
	size, ok := page.received[len(page.received)-1].(tea.WindowSizeMsg)
	require.True(t, ok)
	assert.Equal(t, 100, size.Width)
	assert.Less(t, size.Height, 30, "the page gets what is left between nav and footer")
}

func TestUnknownInitialRouteFallsBackHome(t *testing.T) {
	h := newHarness(t, router.Route("/nope"))
	assert.Equal(t, router.Home, h.shell.Route())
}

func TestNumberKeysMountFreshPages(t *testing.T) {
	h := newHarness(t, router.Home)
	first := h.current()

	h.key("3")
	assert.Equal(t, router.RequestForm, h.shell.Route())
	assert.True(t, first.unmounted)
	assert.Equal(t, 2, h.current().mountID)

	h.key("3")
	assert.Len(t, h.mounted, 2, "re-selecting the current route keeps the page")

	h.shell.Update(router.NavigateMsg{To: router.Services})
	assert.Equal(t, router.Services, h.shell.Route())
	assert.Equal(t, 3, h.current().mountID)
}

func TestGlobalKeysSuspendedWhileCapturing(t *testing.T) {
	h := newHarness(t, router.RequestForm)
	h.current().capture = true

	assert.Nil(t, h.key("q"))
	h.key("1")
	h.key("t")
	assert.Equal(t, router.RequestForm, h.shell.Route())
	assert.Equal(t, theme.Light, h.shell.Theme())

	page := h.current()
	last := page.received[len(page.received)-1]
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, last)

	cmd := h.key("ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t, router.Home)
	cmd := h.key("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestThemeTogglePersistsAndNotifiesPage(t *testing.T) {
	h := newHarness(t, router.Home)
	assert.Contains(t, ansi.Strip(h.shell.View()), "Dark Mode")

	h.key("t")

	assert.Equal(t, theme.Dark, h.shell.Theme())
	stored, ok := h.store.Get(theme.StorageKey)
	require.True(t, ok)
	assert.Equal(t, "dark", stored)
	assert.Equal(t, []theme.Theme{theme.Light, theme.Dark}, h.applied)

	page := h.current()
	assert.Contains(t, page.received, router.ThemeChangedMsg{Dark: true})
	assert.Contains(t, ansi.Strip(h.shell.View()), "Light Mode")
}

func TestThemeToggleFailureChangesNothing(t *testing.T) {
	h := newHarness(t, router.Home)
	h.store.SetErr = errors.New("disk full")

	cmd := h.key("t")
	assert.NotNil(t, cmd)

	assert.Equal(t, theme.Light, h.shell.Theme())
	assert.Equal(t, []theme.Theme{theme.Light}, h.applied)
	_, ok := h.store.Get(theme.StorageKey)
	assert.False(t, ok)
	assert.Contains(t, h.logs.Messages(), "theme toggle failed")

	view := ansi.Strip(h.shell.View())
	assert.Contains(t, view, "Could not save theme preference")
	assert.Contains(t, view, "Dark Mode")

	h.shell.Update(noticeExpiredMsg{id: h.shell.noticeID})
	assert.NotContains(t, ansi.Strip(h.shell.View()), "Could not save theme preference")
}

func TestPanickingPageShowsFallback(t *testing.T) {
	h := newHarness(t, router.Home)
	h.current().panicView = true

	view := ansi.Strip(h.shell.View())
	assert.Contains(t, view, fallbackTitle)
	assert.Contains(t, view, "IT Tech Consultant")
	assert.Contains(t, view, "All rights reserved.")
	assert.Error(t, h.shell.pageErr)
	assert.Contains(t, h.logs.Messages(), "page crashed")

	h.key("2")
	assert.Equal(t, router.Services, h.shell.Route())
	assert.Contains(t, ansi.Strip(h.shell.View()), "page:/managed-services")

	h.current().panicView = true
	h.shell.View()
	h.key("2")
	assert.Len(t, h.mounted, 3, "re-selecting a crashed route remounts it")
}

func TestNavHighlightsEveryRoute(t *testing.T) {
	h := newHarness(t, router.Home)
	view := ansi.Strip(h.shell.View())

	for _, r := range router.Routes() {
		assert.Contains(t, view, r.Label())
	}
	assert.Contains(t, view, "page:/")
}

func TestSmallTerminalWarning(t *testing.T) {
	h := newHarness(t, router.Home)
	h.shell.Update(tea.WindowSizeMsg{Width: 50, Height: 15})

	assert.Contains(t, ansi.Strip(h.shell.View()), "Terminal too small (50x15)")
}

func TestHelpToggleResizesPage(t *testing.T) {
	h := newHarness(t, router.Home)
	page := h.current()
	before := page.received[len(page.received)-1].(tea.WindowSizeMsg)

	h.key("?")
	after := page.received[len(page.received)-1].(tea.WindowSizeMsg)
	assert.Less(t, after.Height, before.Height)
}

func TestBrandUsesAccentColour(t *testing.T) {
	assert.Equal(t, components.GetTheme().Palette.Accent.Base, brandStyle().GetForeground())
	assert.NotEqual(t, components.GetTheme().Palette.Primary.Base, brandStyle().GetForeground())
}
