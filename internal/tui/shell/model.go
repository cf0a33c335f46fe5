// Package shell is the site frame: navigation, theme toggle, footer and the
// currently mounted page.
package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/logger"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/theme"
)

const (
	minWidth  = 60
	minHeight = 20

	noticeTTL = 4 * time.Second
)

// Options configures the shell.
type Options struct {
	Context context.Context
	Logger  ports.Logger
	Theme   theme.Service
	Pages   map[router.Route]router.Factory
	Initial router.Route
}

// Model is the root Bubbletea model.
type Model struct {
	ctx    context.Context
	logger ports.Logger
	theme  theme.Service
	pages  map[router.Route]router.Factory

	route   router.Route
	page    router.Page
	mountID int

	// set when the mounted page panicked; cleared on the next mount
	pageErr error

	notice   string
	noticeID int

	keys keyMap
	help help.Model

	width  int
	height int
}

type noticeExpiredMsg struct {
	id int
}

// New builds the shell and mounts the initial route.
func New(opts Options) (*Model, error) {
	if opts.Theme == nil {
		return nil, errors.New("shell: theme service is required")
	}
	for _, r := range router.Routes() {
		if opts.Pages[r] == nil {
			return nil, fmt.Errorf("shell: no page registered for %s", r)
		}
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	initial := opts.Initial
	if initial.Index() < 0 {
		initial = router.Default()
	}

	m := &Model{
		ctx:    ctx,
		logger: log.With("component", "shell"),
		theme:  opts.Theme,
		pages:  opts.Pages,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.mount(initial)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.safeCall("init", m.page.Init)
}

// Route is the mounted route.
func (m *Model) Route() router.Route {
	return m.route
}

// Page is the mounted page.
func (m *Model) Page() router.Page {
	return m.page
}

// Theme is the active theme.
func (m *Model) Theme() theme.Theme {
	return m.theme.Get()
}

// mount unmounts the current page and builds a fresh one for route.
func (m *Model) mount(route router.Route) tea.Cmd {
	if m.page != nil {
		m.page.Unmount()
	}

	m.mountID++
	m.route = route
	m.pageErr = nil
	m.page = m.pages[route](m.mountID)
	m.logger.Info(m.ctx, "page mounted", "route", string(route), "mount_id", m.mountID)

	return m.resizePage()
}

// resizePage tells the page how much room is left between nav and footer.
func (m *Model) resizePage() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	msg := tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()}
	return m.safeCall("resize", func() tea.Cmd { return m.page.Update(msg) })
}

// safeCall runs a page hook and turns a panic into the error fallback.
func (m *Model) safeCall(op string, fn func() tea.Cmd) (cmd tea.Cmd) {
	if m.pageErr != nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.fail(op, r)
			cmd = nil
		}
	}()
	return fn()
}

func (m *Model) fail(op string, r any) {
	m.pageErr = fmt.Errorf("%s %s: %v", m.route, op, r)
	m.logger.Error(m.ctx, "page crashed", "route", string(m.route), "op", op, "error", m.pageErr)
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text
	id := m.noticeID
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{id: id} })
}

func (m *Model) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}
