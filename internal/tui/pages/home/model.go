// Package home is the landing page: hero, service highlights, a call to
// action and the "Why Choose Us" features. The lower three sections stay
// hidden until they first scroll into view and then fade in.
package home

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/logger"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
	"github.com/alexisbeaulieu97/techconsult/internal/visibility"
)

// FadeDuration is how long a revealed section stays dimmed.
const FadeDuration = 700 * time.Millisecond

const (
	sectionHero     = "hero"
	sectionServices = "services"
	sectionCTA      = "cta"
	sectionFeatures = "features"
)

var fadeSections = []string{sectionServices, sectionCTA, sectionFeatures}

type phase int

const (
	phaseHidden phase = iota
	phaseFading
	phaseShown
)

type action struct {
	label   string
	section string
	slot    int
	run     func(m *Model) tea.Cmd
}

// Options carries the dependencies of the page.
type Options struct {
	Context context.Context
	Logger  ports.Logger
}

// Model is the home page.
type Model struct {
	mountID int
	ctx     context.Context
	logger  ports.Logger

	width    int
	height   int
	ready    bool
	viewport viewport.Model

	observer *visibility.Observer
	phases   map[string]phase
	regions  map[string]visibility.Region

	actions []action
	focus   layout.FocusRing
	keys    layout.NavKeys
}

var _ router.Page = (*Model)(nil)

// New builds a home page for one mount.
func New(mountID int, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	m := &Model{
		mountID: mountID,
		ctx:     ctx,
		logger:  log.With("component", "home", "mount_id", mountID),
		phases: map[string]phase{
			sectionHero: phaseShown,
		},
		regions: make(map[string]visibility.Region),
		keys:    layout.DefaultNavKeys(),
	}

	m.observer = visibility.New(visibility.DefaultThreshold, func(id string) {
		m.logger.Debug(m.ctx, "section revealed", "section", id)
	})
	for _, id := range fadeSections {
		m.phases[id] = phaseHidden
		m.observer.Observe(id, visibility.Region{})
	}

	m.actions = buildActions()
	m.focus = layout.NewFocusRing(len(m.actions))
	return m
}

func buildActions() []action {
	actions := []action{{
		label:   "Start",
		section: sectionHero,
		run:     (*Model).scrollToFeatures,
	}}
	for i := 0; i < 3; i++ {
		actions = append(actions, action{
			label:   "Learn More",
			section: sectionServices,
			slot:    i,
			run:     func(*Model) tea.Cmd { return router.Navigate(router.Services) },
		})
	}
	actions = append(actions, action{
		label:   "Request AI Analysis",
		section: sectionCTA,
		run:     func(*Model) tea.Cmd { return router.Navigate(router.RequestForm) },
	})
	return actions
}

// Init implements router.Page.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Capturing implements router.Page; the home page has no text inputs.
func (m *Model) Capturing() bool {
	return false
}

// KeyBindings implements router.Page.
func (m *Model) KeyBindings() []key.Binding {
	return m.keys.Bindings()
}

// Unmount stops watching for sections to reveal.
func (m *Model) Unmount() {
	m.observer.Disconnect()
	m.logger.Debug(m.ctx, "home unmounted")
}
