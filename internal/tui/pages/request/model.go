// Package request is the lead form page. It drives a lead.Form through
// idle, submitting, submitted and failed, handing snapshots to a
// submission.Service.
package request

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/config"
	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/logger"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/submission"
	"github.com/alexisbeaulieu97/techconsult/internal/visibility"
)

const (
	focusNone   = -1
	focusSubmit = int(lead.FieldDescription) + 1

	maxInputWidth = 64
)

var fieldOrder = lead.Fields()

var fieldLabels = map[lead.Field]string{
	lead.FieldName:        "Full Name",
	lead.FieldEmail:       "Email Address",
	lead.FieldCompany:     "Company Name",
	lead.FieldServiceType: "Service Type",
	lead.FieldDescription: "Project Description",
}

// Options carries the dependencies of the page.
type Options struct {
	Context context.Context
	Logger  ports.Logger
	Service submission.Service
}

// Model is the request form page.
type Model struct {
	mountID int
	ctx     context.Context
	logger  ports.Logger
	service submission.Service
	form    *lead.Form

	inputs      map[lead.Field]*textinput.Model
	description textarea.Model
	selector    serviceSelect
	spinner     spinner.Model

	focus     int
	hint      string
	hintField lead.Field

	width    int
	height   int
	ready    bool
	viewport viewport.Model
	regions  map[string]visibility.Region
	keys     keyMap
}

var _ router.Page = (*Model)(nil)

// New builds a request page for one mount.
func New(mountID int, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	svc := opts.Service
	if svc == nil {
		svc = submission.NewSimulated(submission.Options{Delay: config.DefaultSubmissionDelay, Logger: log})
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		mountID:     mountID,
		ctx:         ctx,
		logger:      log.With("component", "request", "mount_id", mountID),
		service:     svc,
		form:        lead.NewForm(),
		inputs:      make(map[lead.Field]*textinput.Model, 3),
		description: newDescription(),
		selector:    newServiceSelect(),
		spinner:     s,
		focus:       focusNone,
		keys:        defaultKeyMap(),
	}

	for field, placeholder := range map[lead.Field]string{
		lead.FieldName:    "Enter your full name",
		lead.FieldEmail:   "Enter your email address",
		lead.FieldCompany: "Enter your company name",
	} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[field] = &ti
	}

	return m
}

func newDescription() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Describe your project requirements and goals"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 4000
	ta.SetHeight(5)
	return ta
}

// Init implements router.Page.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Status exposes the form phase.
func (m *Model) Status() lead.Status {
	return m.form.Status()
}

// Data exposes the current field values.
func (m *Model) Data() lead.FormData {
	return m.form.Data()
}

// Capturing implements router.Page: text fields and an open dropdown take
// every key.
func (m *Model) Capturing() bool {
	if !m.form.Status().ShowsForm() {
		return false
	}
	switch {
	case m.focus == int(lead.FieldServiceType):
		return m.selector.open
	case m.focus >= 0 && m.focus < focusSubmit:
		return true
	default:
		return false
	}
}

// KeyBindings implements router.Page.
func (m *Model) KeyBindings() []key.Binding {
	return m.keys.bindings()
}

// Unmount implements router.Page. An in-flight submission is not cancelled;
// its result carries this mount's id and is dropped by the next page.
func (m *Model) Unmount() {
	if m.form.Status().Kind == lead.StatusSubmitting {
		m.logger.Info(m.ctx, "leaving page with submission in flight")
	}
}
