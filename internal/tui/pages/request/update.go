package request

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/router"
	"github.com/alexisbeaulieu97/techconsult/internal/tui/layout"
	tcerrors "github.com/alexisbeaulieu97/techconsult/pkg/errors"
)

// Update implements router.Page.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case router.ThemeChangedMsg:
		m.refresh()
		return nil

	case SubmittedMsg:
		if msg.MountID != m.mountID {
			return nil
		}
		if err := m.form.Complete(msg.Ack); err != nil {
			m.logger.Warn(m.ctx, "dropping submission result", "error", err)
			return nil
		}
		m.logger.Info(m.ctx, "request submitted", "reference", msg.Ack.Reference)
		m.clearInputs()
		m.setFocus(focusNone)
		m.refresh()
		m.viewport.GotoTop()
		return nil

	case SubmitFailedMsg:
		if msg.MountID != m.mountID {
			return nil
		}
		if err := m.form.Fail(msg.Err); err != nil {
			m.logger.Warn(m.ctx, "dropping submission result", "error", err)
			return nil
		}
		m.logger.Error(m.ctx, "request submission failed", "error", msg.Err)
		m.refresh()
		m.viewport.GotoTop()
		return nil

	case spinner.TickMsg:
		if m.form.Status().Kind != lead.StatusSubmitting {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.forward(msg)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if !m.ready {
		return nil
	}

	if !m.form.Status().ShowsForm() {
		switch {
		case key.Matches(msg, m.keys.Activate):
			m.form.Reset()
			m.logger.Debug(m.ctx, "request form reset")
			m.refresh()
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.PageUp):
			m.scroll(-m.viewport.Height)
		case key.Matches(msg, m.keys.PageDown):
			m.scroll(m.viewport.Height)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Leave):
		if m.focus == int(lead.FieldServiceType) && m.selector.open {
			m.selector.open = false
		} else {
			m.setFocus(focusNone)
		}
		m.refresh()
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.viewport.Height)
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.viewport.Height)
		return nil
	}

	switch {
	case m.focus == int(lead.FieldServiceType):
		return m.handleSelectKey(msg)

	case m.focus == int(lead.FieldDescription):
		return m.forward(msg)

	case m.focus >= 0 && m.focus < focusSubmit:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		return m.forward(msg)

	case m.focus == focusSubmit:
		if key.Matches(msg, m.keys.Activate) {
			return m.submit()
		}

	default:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.scroll(-1)
		case key.Matches(msg, m.keys.Down):
			m.scroll(1)
		}
	}
	return nil
}

func (m *Model) handleSelectKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Activate):
		if m.selector.open {
			m.selector.confirm()
			m.sync(lead.FieldServiceType)
		} else {
			m.selector.toggle()
		}
	case key.Matches(msg, m.keys.Up):
		m.selector.move(-1)
		m.sync(lead.FieldServiceType)
	case key.Matches(msg, m.keys.Down):
		m.selector.move(1)
		m.sync(lead.FieldServiceType)
	default:
		return nil
	}
	m.refresh()
	m.scrollToFocus()
	return nil
}

// forward hands msg to the focused input and copies its value into the form.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.focus < 0 || m.focus >= focusSubmit {
		return nil
	}

	field := fieldOrder[m.focus]
	var cmd tea.Cmd
	switch field {
	case lead.FieldServiceType:
		return nil
	case lead.FieldDescription:
		m.description, cmd = m.description.Update(msg)
	default:
		ti := m.inputs[field]
		*ti, cmd = ti.Update(msg)
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		m.sync(field)
		m.refresh()
		m.scrollToFocus()
	}
	return cmd
}

// sync copies a widget value into the form. A field being edited loses its
// hint.
func (m *Model) sync(field lead.Field) {
	value := m.widgetValue(field)
	if value == m.form.Data().Value(field) {
		return
	}
	if err := m.form.SetField(field, value); err != nil {
		m.logger.Debug(m.ctx, "ignored edit", "field", field.Key(), "error", err)
		return
	}
	if m.hint != "" && m.hintField == field {
		m.hint = ""
	}
}

func (m *Model) widgetValue(field lead.Field) string {
	switch field {
	case lead.FieldServiceType:
		return string(m.selector.value())
	case lead.FieldDescription:
		return m.description.Value()
	default:
		return m.inputs[field].Value()
	}
}

func (m *Model) submit() tea.Cmd {
	data, err := m.form.BeginSubmit()
	if err != nil {
		var ve *tcerrors.ValidationError
		if errors.As(err, &ve) {
			field, ok := lead.FieldForKey(ve.Field)
			if !ok {
				field = lead.FieldName
			}
			m.hint = ve.Message
			m.hintField = field
			cmd := m.setFocus(int(field))
			m.refresh()
			m.scrollToFocus()
			return cmd
		}
		m.logger.Debug(m.ctx, "submit ignored", "error", err)
		return nil
	}

	m.hint = ""
	m.logger.Info(m.ctx, "submitting request", "service_type", data.ServiceType.String())
	m.refresh()
	return tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.mountID, m.service, data))
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := focusSubmit + 1
	next := m.focus + delta
	switch {
	case m.focus == focusNone && delta < 0:
		next = focusSubmit
	case next < 0:
		next = n - 1
	case next >= n:
		next = 0
	}
	cmd := m.setFocus(next)
	m.refresh()
	m.scrollToFocus()
	return cmd
}

// setFocus blurs every widget and focuses index i, returning the cursor
// blink command of the newly focused input.
func (m *Model) setFocus(i int) tea.Cmd {
	for _, ti := range m.inputs {
		ti.Blur()
	}
	m.description.Blur()
	m.selector.blur()

	m.focus = i
	if i < 0 || i >= focusSubmit {
		return nil
	}

	switch field := fieldOrder[i]; field {
	case lead.FieldServiceType:
		m.selector.focused = true
		return nil
	case lead.FieldDescription:
		return m.description.Focus()
	default:
		return m.inputs[field].Focus()
	}
}

func (m *Model) clearInputs() {
	for _, ti := range m.inputs {
		ti.Reset()
	}
	m.description.Reset()
	m.selector.reset()
	m.hint = ""
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

	inner := m.fieldWidth()
	for _, ti := range m.inputs {
		ti.Width = inner
	}
	m.description.SetWidth(inner)
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	doc := layout.Stack(m.blocks(), 1)
	m.regions = doc.Regions
	m.viewport.SetContent(doc.Content)
}

func (m *Model) scroll(delta int) {
	if !m.ready {
		return
	}
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

func (m *Model) scrollToFocus() {
	if !m.ready {
		return
	}
	id := blockSubmit
	if m.focus >= 0 && m.focus < focusSubmit {
		id = fieldBlockID(fieldOrder[m.focus])
	} else if m.focus == focusNone {
		return
	}
	region, ok := m.regions[id]
	if !ok {
		return
	}
	m.viewport.SetYOffset(layout.ScrollInto(region, m.viewport.YOffset, m.viewport.Height))
}
