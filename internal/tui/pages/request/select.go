package request

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/components"
	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
)

const selectPlaceholder = "Select a service type"

// serviceSelect is a closed-choice dropdown with no default selection.
type serviceSelect struct {
	options  []lead.ServiceType
	selected int
	cursor   int
	open     bool
	focused  bool
}

func newServiceSelect() serviceSelect {
	return serviceSelect{options: lead.ServiceTypes(), selected: -1}
}

func (s serviceSelect) value() lead.ServiceType {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ""
	}
	return s.options[s.selected]
}

func (s *serviceSelect) reset() {
	s.selected = -1
	s.cursor = 0
	s.open = false
}

func (s *serviceSelect) blur() {
	s.focused = false
	s.open = false
}

func (s *serviceSelect) toggle() {
	if s.open {
		s.open = false
		return
	}
	s.open = true
	s.cursor = max(s.selected, 0)
}

func (s *serviceSelect) confirm() {
	s.selected = s.cursor
	s.open = false
}

// move shifts the highlighted option when open, or the selection itself
// when closed.
func (s *serviceSelect) move(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	if s.open {
		s.cursor = (s.cursor + delta + n) % n
		return
	}
	if s.selected < 0 {
		if delta > 0 {
			s.selected = 0
		} else {
			s.selected = n - 1
		}
		return
	}
	s.selected = (s.selected + delta + n) % n
}

func (s serviceSelect) view(width int) string {
	label := selectPlaceholder
	labelStyle := components.TypographyStyle(components.TypographyVariantMuted)
	if v := s.value(); v != "" {
		label = v.Label()
		labelStyle = components.TypographyStyle(components.TypographyVariantBody)
	}

	arrow := "▾"
	if s.open {
		arrow = "▴"
	}
	line := labelStyle.Render(label)
	pad := max(width-lipgloss.Width(line)-2, 1)
	closed := line + strings.Repeat(" ", pad) + arrow

	if !s.open {
		return closed
	}

	rows := []string{closed}
	for i, opt := range s.options {
		marker := "  "
		style := components.TypographyStyle(components.TypographyVariantBody)
		if i == s.cursor {
			marker = "▸ "
			style = components.Style(style, components.Foreground(components.PalettePrimary)).Bold(true)
		}
		rows = append(rows, marker+style.Render(opt.Label()))
	}
	return strings.Join(rows, "\n")
}
