// Package router defines the site's routes and the contract every page
// implements.
package router

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Route is a site path.
type Route string

const (
	Home          Route = "/"
	Services      Route = "/managed-services"
	RequestForm   Route = "/ai-agent-request"
	fallbackRoute       = Home
)

// Routes lists every route in navigation order.
func Routes() []Route {
	return []Route{Home, Services, RequestForm}
}

// Parse validates a path.
func Parse(s string) (Route, error) {
	for _, r := range Routes() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown route %q (want one of /, /managed-services, /ai-agent-request)", s)
}

// Label is the navigation caption of r.
func (r Route) Label() string {
	switch r {
	case Home:
		return "Home"
	case Services:
		return "Managed Services"
	case RequestForm:
		return "AI Agent Request"
	default:
		return string(r)
	}
}

// Index is the zero-based position of r in Routes, or -1.
func (r Route) Index() int {
	for i, candidate := range Routes() {
		if candidate == r {
			return i
		}
	}
	return -1
}

// Default returns the landing route.
func Default() Route {
	return fallbackRoute
}

// NavigateMsg asks the shell to mount a new page.
type NavigateMsg struct {
	To Route
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(to Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{To: to}
	}
}

// ThemeChangedMsg tells the mounted page to re-render for a new scheme.
type ThemeChangedMsg struct {
	Dark bool
}

// Page is one mounted route. Pages are pointer models owned by the shell;
// Update mutates in place. The shell sends a tea.WindowSizeMsg holding the
// space left between its header and footer.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Capturing reports whether keystrokes go to a text input, in which
	// case the shell's single-letter shortcuts are suspended.
	Capturing() bool
	KeyBindings() []key.Binding
	// Unmount releases per-mount resources. The page is not used after.
	Unmount()
}

// Factory builds a fresh page for a mount. mountID is unique per mount so
// asynchronous results can be matched to the instance that requested them.
type Factory func(mountID int) Page
