package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/router"
)

type keyMap struct {
	Home      key.Binding
	Services  key.Binding
	Request   key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// page bindings of the mounted route, refreshed on every render
	page []key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", router.Home.Label())),
		Services:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", router.Services.Label())),
		Request:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", router.RequestForm.Label())),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// routeFor maps a navigation key to its route.
func (k keyMap) routeFor(msg tea.KeyMsg) (router.Route, bool) {
	switch {
	case key.Matches(msg, k.Home):
		return router.Home, true
	case key.Matches(msg, k.Services):
		return router.Services, true
	case key.Matches(msg, k.Request):
		return router.RequestForm, true
	}
	return "", false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.page...), k.Theme, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Services, k.Request},
		k.page,
		{k.Theme, k.Help, k.Quit, k.ForceQuit},
	}
}
