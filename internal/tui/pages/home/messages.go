package home

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fadeDoneMsg ends the fade of one section.
type fadeDoneMsg struct {
	mountID int
	section string
}

func fadeCmd(mountID int, section string) tea.Cmd {
	return tea.Tick(FadeDuration, func(time.Time) tea.Msg {
		return fadeDoneMsg{mountID: mountID, section: section}
	})
}
