package request

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/submission"
)

// SubmittedMsg reports a finished submission for one page mount.
type SubmittedMsg struct {
	MountID int
	Ack     lead.Ack
}

// SubmitFailedMsg reports a failed submission for one page mount.
type SubmitFailedMsg struct {
	MountID int
	Err     error
}

// submitCmd hands the snapshot to the service off the update loop.
func submitCmd(ctx context.Context, mountID int, svc submission.Service, data lead.FormData) tea.Cmd {
	return func() tea.Msg {
		ack, err := svc.Submit(ctx, data)
		if err != nil {
			return SubmitFailedMsg{MountID: mountID, Err: err}
		}
		return SubmittedMsg{MountID: mountID, Ack: ack}
	}
}
