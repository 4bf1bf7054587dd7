package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusboard/internal/alerts"
	"github.com/sandeepkv93/focusboard/internal/notify"
)

func waitForAlertCmd(ch <-chan alerts.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return AlertDueMsg{Event: ev}
	}
}

// applyAlert handles an alert event against live state. The queue entry may
// be stale by delivery time, so eligibility and permission are both checked
// fresh here; the notificationSent flag is only set after a real delivery,
// keeping the alert armed while permission is missing.
func (m Model) applyAlert(ev alerts.Event) (Model, tea.Cmd) {
	task, ok := m.Board.Find(ev.TaskID)
	if !ok || !alerts.Eligible(task, m.clock()) {
		return m, nil
	}
	if m.Notify.Permission() != notify.PermissionGranted {
		return m, nil
	}

	delivered, err := m.Notify.Send(notify.Notification{
		Title: "task due soon",
		Body:  task.Text,
	})
	if err != nil {
		return m.setStatus(fmt.Sprintf("notification failed: %v", err), true)
	}
	if !delivered {
		return m, nil
	}
	_ = m.Audio.Play()

	m.Board.MarkNotified(task.ID)
	m.persistTasks()
	m.syncAlerts()
	return m.setStatus(fmt.Sprintf("due soon: %s", task.Text), false)
}
