package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusboard/internal/board"
	"github.com/sandeepkv93/focusboard/internal/notify"
)

// statusTTL is how long a transient status message stays visible.
const statusTTL = 4 * time.Second

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTickCmd()}
	if m.Alerts != nil {
		cmds = append(cmds, waitForAlertCmd(m.Alerts.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		return m.setStatus(typed.Text, typed.IsError)
	case ClearStatusMsg:
		// Only the clear scheduled for the current message may wipe it; a
		// newer message keeps its own four seconds.
		if typed.Seq == m.Status.Seq {
			m.Status = StatusBar{Seq: m.Status.Seq}
		}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			return m.setStatus(typed.Err.Error(), true)
		}
		return m, nil
	case ClockTickMsg:
		m.syncAlerts()
		if !m.LastVisit.IsZero() && !sameCalendarDay(m.LastVisit, m.clock()) {
			m.NewDayPrompt = true
		}
		return m, clockTickCmd()
	case FocusTickMsg:
		return m.onFocusTick(typed.Gen)
	case AlertDueMsg:
		next, cmd := m.applyAlert(typed.Event)
		if next.Alerts != nil {
			return next, tea.Batch(cmd, waitForAlertCmd(next.Alerts.C()))
		}
		return next, cmd
	case progress.FrameMsg:
		updated, cmd := m.focusProgress.Update(typed)
		if p, ok := updated.(progress.Model); ok {
			m.focusProgress = p
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.persistLastVisit()
		m.Quitting = true
		return m, tea.Quit
	}

	if m.NewDayPrompt {
		return m.handleNewDayPromptKey(key)
	}
	if m.ResetPrompt != "" {
		return m.handleResetPromptKey(key)
	}

	capturing := (m.CurrentView == ViewTasks && m.InputActive) ||
		(m.CurrentView == ViewLeaderboard && m.nameInput.Focused())
	if !capturing {
		switch key {
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Pomodoro:
			m.CurrentView = ViewPomodoro
			return m, nil
		case m.Keys.Leaderboard:
			m.CurrentView = ViewLeaderboard
			return m, nil
		case m.Keys.Theme:
			m.Theme = m.Theme.Toggle()
			m.persistTheme()
			return m.setStatus(fmt.Sprintf("theme: %s", m.Theme), false)
		case m.Keys.Permission:
			return m.requestNotifications()
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.persistLastVisit()
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.CurrentView {
	case ViewTasks:
		return m.handleTasksKey(msg)
	case ViewPomodoro:
		return m.handlePomodoroKey(msg)
	case ViewLeaderboard:
		return m.handleLeaderboardKey(msg)
	}
	return m, nil
}

func (m Model) handleNewDayPromptKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.NewDayPrompt = false
		m.LastVisit = m.clock()
		m.Board.Clear()
		m.Cursor = 0
		m.persistTasks()
		m.persistLastVisit()
		m.syncAlerts()
		return m.setStatus("fresh start: tasks cleared", false)
	case "n", "N", "esc":
		m.NewDayPrompt = false
		m.LastVisit = m.clock()
		m.persistLastVisit()
		return m, nil
	}
	return m, nil
}

func (m Model) handleResetPromptKey(key string) (tea.Model, tea.Cmd) {
	subject := m.ResetPrompt
	switch key {
	case "y", "Y":
		m.ResetPrompt = ""
		if subject == "leaderboard" {
			m.Ledger.Reset()
			m.persistLeaderboard()
			return m.setStatus("leaderboard reset", false)
		}
		return m, nil
	case "n", "N", "esc":
		m.ResetPrompt = ""
		return m, nil
	}
	return m, nil
}

// requestNotifications re-checks permission on demand. A grant arms every
// still-unnotified deadline by rebuilding the alert queue.
func (m Model) requestNotifications() (tea.Model, tea.Cmd) {
	got := m.Notify.RequestPermission(true)
	switch got {
	case notify.PermissionGranted:
		m.syncAlerts()
		return m.setStatus("notifications enabled", false)
	case notify.PermissionDenied:
		return m.setStatus("notifications are blocked by the desktop", true)
	default:
		return m, nil
	}
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	seq := m.Status.Seq + 1
	m.Status = StatusBar{Text: text, IsError: isErr, Seq: seq}
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func (m Model) buckets() board.Buckets {
	return board.Partition(m.Board.Tasks, m.clock())
}

func isKnownView(v View) bool {
	switch v {
	case ViewTasks, ViewPomodoro, ViewLeaderboard:
		return true
	default:
		return false
	}
}
