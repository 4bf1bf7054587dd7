package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusboard/internal/notify"
	"github.com/sandeepkv93/focusboard/internal/pomodoro"
)

func (m Model) handlePomodoroKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		wasRunning := m.Session.Running
		m.Session.Toggle()
		m.focusTickGen++
		if !wasRunning && m.Session.Running {
			next, statusCmd := m.setStatus("focus running", false)
			return next, tea.Batch(statusCmd, focusTickCmd(next.focusTickGen))
		}
		return m.setStatus("focus paused", false)
	case "r":
		m.Session.Reset()
		m.focusTickGen++
		return m.setStatus("timer reset", false)
	case "w":
		m.Session.SelectMode(pomodoro.ModeWork)
		m.focusTickGen++
		return m.setStatus("work mode selected", false)
	case "b":
		m.Session.SelectMode(pomodoro.ModeShortBreak)
		m.focusTickGen++
		return m.setStatus("short break selected", false)
	case "B":
		m.Session.SelectMode(pomodoro.ModeLongBreak)
		m.focusTickGen++
		return m.setStatus("long break selected", false)
	}
	return m, nil
}

// onFocusTick advances the countdown by one second. A tick from a stale
// stream is dropped: pausing and quickly resuming would otherwise leave the
// old in-flight tick alive next to the new one, and the countdown would run
// at two decrements per second.
func (m Model) onFocusTick(gen int) (Model, tea.Cmd) {
	if gen != m.focusTickGen {
		return m, nil
	}
	res := m.Session.Tick()
	if !res.Finished {
		if m.Session.Running {
			return m, focusTickCmd(m.focusTickGen)
		}
		return m, nil
	}

	_, _ = m.Notify.Send(notify.Notification{
		Title: "focusboard",
		Body:  sessionFinishedBody(res),
	})
	_ = m.Audio.Play()

	if res.CreditedMinutes > 0 {
		if err := m.Ledger.AddFocusMinutes(res.CreditedMinutes, m.clock()); err == nil {
			m.persistLeaderboard()
		} else {
			next, cmd := m.setStatus(fmt.Sprintf("work session done; %d minutes not credited: pick a name on the leaderboard", res.CreditedMinutes), false)
			return next, cmd
		}
	}
	return m.setStatus(sessionFinishedBody(res), false)
}

func sessionFinishedBody(res pomodoro.TickResult) string {
	if res.FinishedMode == pomodoro.ModeWork {
		if res.NextMode == pomodoro.ModeLongBreak {
			return "work session complete: time for a long break"
		}
		return "work session complete: time for a short break"
	}
	return "break over: back to work"
}

func focusTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{Gen: gen} })
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return ClockTickMsg{} })
}
