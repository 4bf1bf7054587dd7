package update

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusboard/internal/board"
	"github.com/sandeepkv93/focusboard/internal/commands"
	"github.com/sandeepkv93/focusboard/internal/model"
	"github.com/sandeepkv93/focusboard/internal/notify"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.InputActive {
		switch msg.String() {
		case "esc":
			m.InputActive = false
			m.taskInput.Blur()
			return m, nil
		case "enter":
			return m.submitTaskInput()
		default:
			var cmd tea.Cmd
			m.taskInput, cmd = m.taskInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "i", "a":
		m.InputActive = true
		m.taskInput.Focus()
		return m, nil
	case "j", "down":
		if m.Cursor < len(m.visibleTasks())-1 {
			m.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case " ":
		return m.toggleSelectedTask()
	case "x", "d":
		return m.deleteSelectedTask()
	case "p":
		m.NewPriority = nextPriority(m.NewPriority)
		return m.setStatus(fmt.Sprintf("new tasks will be %s priority", m.NewPriority), false)
	}
	return m, nil
}

func (m Model) submitTaskInput() (Model, tea.Cmd) {
	raw := m.taskInput.Value()
	m.taskInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		var cmdErr *commands.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == commands.ErrCodeEmptyInput {
			return m, nil
		}
		return m.setStatus(err.Error(), true)
	}

	var next Model
	var teaCmd tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			next, teaCmd = m.addTask(args.Text)
			return commands.Result{}, nil
		},
		Admin: func() (commands.Result, error) {
			m.Board.Admin = true
			next, teaCmd = m.setStatus("admin mode enabled", false)
			return commands.Result{}, nil
		},
		Unadmin: func() (commands.Result, error) {
			m.Board.Admin = false
			next, teaCmd = m.setStatus("admin mode disabled", false)
			return commands.Result{}, nil
		},
		Alarm: func() (commands.Result, error) {
			next, teaCmd = m.testAlarm()
			return commands.Result{}, nil
		},
	}
	if _, err := commands.Execute(cmd, handlers); err != nil {
		return m.setStatus(err.Error(), true)
	}
	return next, teaCmd
}

func (m Model) addTask(text string) (Model, tea.Cmd) {
	now := m.clock()
	cleaned, due := parseDueSuffix(text, now)
	task, err := m.Board.Add(cleaned, m.NewPriority, due, now)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrEmptyText):
			return m.setStatus("task text is empty", true)
		case errors.Is(err, board.ErrDuplicateTask):
			return m.setStatus("that task already exists", true)
		default:
			return m.setStatus(err.Error(), true)
		}
	}
	m.persistTasks()
	m.syncAlerts()
	return m.setStatus(fmt.Sprintf("added: %s", task.Text), false)
}

func (m Model) toggleSelectedTask() (Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	m.Board.Toggle(task.ID)
	m.persistTasks()
	m.syncAlerts()
	return m, nil
}

func (m Model) deleteSelectedTask() (Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if err := m.Board.Delete(task.ID, m.clock()); err != nil {
		if errors.Is(err, board.ErrTaskLocked) {
			return m.setStatus("overdue tasks are locked; finish them or enable admin mode", true)
		}
		return m.setStatus(err.Error(), true)
	}
	if m.Cursor >= len(m.visibleTasks()) && m.Cursor > 0 {
		m.Cursor--
	}
	m.persistTasks()
	m.syncAlerts()
	return m.setStatus(fmt.Sprintf("deleted: %s", task.Text), false)
}

// testAlarm exercises the notification and sound path on demand so a user
// can verify their desktop setup before a real deadline depends on it.
func (m Model) testAlarm() (Model, tea.Cmd) {
	delivered, err := m.Notify.Send(notify.Notification{
		Title: "focusboard",
		Body:  "test alarm",
	})
	if err != nil {
		return m.setStatus(fmt.Sprintf("test alarm failed: %v", err), true)
	}
	if playErr := m.Audio.Play(); playErr != nil {
		return m.setStatus(fmt.Sprintf("test alarm sound failed: %v", playErr), true)
	}
	if !delivered {
		return m.setStatus("test alarm played; desktop notifications are off ([P] to enable)", false)
	}
	return m.setStatus("test alarm sent", false)
}

func (m Model) visibleTasks() []model.Task {
	buckets := m.buckets()
	out := make([]model.Task, 0, len(buckets.Overdue)+len(buckets.Upcoming))
	out = append(out, buckets.Overdue...)
	out = append(out, buckets.Upcoming...)
	return out
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.visibleTasks()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityHigh
	}
}

// parseDueSuffix strips a trailing "due:" token and parses it as a
// deadline. Bare dates land at end of day; bare times land on today's date.
func parseDueSuffix(text string, now time.Time) (string, *time.Time) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 2 {
		return strings.TrimSpace(text), nil
	}
	last := fields[len(fields)-1]
	if !strings.HasPrefix(strings.ToLower(last), "due:") {
		return strings.TrimSpace(text), nil
	}
	raw := last[len("due:"):]
	cleaned := strings.Join(fields[:len(fields)-1], " ")

	if at, err := time.ParseInLocation("2006-01-02T15:04", raw, now.Location()); err == nil {
		return cleaned, &at
	}
	if at, err := time.ParseInLocation("2006-01-02", raw, now.Location()); err == nil {
		endOfDay := at.Add(23*time.Hour + 59*time.Minute)
		return cleaned, &endOfDay
	}
	if at, err := time.ParseInLocation("15:04", raw, now.Location()); err == nil {
		y, mo, d := now.Date()
		today := time.Date(y, mo, d, at.Hour(), at.Minute(), 0, 0, now.Location())
		return cleaned, &today
	}
	// Unparseable suffix stays part of the task text.
	return strings.TrimSpace(text), nil
}
