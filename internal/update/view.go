package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/focusboard/internal/views"
)

const helpText = `# focusboard

## Views
- **1** tasks, **2** pomodoro, **3** leaderboard

## Tasks
- type a task and press **enter** to add it (append ` + "`due:2006-01-02T15:04`" + ` for a deadline)
- **esc** leaves the input; **i** returns to it
- **space** toggles done, **x** deletes, **j/k** move, **p** cycles the priority for new tasks

## Pomodoro
- **space** start/pause, **r** reset, **w/b/B** pick work, short break, or long break
- every fourth finished work session earns the long break

## Leaderboard
- **enter** to pick a name; finished work sessions credit it with focus minutes
- **R** resets the board (asks first)

## Everywhere
- **T** toggles the theme, **P** enables desktop notifications, **?** closes this help, **q** quits
`

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewTasks:
		leftPane = m.renderTasksPane()
		rightPane = m.renderPomodoroPane()
	case ViewPomodoro:
		leftPane = m.renderPomodoroPane()
		rightPane = m.renderTasksPane()
	case ViewLeaderboard:
		leftPane = m.renderLeaderboardPane()
		rightPane = m.renderPomodoroPane()
	}
	if m.HelpVisible {
		rightPane = views.RenderMarkdown(helpText, m.Theme)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("focusboard | view: %s | theme: %s", m.CurrentView, m.Theme),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Banner:     m.renderBanner(),
		Footer: fmt.Sprintf("keys: %s tasks | %s pomodoro | %s leaderboard | %s theme | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Pomodoro, m.Keys.Leaderboard, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
		Theme: m.Theme,
	})
}

func (m Model) renderTasksPane() string {
	buckets := m.buckets()
	visible := m.visibleTasks()
	selectedID := ""
	if m.Cursor >= 0 && m.Cursor < len(visible) {
		selectedID = visible[m.Cursor].ID
	}

	data := views.TasksPanelData{
		InputView:    m.taskInput.View(),
		SelectedID:   selectedID,
		Productivity: buckets.Productivity(),
		AdminMode:    m.Board.Admin,
	}
	now := m.clock()
	for _, task := range buckets.Overdue {
		data.Overdue = append(data.Overdue, views.TaskItemData{
			ID:        task.ID,
			Text:      task.Text,
			Completed: task.Completed,
			Priority:  string(task.Priority),
			DueAt:     formatDue(task.DueDate),
			Overdue:   true,
			Locked:    task.Overdue(now) && !m.Board.Admin,
		})
	}
	for _, task := range buckets.Upcoming {
		data.Upcoming = append(data.Upcoming, views.TaskItemData{
			ID:        task.ID,
			Text:      task.Text,
			Completed: task.Completed,
			Priority:  string(task.Priority),
			DueAt:     formatDue(task.DueDate),
		})
	}
	return views.RenderTasksPanel(data)
}

func (m Model) renderPomodoroPane() string {
	fraction := m.Session.ElapsedFraction()
	return views.RenderPomodoroPanel(views.PomodoroPanelData{
		Mode:              string(m.Session.Mode),
		Timer:             formatDuration(m.Session.RemainingSec),
		ProgressView:      m.focusProgress.ViewAs(fraction),
		ProgressPct:       int(fraction * 100),
		Running:           m.Session.Running,
		CompletedSessions: m.Session.CompletedWorkSessions,
	})
}

func (m Model) renderLeaderboardPane() string {
	m.refreshLeaderboardTable()
	return views.RenderLeaderboardPanel(views.LeaderboardPanelData{
		NameInputView: m.nameInput.View(),
		SelectedName:  m.Ledger.Selected,
		TableView:     m.boardTable.View(),
	})
}

func (m Model) renderBanner() string {
	if m.NewDayPrompt {
		last := "a while ago"
		if !m.LastVisit.IsZero() {
			last = m.LastVisit.Format("Jan 2")
		}
		return views.RenderNewDayPrompt(last)
	}
	if m.ResetPrompt != "" {
		return views.RenderResetConfirm(m.ResetPrompt)
	}
	parts := make([]string, 0, 2)
	if banner := views.RenderPermissionBanner(string(m.Notify.Permission())); banner != "" {
		parts = append(parts, banner)
	}
	return strings.Join(parts, "\n")
}
