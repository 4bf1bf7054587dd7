package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        string
	Text      string
	Completed bool
	Priority  string
	DueAt     string
	Overdue   bool
	Locked    bool
}

type TasksPanelData struct {
	InputView    string
	Overdue      []TaskItemData
	Upcoming     []TaskItemData
	SelectedID   string
	Productivity int
	AdminMode    bool
}

type PomodoroPanelData struct {
	Mode              string
	Timer             string
	ProgressView      string
	ProgressPct       int
	Running           bool
	CompletedSessions int
}

type LeaderboardPanelData struct {
	NameInputView string
	SelectedName  string
	TableView     string
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("actions: [enter]add [space]toggle [x]delete [j/k]move\n")
	if data.AdminMode {
		b.WriteString("mode: ADMIN\n")
	}
	renderTaskSection(&b, "Overdue", data.Overdue, data.SelectedID)
	renderTaskSection(&b, "Upcoming", data.Upcoming, data.SelectedID)
	b.WriteString(fmt.Sprintf("\nproductivity: %s %d%%\n", productivityBar(data.Productivity, 20), data.Productivity))
	return strings.TrimSpace(b.String())
}

func RenderPomodoroPanel(data PomodoroPanelData) string {
	var b strings.Builder
	b.WriteString("pomodoro:\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", strings.ToUpper(data.Mode)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	if data.Running {
		b.WriteString("state: running\n")
	} else {
		b.WriteString("state: paused\n")
	}
	b.WriteString(fmt.Sprintf("work sessions completed: %d\n", data.CompletedSessions))
	b.WriteString("actions: [space]start/pause [r]reset [w]work [b]break [B]long-break")
	return strings.TrimSpace(b.String())
}

func RenderLeaderboardPanel(data LeaderboardPanelData) string {
	var b strings.Builder
	b.WriteString("leaderboard:\n")
	b.WriteString(data.NameInputView + "\n")
	if data.SelectedName != "" {
		b.WriteString(fmt.Sprintf("focusing as: %s\n", data.SelectedName))
	} else {
		b.WriteString("focusing as: (pick a name to credit focus minutes)\n")
	}
	b.WriteString("actions: [enter]select-name [R]reset-board\n")
	if data.TableView == "" {
		b.WriteString("(no focus minutes recorded yet)")
	} else {
		b.WriteString(data.TableView)
	}
	return strings.TrimSpace(b.String())
}

// RenderPermissionBanner describes the notification permission state for
// the footer area. An empty string means nothing needs surfacing.
func RenderPermissionBanner(permission string) string {
	switch permission {
	case "denied":
		return "notifications blocked: due-date alerts will not be shown ([P] to re-check)"
	case "default":
		return "press [P] to enable due-date notifications"
	default:
		return ""
	}
}

func RenderNewDayPrompt(lastVisit string) string {
	return fmt.Sprintf("new day since your last visit (%s). start fresh and clear tasks? [y/n]", lastVisit)
}

func RenderResetConfirm(subject string) string {
	return fmt.Sprintf("really reset %s? [y/n]", subject)
}

func renderTaskSection(b *strings.Builder, title string, items []TaskItemData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		cursor := " "
		if selectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, check, priorityBadge(item), item.Text))
		if item.DueAt != "" {
			b.WriteString(fmt.Sprintf(" due:%s", item.DueAt))
		}
		if item.Locked {
			b.WriteString(" (locked)")
		}
		b.WriteString("\n")
	}
}

func priorityBadge(item TaskItemData) string {
	if item.Overdue {
		return "[RED]"
	}
	switch item.Priority {
	case "high":
		return "[YELLOW]"
	case "medium":
		return "[BLUE]"
	default:
		return "[GREEN]"
	}
}

func productivityBar(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
