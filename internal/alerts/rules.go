package alerts

import (
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

// Lookahead is how far ahead of a due date the one-shot alert may fire.
const Lookahead = 5 * time.Minute

// Eligible reports whether a task should alert right now: it has a due
// date, is incomplete, has never alerted, and the deadline is strictly
// ahead but within the lookahead window.
func Eligible(task model.Task, now time.Time) bool {
	if task.DueDate == nil || task.Completed || task.NotificationSent {
		return false
	}
	delta := task.DueDate.Sub(now)
	return delta > 0 && delta <= Lookahead
}

// Pending reports whether a task may still alert at some future point:
// everything Eligible requires except that the window need not be open yet.
func Pending(task model.Task, now time.Time) bool {
	if task.DueDate == nil || task.Completed || task.NotificationSent {
		return false
	}
	return task.DueDate.After(now)
}

// WindowOpen is the instant the alert window opens for a due date.
func WindowOpen(due time.Time) time.Time {
	return due.Add(-Lookahead)
}
