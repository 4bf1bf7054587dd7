package board

import (
	"errors"
	"strings"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

var (
	ErrEmptyText     = errors.New("board: task text is empty")
	ErrDuplicateTask = errors.New("board: task already exists")
	ErrTaskLocked    = errors.New("board: overdue task is locked")
)

// Board owns the live task collection and the admin capability flag. Raw
// storage order is newest-first; display order is derived via Partition.
type Board struct {
	Tasks []model.Task
	Admin bool
}

func New(tasks []model.Task) *Board {
	if tasks == nil {
		tasks = make([]model.Task, 0)
	}
	return &Board{Tasks: tasks}
}

// Add trims the text and prepends a new task. Empty text returns
// ErrEmptyText, and text matching an existing task case-insensitively
// returns ErrDuplicateTask; neither changes the collection.
func (b *Board) Add(text string, priority model.Priority, due *time.Time, now time.Time) (model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, ErrEmptyText
	}
	if b.hasText(trimmed) {
		return model.Task{}, ErrDuplicateTask
	}
	task := model.NewTask(trimmed, priority, due, now)
	b.Tasks = append([]model.Task{task}, b.Tasks...)
	return task, nil
}

// Toggle flips completion on the matching task. Unknown ids are a no-op.
func (b *Board) Toggle(id string) bool {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id {
			b.Tasks[i].Completed = !b.Tasks[i].Completed
			return true
		}
	}
	return false
}

// Delete removes the matching task. An overdue, incomplete task is locked
// against deletion unless the admin flag is set. Unknown ids are a no-op.
func (b *Board) Delete(id string, now time.Time) error {
	for i := range b.Tasks {
		if b.Tasks[i].ID != id {
			continue
		}
		if b.Tasks[i].Overdue(now) && !b.Admin {
			return ErrTaskLocked
		}
		b.Tasks = append(b.Tasks[:i], b.Tasks[i+1:]...)
		return nil
	}
	return nil
}

// MarkNotified sets the one-shot notification flag on the matching task.
// The flag only ever goes false to true.
func (b *Board) MarkNotified(id string) bool {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id && !b.Tasks[i].NotificationSent {
			b.Tasks[i].NotificationSent = true
			return true
		}
	}
	return false
}

// Clear drops every task. The caller gates this behind an explicit
// confirmation prompt.
func (b *Board) Clear() {
	b.Tasks = make([]model.Task, 0)
}

func (b *Board) Find(id string) (model.Task, bool) {
	for _, task := range b.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (b *Board) hasText(trimmed string) bool {
	for _, task := range b.Tasks {
		if strings.EqualFold(strings.TrimSpace(task.Text), trimmed) {
			return true
		}
	}
	return false
}
