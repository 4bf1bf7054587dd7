package board

import (
	"math"
	"sort"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

// Buckets is the derived view of a task collection at a point in time.
// Upcoming keeps the priority/created order; Overdue is re-sorted so the
// soonest-missed deadline comes first within each priority band.
type Buckets struct {
	Upcoming []model.Task
	Overdue  []model.Task
}

// SortByPriority returns a copy ordered by priority rank ascending, ties
// broken by newest creation first.
func SortByPriority(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Partition splits the priority-sorted collection into upcoming and overdue
// buckets relative to now.
func Partition(tasks []model.Task, now time.Time) Buckets {
	sorted := SortByPriority(tasks)
	buckets := Buckets{
		Upcoming: make([]model.Task, 0, len(sorted)),
		Overdue:  make([]model.Task, 0),
	}
	for _, task := range sorted {
		if task.Overdue(now) {
			buckets.Overdue = append(buckets.Overdue, task)
		} else {
			buckets.Upcoming = append(buckets.Upcoming, task)
		}
	}
	sort.SliceStable(buckets.Overdue, func(i, j int) bool {
		a, b := buckets.Overdue[i], buckets.Overdue[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.DueDate.Before(*b.DueDate)
	})
	return buckets
}

// Productivity is the share of upcoming tasks marked complete over the whole
// collection, rounded to a whole percent. An empty collection counts as 100.
func (b Buckets) Productivity() int {
	total := len(b.Upcoming) + len(b.Overdue)
	if total == 0 {
		return 100
	}
	completed := 0
	for _, task := range b.Upcoming {
		if task.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
