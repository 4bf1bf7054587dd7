package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := NewTask("Write progress report", PriorityHigh, nil, now)
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if task.Completed || task.NotificationSent {
		t.Fatalf("new task should start incomplete and unnotified: %+v", task)
	}
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestTaskValidateInvalidPriority(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Text:      "Bad priority",
		Priority:  Priority("urgent"),
		CreatedAt: now,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestNewTaskProducesUniqueIDs(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	a := NewTask("one", PriorityLow, nil, now)
	b := NewTask("two", PriorityLow, nil, now)
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %q", a.ID)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Fatal("high must rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Fatal("medium must rank before low")
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{}, false},
		{"due in future", Task{DueDate: &future}, false},
		{"due in past incomplete", Task{DueDate: &past}, true},
		{"due in past completed", Task{DueDate: &past, Completed: true}, false},
	}
	for _, tc := range cases {
		if got := tc.task.Overdue(now); got != tc.want {
			t.Fatalf("%s: overdue=%v, want %v", tc.name, got, tc.want)
		}
	}
}
