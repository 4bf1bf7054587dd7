package board

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

func TestAddRejectsEmptyAndWhitespaceText(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	for _, input := range []string{"", "   ", "\t"} {
		if _, err := b.Add(input, model.PriorityMedium, nil, now); !errors.Is(err, ErrEmptyText) {
			t.Fatalf("input %q: expected ErrEmptyText, got %v", input, err)
		}
	}
	if len(b.Tasks) != 0 {
		t.Fatalf("collection changed on rejected input: %+v", b.Tasks)
	}
}

func TestAddDeduplicatesCaseInsensitively(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	if _, err := b.Add("Buy milk", model.PriorityLow, nil, now); err != nil {
		t.Fatalf("first add: %v", err)
	}
	for _, dup := range []string{"buy milk", "  BUY MILK  ", "Buy Milk"} {
		if _, err := b.Add(dup, model.PriorityHigh, nil, now); !errors.Is(err, ErrDuplicateTask) {
			t.Fatalf("input %q: expected ErrDuplicateTask, got %v", dup, err)
		}
	}
	if len(b.Tasks) != 1 {
		t.Fatalf("expected one surviving task, got %d", len(b.Tasks))
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	if _, err := b.Add("first", model.PriorityLow, nil, now); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := b.Add("second", model.PriorityLow, nil, now.Add(time.Minute)); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if b.Tasks[0].Text != "second" {
		t.Fatalf("expected newest first in raw order, got %q", b.Tasks[0].Text)
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	task, err := b.Add("flip me", model.PriorityMedium, nil, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	b.Toggle(task.ID)
	b.Toggle(task.ID)
	got, ok := b.Find(task.ID)
	if !ok || got.Completed {
		t.Fatalf("double toggle should restore completed=false, got %+v", got)
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	b := New(nil)
	if b.Toggle("missing") {
		t.Fatal("toggle of unknown id should report false")
	}
}

func TestDeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	if _, err := b.Add("keep", model.PriorityLow, nil, now); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.Delete("missing", now); err != nil {
		t.Fatalf("delete missing id: %v", err)
	}
	if len(b.Tasks) != 1 {
		t.Fatalf("collection changed: %+v", b.Tasks)
	}
}

func TestDeleteLocksOverdueUnlessAdmin(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	b := New(nil)
	task, err := b.Add("missed deadline", model.PriorityHigh, &due, now.Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := b.Delete(task.ID, now); !errors.Is(err, ErrTaskLocked) {
		t.Fatalf("expected ErrTaskLocked, got %v", err)
	}
	if len(b.Tasks) != 1 {
		t.Fatal("locked delete must not change the collection")
	}

	b.Admin = true
	if err := b.Delete(task.ID, now); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(b.Tasks) != 0 {
		t.Fatal("admin delete should remove the task")
	}
}

func TestDeleteCompletedOverdueIsNotLocked(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	b := New(nil)
	task, err := b.Add("finished late", model.PriorityMedium, &due, now.Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b.Toggle(task.ID)

	if err := b.Delete(task.ID, now); err != nil {
		t.Fatalf("completed task should delete freely: %v", err)
	}
}

func TestMarkNotifiedIsMonotonic(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	task, err := b.Add("notify once", model.PriorityLow, nil, now)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !b.MarkNotified(task.ID) {
		t.Fatal("first mark should succeed")
	}
	if b.MarkNotified(task.ID) {
		t.Fatal("second mark should report false")
	}
	got, _ := b.Find(task.ID)
	if !got.NotificationSent {
		t.Fatal("notification flag should stay set")
	}
}

func TestClearEmptiesCollection(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	b := New(nil)
	_, _ = b.Add("a", model.PriorityLow, nil, now)
	_, _ = b.Add("b", model.PriorityLow, nil, now)
	b.Clear()
	if len(b.Tasks) != 0 {
		t.Fatalf("expected empty collection, got %d tasks", len(b.Tasks))
	}
}
