package alerts

import (
	"testing"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}

func dueTask(id string, due time.Time) model.Task {
	return model.Task{ID: id, Text: id, DueDate: &due}
}

func TestEngineEmitsSoonestDeadlineFirst(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	// Deadlines beyond the lookahead window give each event a distinct
	// future fire time, so emission order is the deadline order.
	now := time.Now().UTC()
	engine.Sync([]model.Task{
		dueTask("later", now.Add(Lookahead+120*time.Millisecond)),
		dueTask("sooner", now.Add(Lookahead+20*time.Millisecond)),
	}, now)

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.TaskID != "sooner" || second.TaskID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.TaskID, second.TaskID)
	}
}

func TestEngineFiresImmediatelyWhenWindowAlreadyOpen(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	engine.Sync([]model.Task{dueTask("open-window", now.Add(2*time.Minute))}, now)

	ev := waitEvent(t, engine.C(), time.Second)
	if ev.TaskID != "open-window" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestSyncSkipsIneligibleTasks(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	due := now.Add(time.Minute)
	completed := dueTask("done", due)
	completed.Completed = true
	notified := dueTask("sent", due)
	notified.NotificationSent = true
	undated := model.Task{ID: "nodue", Text: "nodue"}

	engine.Sync([]model.Task{completed, notified, undated}, now)

	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected event for ineligible task: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSyncReplacesPreviousQueue(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	engine.Sync([]model.Task{dueTask("stale", now.Add(Lookahead+80*time.Millisecond))}, now)
	engine.Sync([]model.Task{dueTask("fresh", now.Add(Lookahead+80*time.Millisecond))}, now)

	ev := waitEvent(t, engine.C(), time.Second)
	if ev.TaskID != "fresh" {
		t.Fatalf("expected resynced event, got %+v", ev)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("stale event survived resync: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	tasks := make([]model.Task, 0, 25)
	for i := 0; i < 25; i++ {
		tasks = append(tasks, dueTask(string(rune('a'+i)), now.Add(20*time.Millisecond)))
	}
	engine.Sync(tasks, now)

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}
