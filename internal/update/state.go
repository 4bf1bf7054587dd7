package update

import (
	"context"
	"fmt"
)

// loadPersistedState hydrates the model from the store. Load failures fall
// back to empty state so a broken database never blocks the UI.
func (m *Model) loadPersistedState() {
	if m.store == nil {
		return
	}
	ctx := context.Background()

	if tasks, err := m.store.LoadTasks(ctx); err == nil {
		m.Board = boardFromTasks(tasks)
	}
	if theme, err := m.store.LoadTheme(ctx); err == nil {
		m.Theme = theme
	}
	entries, entriesErr := m.store.LoadLeaderboard(ctx)
	selected, selectedErr := m.store.LoadSelectedName(ctx)
	if entriesErr == nil && selectedErr == nil {
		m.Ledger = ledgerFrom(entries, selected)
	}
	if last, err := m.store.LoadLastVisit(ctx); err == nil {
		m.LastVisit = last
		now := m.clock()
		if !last.IsZero() && !sameCalendarDay(last, now) {
			m.NewDayPrompt = true
		}
	}
	m.syncAlerts()
}

func (m *Model) persistTasks() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveTasks(context.Background(), m.Board.Tasks); err != nil {
		m.LastError = fmt.Errorf("save tasks: %w", err)
	}
}

func (m *Model) persistTheme() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveTheme(context.Background(), m.Theme); err != nil {
		m.LastError = fmt.Errorf("save theme: %w", err)
	}
}

func (m *Model) persistLeaderboard() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	if err := m.store.SaveLeaderboard(ctx, m.Ledger.Entries); err != nil {
		m.LastError = fmt.Errorf("save leaderboard: %w", err)
	}
	if err := m.store.SaveSelectedName(ctx, m.Ledger.Selected); err != nil {
		m.LastError = fmt.Errorf("save selected name: %w", err)
	}
}

func (m *Model) persistLastVisit() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveLastVisit(context.Background(), m.clock()); err != nil {
		m.LastError = fmt.Errorf("save last visit: %w", err)
	}
}

// syncAlerts rebuilds the alert queue from the live task collection. Called
// after every task mutation and on the minute tick.
func (m *Model) syncAlerts() {
	if m.Alerts == nil {
		return
	}
	m.Alerts.Sync(m.Board.Tasks, m.clock())
}
