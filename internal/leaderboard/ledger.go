package leaderboard

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

var ErrNoSelection = errors.New("leaderboard: no participant selected")

// Ledger accumulates focus minutes per named participant. Names are unique
// keys; minutes only grow.
type Ledger struct {
	Entries  []model.LeaderboardEntry
	Selected string
}

func New(entries []model.LeaderboardEntry, selected string) *Ledger {
	if entries == nil {
		entries = make([]model.LeaderboardEntry, 0)
	}
	return &Ledger{Entries: entries, Selected: selected}
}

// EnsureName trims the name, appends a zero-minute entry if it is new, and
// marks it as the selected participant. Empty names are a no-op.
func (l *Ledger) EnsureName(name string, now time.Time) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	if l.indexOf(trimmed) < 0 {
		l.Entries = append(l.Entries, model.LeaderboardEntry{
			Name:      trimmed,
			UpdatedAt: now,
		})
	}
	l.Selected = trimmed
	return true
}

// AddFocusMinutes credits the selected participant. Negative deltas are
// clamped to zero. Returns ErrNoSelection when no participant is selected.
func (l *Ledger) AddFocusMinutes(minutes int, now time.Time) error {
	if strings.TrimSpace(l.Selected) == "" {
		return ErrNoSelection
	}
	if minutes < 0 {
		minutes = 0
	}
	idx := l.indexOf(l.Selected)
	if idx < 0 {
		l.Entries = append(l.Entries, model.LeaderboardEntry{Name: l.Selected})
		idx = len(l.Entries) - 1
	}
	l.Entries[idx].Minutes += minutes
	l.Entries[idx].UpdatedAt = now
	return nil
}

// Reset clears every entry and the selection pointer.
func (l *Ledger) Reset() {
	l.Entries = make([]model.LeaderboardEntry, 0)
	l.Selected = ""
}

// Ranking returns entries ordered by minutes descending, ties broken by the
// most recent update.
func (l *Ledger) Ranking() []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(l.Entries))
	copy(out, l.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Names lists participant names sorted alphabetically, for pickers.
func (l *Ledger) Names() []string {
	out := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

func (l *Ledger) indexOf(name string) int {
	for i, e := range l.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}
