package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/focusboard/internal/board"
	"github.com/sandeepkv93/focusboard/internal/leaderboard"
	"github.com/sandeepkv93/focusboard/internal/model"
)

func boardFromTasks(tasks []model.Task) *board.Board {
	return board.New(tasks)
}

func ledgerFrom(entries []model.LeaderboardEntry, selected string) *leaderboard.Ledger {
	return leaderboard.New(entries, selected)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func formatDue(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("Jan 2 15:04")
}
