// Package storage persists application state in a small key-value table
// backed by SQLite. Each key holds one JSON document; typed accessors keep
// the rest of the program away from raw keys and encoding details.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/focusboard/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

type Store interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error

	LoadTheme(ctx context.Context) (model.Theme, error)
	SaveTheme(ctx context.Context, theme model.Theme) error

	LoadLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error

	LoadSelectedName(ctx context.Context) (string, error)
	SaveSelectedName(ctx context.Context, name string) error

	LoadLastVisit(ctx context.Context) (time.Time, error)
	SaveLastVisit(ctx context.Context, at time.Time) error

	Close() error
}
