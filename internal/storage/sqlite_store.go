package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/focusboard/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

const (
	keyTasks        = "tasks"
	keyTheme        = "theme"
	keyLeaderboard  = "leaderboard"
	keySelectedName = "selectedName"
	keyLastVisit    = "lastVisit"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migrations.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// LoadTasks returns the stored task collection. A missing or unreadable
// document yields an empty collection so a corrupted store never blocks
// startup.
func (s *SQLiteStore) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := s.getRaw(ctx, keyTasks)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return []model.Task{}, nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return s.putJSON(ctx, keyTasks, tasks)
}

func (s *SQLiteStore) LoadTheme(ctx context.Context) (model.Theme, error) {
	raw, err := s.getRaw(ctx, keyTheme)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.ThemeLight, nil
		}
		return "", err
	}
	var theme model.Theme
	if err := json.Unmarshal(raw, &theme); err != nil || !theme.IsValid() {
		return model.ThemeLight, nil
	}
	return theme, nil
}

func (s *SQLiteStore) SaveTheme(ctx context.Context, theme model.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("storage: invalid theme %q", theme)
	}
	return s.putJSON(ctx, keyTheme, theme)
}

func (s *SQLiteStore) LoadLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	raw, err := s.getRaw(ctx, keyLeaderboard)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.LeaderboardEntry{}, nil
		}
		return nil, err
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []model.LeaderboardEntry{}, nil
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return entries, nil
}

func (s *SQLiteStore) SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error {
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return s.putJSON(ctx, keyLeaderboard, entries)
}

func (s *SQLiteStore) LoadSelectedName(ctx context.Context) (string, error) {
	raw, err := s.getRaw(ctx, keySelectedName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", nil
	}
	return name, nil
}

func (s *SQLiteStore) SaveSelectedName(ctx context.Context, name string) error {
	return s.putJSON(ctx, keySelectedName, name)
}

// LoadLastVisit returns the zero time when no visit was ever recorded.
func (s *SQLiteStore) LoadLastVisit(ctx context.Context) (time.Time, error) {
	raw, err := s.getRaw(ctx, keyLastVisit)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	var stamp string
	if err := json.Unmarshal(raw, &stamp); err != nil {
		return time.Time{}, nil
	}
	at, err := time.Parse(sqliteTimeLayout, stamp)
	if err != nil {
		return time.Time{}, nil
	}
	return at, nil
}

func (s *SQLiteStore) SaveLastVisit(ctx context.Context, at time.Time) error {
	return s.putJSON(ctx, keyLastVisit, at.UTC().Format(sqliteTimeLayout))
}

func (s *SQLiteStore) getRaw(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, raw, time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}
