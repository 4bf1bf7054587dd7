package model

import (
	"errors"
	"strings"
	"time"
)

type LeaderboardEntry struct {
	Name      string    `json:"name"`
	Minutes   int       `json:"minutes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e LeaderboardEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("model: leaderboard entry name is required")
	}
	if e.Minutes < 0 {
		return errors.New("model: leaderboard minutes must be non-negative")
	}
	return nil
}
