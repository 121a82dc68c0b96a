package storage

import (
	"context"
	"errors"

	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/internal/word"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileUpdate carries the fields of a partial profile write. Nil fields are
// left untouched; the whole update lands as a single row UPDATE.
type ProfileUpdate struct {
	CurrentStreak          *int
	LongestStreak          *int
	TotalWordsAdded        *int
	TotalSentencesScored   *int
	DailyGoal              *int
	WeeklyGoal             *int
	StreakFreezesAvailable *int
	LastActivityDate       *string
	ActivityHistory        map[string]profile.DayActivity
	Achievements           []achievement.Achievement
}

// ProfileStore is the durable home of one Profile aggregate per user.
type ProfileStore interface {
	// Get returns the profile or ErrProfileNotFound.
	Get(ctx context.Context, userID string) (*profile.Profile, error)
	// Upsert returns the profile, creating it with the documented defaults
	// if it does not exist yet.
	Upsert(ctx context.Context, userID string) (*profile.Profile, error)
	// Update applies the non-nil fields in one write and returns the updated
	// profile, or ErrProfileNotFound.
	Update(ctx context.Context, userID string, upd *ProfileUpdate) (*profile.Profile, error)
}

// WordStore exposes the per-word records goal progress is derived from. Word
// CRUD and review scheduling live outside this core.
type WordStore interface {
	Query(ctx context.Context, userID string) ([]*word.Record, error)
}
