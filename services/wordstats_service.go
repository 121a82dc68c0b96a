package services

import (
	"context"
	"fmt"
	"time"

	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/internal/word"
	"lingoTrackAPI/storage"
)

type WordStatsService struct {
	words storage.WordStore
	now   func() time.Time
}

func NewWordStatsService(words storage.WordStore) *WordStatsService {
	return &WordStatsService{
		words: words,
		now:   time.Now,
	}
}

// GetStats derives the goal-progress view from the user's word records.
// WordsToday counts records whose creation date matches today's calendar
// date; WordsThisWeek counts records from the last 7x24 hours. The first is a
// calendar boundary and the second a rolling window; they are intentionally
// not the same kind of window.
func (s *WordStatsService) GetStats(ctx context.Context, userID string, dailyGoal, weeklyGoal int) (*word.Stats, error) {
	records, err := s.words.Query(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query word records: %w", err)
	}

	now := s.now()
	today := now.Format(profile.DateLayout)
	weekStart := now.Add(-7 * 24 * time.Hour)

	stats := &word.Stats{
		ByLevel:    make(map[string]int),
		ByType:     make(map[string]int),
		DailyGoal:  dailyGoal,
		WeeklyGoal: weeklyGoal,
	}

	for _, rec := range records {
		stats.TotalWords++

		level := word.UnknownBucket
		if rec.CEFRLevel != nil && *rec.CEFRLevel != "" {
			level = *rec.CEFRLevel
		}
		stats.ByLevel[level]++

		wordType := word.UnknownBucket
		if rec.WordType != nil && *rec.WordType != "" {
			wordType = *rec.WordType
		}
		stats.ByType[wordType]++

		if rec.CreatedAt.Format(profile.DateLayout) == today {
			stats.WordsToday++
		}
		if rec.CreatedAt.After(weekStart) {
			stats.WordsThisWeek++
		}
	}

	return stats, nil
}
