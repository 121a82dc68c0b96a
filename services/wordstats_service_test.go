package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingoTrackAPI/internal/word"
)

func strPtr(s string) *string {
	return &s
}

func record(createdAt time.Time, level, wordType *string) *word.Record {
	return &word.Record{
		ID:        uuid.New(),
		UserID:    "user-1",
		CEFRLevel: level,
		WordType:  wordType,
		CreatedAt: createdAt,
	}
}

func TestGetStatsBuckets(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	store := &memWordStore{records: []*word.Record{
		record(now.Add(-48*time.Hour), strPtr("A1"), strPtr("noun")),
		record(now.Add(-49*time.Hour), strPtr("A1"), strPtr("verb")),
		record(now.Add(-50*time.Hour), strPtr("B2"), nil),
		record(now.Add(-51*time.Hour), nil, strPtr("noun")),
		record(now.Add(-52*time.Hour), strPtr(""), strPtr("")),
	}}

	svc := NewWordStatsService(store)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetStats(context.Background(), "user-1", 5, 30)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalWords)
	assert.Equal(t, map[string]int{"A1": 2, "B2": 1, "Unknown": 2}, stats.ByLevel)
	assert.Equal(t, map[string]int{"noun": 2, "verb": 1, "Unknown": 2}, stats.ByType)
	assert.Equal(t, 5, stats.DailyGoal)
	assert.Equal(t, 30, stats.WeeklyGoal)
}

func TestGetStatsTodayIsCalendarBounded(t *testing.T) {
	// 00:30 on the 11th: a record from 23:00 on the 10th is only 90 minutes
	// old yet does not count as today.
	now := time.Date(2024, 1, 11, 0, 30, 0, 0, time.UTC)
	store := &memWordStore{records: []*word.Record{
		record(time.Date(2024, 1, 11, 0, 15, 0, 0, time.UTC), nil, nil),
		record(time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC), nil, nil),
	}}

	svc := NewWordStatsService(store)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetStats(context.Background(), "user-1", 5, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.WordsToday)
	assert.Equal(t, 2, stats.WordsThisWeek)
}

func TestGetStatsWeekIsRollingWindow(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	store := &memWordStore{records: []*word.Record{
		// 6 days 23 hours ago: inside the rolling window.
		record(now.Add(-(6*24+23)*time.Hour), nil, nil),
		// 7 days 1 hour ago: outside, even though it is within the current
		// calendar week depending on the weekday.
		record(now.Add(-(7*24+1)*time.Hour), nil, nil),
	}}

	svc := NewWordStatsService(store)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetStats(context.Background(), "user-1", 5, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.WordsThisWeek)
	assert.Equal(t, 0, stats.WordsToday)
	assert.Equal(t, 2, stats.TotalWords)
}

func TestGetStatsEmpty(t *testing.T) {
	svc := NewWordStatsService(&memWordStore{})
	svc.now = func() time.Time { return time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC) }

	stats, err := svc.GetStats(context.Background(), "user-1", 5, 30)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalWords)
	assert.Empty(t, stats.ByLevel)
	assert.Empty(t, stats.ByType)
}

func TestGetStatsStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewWordStatsService(&memWordStore{err: storeErr})

	_, err := svc.GetStats(context.Background(), "user-1", 5, 30)
	assert.ErrorIs(t, err, storeErr)
}
