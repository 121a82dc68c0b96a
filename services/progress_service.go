package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/calendar"
	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/internal/streak"
	"lingoTrackAPI/storage"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoStreakFreezes = errors.New("no streak freezes available")
)

// userLocks hands out one mutex per user id. Every mutating operation on a
// profile runs under its user's mutex, so two concurrent requests can never
// interleave their read-modify-write cycles and lose an update.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) get(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, exists := l.locks[userID]
	if !exists {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

type ProgressService struct {
	profiles     storage.ProfileStore
	achievements *AchievementService
	locks        *userLocks

	// now is swapped out in tests to pin "today".
	now func() time.Time
}

func NewProgressService(profiles storage.ProfileStore, achievements *AchievementService) *ProgressService {
	return &ProgressService{
		profiles:     profiles,
		achievements: achievements,
		locks:        newUserLocks(),
		now:          time.Now,
	}
}

// GetProfile fetches the profile, creating it with defaults on first fetch.
func (s *ProgressService) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	p, err := s.profiles.Upsert(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// RecordActivity folds an activity event (N words added, M sentences scored)
// into today's history bucket, advances the streak, and bumps the lifetime
// totals, all in a single profile write. The updated snapshot is then run
// through the achievement rules; that second write is deliberately separate,
// since the rules re-evaluate idempotently on the next event.
func (s *ProgressService) RecordActivity(ctx context.Context, userID string, wordsAdded, sentencesScored int) (*profile.Profile, []achievement.Achievement, error) {
	if wordsAdded < 0 || sentencesScored < 0 {
		return nil, nil, fmt.Errorf("%w: activity counts must be non-negative", ErrInvalidInput)
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	today := s.now().Format(profile.DateLayout)

	history := make(map[string]profile.DayActivity, len(p.ActivityHistory)+1)
	for date, day := range p.ActivityHistory {
		history[date] = day
	}
	day := history[today]
	day.Words += wordsAdded
	day.Sentences += sentencesScored
	history[today] = day

	currentStreak := streak.Next(p.CurrentStreak, p.LastActivityDate, s.now())
	longestStreak := streak.Longest(p.LongestStreak, currentStreak)
	totalWords := p.TotalWordsAdded + wordsAdded
	totalSentences := p.TotalSentencesScored + sentencesScored

	updated, err := s.profiles.Update(ctx, userID, &storage.ProfileUpdate{
		CurrentStreak:        &currentStreak,
		LongestStreak:        &longestStreak,
		TotalWordsAdded:      &totalWords,
		TotalSentencesScored: &totalSentences,
		LastActivityDate:     &today,
		ActivityHistory:      history,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record activity: %w", err)
	}

	activityEventsTotal.Inc()

	newAchievements, err := s.achievements.Evaluate(ctx, updated)
	if err != nil {
		// The activity write is already durable; stale achievements heal on
		// the next event.
		log.Printf("RecordActivity: achievement evaluation failed for user %s: %v", userID, err)
		return updated, nil, nil
	}

	return updated, newAchievements, nil
}

// UpdateGoals sets the daily and weekly word goals.
func (s *ProgressService) UpdateGoals(ctx context.Context, userID string, dailyGoal, weeklyGoal int) (*profile.Profile, error) {
	if dailyGoal <= 0 || weeklyGoal <= 0 {
		return nil, fmt.Errorf("%w: goals must be positive", ErrInvalidInput)
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	updated, err := s.profiles.Update(ctx, userID, &storage.ProfileUpdate{
		DailyGoal:  &dailyGoal,
		WeeklyGoal: &weeklyGoal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update goals: %w", err)
	}

	return updated, nil
}

// GetActivityHistory returns a dense, oldest-first window of the last `days`
// calendar days.
func (s *ProgressService) GetActivityHistory(ctx context.Context, userID string, days int) ([]calendar.DayEntry, error) {
	if days < calendar.MinDays || days > calendar.MaxDays {
		return nil, fmt.Errorf("%w: days must be between %d and %d", ErrInvalidInput, calendar.MinDays, calendar.MaxDays)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return calendar.Expand(p.ActivityHistory, days, s.now()), nil
}

// UseStreakFreeze spends one freeze to mark today as covered without real
// activity. The streak itself and the history map are left untouched.
func (s *ProgressService) UseStreakFreeze(ctx context.Context, userID string) (*profile.Profile, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.StreakFreezesAvailable <= 0 {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNoStreakFreezes)
	}

	freezes := p.StreakFreezesAvailable - 1
	today := s.now().Format(profile.DateLayout)

	updated, err := s.profiles.Update(ctx, userID, &storage.ProfileUpdate{
		StreakFreezesAvailable: &freezes,
		LastActivityDate:       &today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to use streak freeze: %w", err)
	}

	streakFreezesUsedTotal.Inc()
	return updated, nil
}
