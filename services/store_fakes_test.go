package services

import (
	"context"
	"sync"

	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/internal/word"
	"lingoTrackAPI/storage"
)

// memProfileStore mimics the real store's snapshot semantics: Get hands out a
// copy, and only Update mutates the stored aggregate.
type memProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*profile.Profile
	updates  int
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]*profile.Profile)}
}

func cloneProfile(p *profile.Profile) *profile.Profile {
	c := *p
	if p.LastActivityDate != nil {
		d := *p.LastActivityDate
		c.LastActivityDate = &d
	}
	if p.CEFRLevel != nil {
		l := *p.CEFRLevel
		c.CEFRLevel = &l
	}
	c.ActivityHistory = make(map[string]profile.DayActivity, len(p.ActivityHistory))
	for date, day := range p.ActivityHistory {
		c.ActivityHistory[date] = day
	}
	c.Achievements = append([]achievement.Achievement{}, p.Achievements...)
	return &c
}

func (s *memProfileStore) seed(p *profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = cloneProfile(p)
}

func (s *memProfileStore) Get(_ context.Context, userID string) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.profiles[userID]
	if !exists {
		return nil, storage.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (s *memProfileStore) Upsert(_ context.Context, userID string) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.profiles[userID]
	if !exists {
		p = &profile.Profile{
			UserID:                 userID,
			DailyGoal:              profile.DefaultDailyGoal,
			WeeklyGoal:             profile.DefaultWeeklyGoal,
			StreakFreezesAvailable: profile.DefaultStreakFreezes,
			ActivityHistory:        map[string]profile.DayActivity{},
			Achievements:           []achievement.Achievement{},
		}
		s.profiles[userID] = p
	}
	return cloneProfile(p), nil
}

func (s *memProfileStore) Update(_ context.Context, userID string, upd *storage.ProfileUpdate) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.profiles[userID]
	if !exists {
		return nil, storage.ErrProfileNotFound
	}

	if upd.CurrentStreak != nil {
		p.CurrentStreak = *upd.CurrentStreak
	}
	if upd.LongestStreak != nil {
		p.LongestStreak = *upd.LongestStreak
	}
	if upd.TotalWordsAdded != nil {
		p.TotalWordsAdded = *upd.TotalWordsAdded
	}
	if upd.TotalSentencesScored != nil {
		p.TotalSentencesScored = *upd.TotalSentencesScored
	}
	if upd.DailyGoal != nil {
		p.DailyGoal = *upd.DailyGoal
	}
	if upd.WeeklyGoal != nil {
		p.WeeklyGoal = *upd.WeeklyGoal
	}
	if upd.StreakFreezesAvailable != nil {
		p.StreakFreezesAvailable = *upd.StreakFreezesAvailable
	}
	if upd.LastActivityDate != nil {
		d := *upd.LastActivityDate
		p.LastActivityDate = &d
	}
	if upd.ActivityHistory != nil {
		p.ActivityHistory = make(map[string]profile.DayActivity, len(upd.ActivityHistory))
		for date, day := range upd.ActivityHistory {
			p.ActivityHistory[date] = day
		}
	}
	if upd.Achievements != nil {
		p.Achievements = append([]achievement.Achievement{}, upd.Achievements...)
	}

	s.updates++
	return cloneProfile(p), nil
}

func (s *memProfileStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

type memWordStore struct {
	records []*word.Record
	err     error
}

func (s *memWordStore) Query(_ context.Context, _ string) ([]*word.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}
