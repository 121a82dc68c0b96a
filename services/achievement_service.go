package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/storage"
)

type AchievementService struct {
	profiles storage.ProfileStore
	now      func() time.Time
}

func NewAchievementService(profiles storage.ProfileStore) *AchievementService {
	return &AchievementService{
		profiles: profiles,
		now:      time.Now,
	}
}

// Evaluate runs the static rule table against the profile snapshot and
// persists any new unlocks in one append-only write. Ids that are already
// unlocked are skipped, so calling this repeatedly is harmless. The unlock
// timestamp is the evaluation time, not the moment the threshold was first
// crossed.
func (s *AchievementService) Evaluate(ctx context.Context, p *profile.Profile) ([]achievement.Achievement, error) {
	snapshot := achievement.Progress{
		TotalWordsAdded:      p.TotalWordsAdded,
		TotalSentencesScored: p.TotalSentencesScored,
		CurrentStreak:        p.CurrentStreak,
	}

	var unlocked []achievement.Achievement
	for _, rule := range achievement.Rules {
		if p.HasAchievement(rule.ID) {
			continue
		}
		if !rule.Criteria(snapshot) {
			continue
		}
		unlocked = append(unlocked, achievement.Achievement{
			ID:            uuid.New(),
			AchievementID: rule.ID,
			Name:          rule.Name,
			Description:   rule.Description,
			Icon:          rule.Icon,
			UnlockedAt:    s.now(),
		})
	}

	if len(unlocked) == 0 {
		return nil, nil
	}

	all := make([]achievement.Achievement, 0, len(p.Achievements)+len(unlocked))
	all = append(all, p.Achievements...)
	all = append(all, unlocked...)

	updated, err := s.profiles.Update(ctx, p.UserID, &storage.ProfileUpdate{
		Achievements: all,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist achievements: %w", err)
	}
	p.Achievements = updated.Achievements

	achievementsUnlockedTotal.Add(float64(len(unlocked)))
	return unlocked, nil
}
