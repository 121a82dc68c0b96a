package profile

import (
	"time"

	"lingoTrackAPI/internal/achievement"
)

// DateLayout is the canonical calendar-day format. Every date comparison in
// the progress core happens at this granularity.
const DateLayout = "2006-01-02"

// Defaults applied when a profile is created lazily on first fetch.
const (
	DefaultDailyGoal     = 5
	DefaultWeeklyGoal    = 30
	DefaultStreakFreezes = 2
)

type DayActivity struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
}

type Profile struct {
	UserID                 string                    `json:"userId" db:"user_id"`
	CurrentStreak          int                       `json:"currentStreak" db:"current_streak"`
	LongestStreak          int                       `json:"longestStreak" db:"longest_streak"`
	TotalWordsAdded        int                       `json:"totalWordsAdded" db:"total_words_added"`
	TotalSentencesScored   int                       `json:"totalSentencesScored" db:"total_sentences_scored"`
	DailyGoal              int                       `json:"dailyGoal" db:"daily_goal"`
	WeeklyGoal             int                       `json:"weeklyGoal" db:"weekly_goal"`
	StreakFreezesAvailable int                       `json:"streakFreezesAvailable" db:"streak_freezes_available"`
	LastActivityDate       *string                   `json:"lastActivityDate" db:"last_activity_date"`
	ActivityHistory        map[string]DayActivity    `json:"activityHistory" db:"activity_history"`
	Achievements           []achievement.Achievement `json:"achievements" db:"achievements"`
	CEFRLevel              *string                   `json:"cefrLevel,omitempty" db:"cefr_level"`
	CreatedAt              time.Time                 `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time                 `json:"updatedAt" db:"updated_at"`
}

// HasAchievement reports whether the unlock with the given rule id is already
// present, so the engine never appends a duplicate.
func (p *Profile) HasAchievement(achievementID string) bool {
	for _, a := range p.Achievements {
		if a.AchievementID == achievementID {
			return true
		}
	}
	return false
}
