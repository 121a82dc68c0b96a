package profile

import (
	"lingoTrackAPI/internal/achievement"
	"lingoTrackAPI/internal/word"
)

type RecordActivityRequest struct {
	WordsAdded      int `json:"wordsAdded"`
	SentencesScored int `json:"sentencesScored"`
}

type UpdateGoalsRequest struct {
	DailyGoal  int `json:"dailyGoal"`
	WeeklyGoal int `json:"weeklyGoal"`
}

type RecordActivityResponse struct {
	Profile         *Profile                  `json:"profile"`
	NewAchievements []achievement.Achievement `json:"newAchievements"`
}

// WithStats is the getProfile view: the aggregate plus the goal-progress
// breakdown derived from the user's word records.
type WithStats struct {
	*Profile
	WordStats *word.Stats `json:"wordStats"`
}
