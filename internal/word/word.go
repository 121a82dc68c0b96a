package word

import (
	"time"

	"github.com/google/uuid"
)

// UnknownBucket collects records with no CEFR level or word type set.
const UnknownBucket = "Unknown"

// Record is the slice of a vocabulary entry the progress core reads. The full
// word row (translations, review schedule) is owned elsewhere; NextReviewAt is
// carried only because the "due" convention is shared with the review feature.
type Record struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       string     `json:"userId" db:"user_id"`
	CEFRLevel    *string    `json:"cefrLevel" db:"cefr_level"`
	WordType     *string    `json:"wordType" db:"word_type"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	NextReviewAt *time.Time `json:"nextReviewAt,omitempty" db:"next_review_at"`
}

// Stats is the read-only goal-progress view. WordsToday uses a calendar-day
// boundary while WordsThisWeek is a rolling 7x24h window; the two windows are
// intentionally not aligned.
type Stats struct {
	TotalWords    int            `json:"totalWords"`
	ByLevel       map[string]int `json:"byLevel"`
	ByType        map[string]int `json:"byType"`
	WordsToday    int            `json:"wordsToday"`
	WordsThisWeek int            `json:"wordsThisWeek"`
	DailyGoal     int            `json:"dailyGoal"`
	WeeklyGoal    int            `json:"weeklyGoal"`
}
