package achievement

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the numeric snapshot the unlock rules are evaluated against.
type Progress struct {
	TotalWordsAdded      int
	TotalSentencesScored int
	CurrentStreak        int
}

// Rule is a static unlock rule. Rules are evaluated in table order.
type Rule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Criteria    func(p Progress) bool
}

type Achievement struct {
	ID            uuid.UUID `json:"id" db:"id"`
	AchievementID string    `json:"achievementId" db:"achievement_id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Icon          string    `json:"icon" db:"icon"`
	UnlockedAt    time.Time `json:"unlockedAt" db:"unlocked_at"`
}

// Rules is the full unlock table. Order matters: unlocks are appended in the
// order they first pass their criteria.
var Rules = []Rule{
	{
		ID:          "first_word",
		Name:        "First Word",
		Description: "Add your first word",
		Icon:        "🌱",
		Criteria:    func(p Progress) bool { return p.TotalWordsAdded >= 1 },
	},
	{
		ID:          "word_collector_10",
		Name:        "Word Collector",
		Description: "Add 10 words",
		Icon:        "📚",
		Criteria:    func(p Progress) bool { return p.TotalWordsAdded >= 10 },
	},
	{
		ID:          "word_collector_50",
		Name:        "Word Hoarder",
		Description: "Add 50 words",
		Icon:        "🗂️",
		Criteria:    func(p Progress) bool { return p.TotalWordsAdded >= 50 },
	},
	{
		ID:          "word_collector_100",
		Name:        "Lexicon Builder",
		Description: "Add 100 words",
		Icon:        "🏛️",
		Criteria:    func(p Progress) bool { return p.TotalWordsAdded >= 100 },
	},
	{
		ID:          "streak_7",
		Name:        "Week Warrior",
		Description: "Keep a 7 day streak",
		Icon:        "🔥",
		Criteria:    func(p Progress) bool { return p.CurrentStreak >= 7 },
	},
	{
		ID:          "streak_30",
		Name:        "Monthly Master",
		Description: "Keep a 30 day streak",
		Icon:        "🏆",
		Criteria:    func(p Progress) bool { return p.CurrentStreak >= 30 },
	},
	{
		ID:          "sentence_scorer_10",
		Name:        "Sentence Scorer",
		Description: "Score 10 sentences",
		Icon:        "✍️",
		Criteria:    func(p Progress) bool { return p.TotalSentencesScored >= 10 },
	},
}
