package calendar

import (
	"time"

	"lingoTrackAPI/internal/profile"
)

// Bounds for the history window a caller may request.
const (
	MinDays = 1
	MaxDays = 365
)

type DayEntry struct {
	Date      string `json:"date"`
	Words     int    `json:"words"`
	Sentences int    `json:"sentences"`
}

// Expand turns the sparse activity map into a dense window of exactly `days`
// entries covering [today-(days-1), today], oldest first. Dates missing from
// the map come back zero-filled.
func Expand(history map[string]profile.DayActivity, days int, today time.Time) []DayEntry {
	entries := make([]DayEntry, 0, days)

	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(profile.DateLayout)
		day := history[date]
		entries = append(entries, DayEntry{
			Date:      date,
			Words:     day.Words,
			Sentences: day.Sentences,
		})
	}

	return entries
}
