package streak

import (
	"time"

	"lingoTrackAPI/internal/profile"
)

// Next computes the streak value that results from activity recorded today.
// Repeated same-day activity leaves the streak untouched, consecutive-day
// activity extends it, and anything else (no prior activity, or a gap of two
// or more days) resets it to 1.
func Next(current int, lastActivityDate *string, today time.Time) int {
	if lastActivityDate == nil {
		return 1
	}

	switch *lastActivityDate {
	case today.Format(profile.DateLayout):
		return current
	case today.AddDate(0, 0, -1).Format(profile.DateLayout):
		return current + 1
	}

	return 1
}

// Longest keeps the longest-streak invariant: it never drops below the
// current streak.
func Longest(longest, current int) int {
	if current > longest {
		return current
	}
	return longest
}
