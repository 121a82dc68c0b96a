package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) *string {
	return &s
}

func TestNext(t *testing.T) {
	today := time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  int
		lastDate *string
		want     int
	}{
		{"no prior activity starts at 1", 0, nil, 1},
		{"same day leaves streak unchanged", 5, date("2024-01-11"), 5},
		{"yesterday extends streak", 5, date("2024-01-10"), 6},
		{"two day gap resets", 5, date("2024-01-09"), 1},
		{"long gap resets", 42, date("2023-11-02"), 1},
		{"nil resets even with a running streak", 9, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.current, tt.lastDate, today))
		})
	}
}

func TestNextIgnoresTimeOfDay(t *testing.T) {
	// Activity just after midnight still counts yesterday as adjacent.
	today := time.Date(2024, 1, 11, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 4, Next(3, date("2024-01-10"), today))
}

func TestLongest(t *testing.T) {
	assert.Equal(t, 10, Longest(10, 6))
	assert.Equal(t, 11, Longest(10, 11))
	assert.Equal(t, 1, Longest(0, 1))
}
