package services

import "github.com/prometheus/client_golang/prometheus"

var (
	activityEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_events_total",
			Help: "Total number of recorded activity events",
		},
	)
	achievementsUnlockedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Total number of achievements unlocked",
		},
	)
	streakFreezesUsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "streak_freezes_used_total",
			Help: "Total number of streak freezes consumed",
		},
	)
)

// InitMetrics registers the domain counters. Call this from main.go
func InitMetrics() {
	prometheus.MustRegister(activityEventsTotal)
	prometheus.MustRegister(achievementsUnlockedTotal)
	prometheus.MustRegister(streakFreezesUsedTotal)
}
