package analytics

import (
	"time"

	"github.com/nkagupta/HT-sub000/internal/habit"
)

// Trend labels a habit's recent trajectory.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendNew       Trend = "new"
)

const (
	// trendMinSample is the minimum done-days across the lookback before a
	// trend label carries signal; below it everything is "new".
	trendMinSample = 7

	// trendUpperBand / trendLowerBand are the ±20% flap guards around the
	// older mean. Part of the product contract; do not tune casually.
	trendUpperBand = 1.2
	trendLowerBand = 0.8
)

// WeeklyBucket is one dense Sunday-to-Saturday week slot. Index 0 is the
// week containing the as-of date; higher indexes are older.
type WeeklyBucket struct {
	WeekIndex int `json:"week_index"`
	DoneCount int `json:"done_count"`
}

// Projection extrapolates progress against a habit's annual target.
type Projection struct {
	Percentage      float64 `json:"percentage"` // 0..100, pace-based
	CurrentProgress float64 `json:"current_progress"`
	TargetValue     int     `json:"target_value"`
	Unit            string  `json:"unit"`
}

// HabitAnalytics is the full derived view for one habit. It is recomputed
// from the snapshot on every request; nothing here is ever stored.
type HabitAnalytics struct {
	Habit         habit.Habit    `json:"habit"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	WeeklyBuckets []WeeklyBucket `json:"weekly_buckets"`
	Trend         Trend          `json:"trend"`
	Projection    *Projection    `json:"projection,omitempty"` // nil when no target is set
	GeneratedAt   time.Time      `json:"generated_at"`
}

// LeaderboardEntry is one user's row in the competition ranking.
type LeaderboardEntry struct {
	UserID    string  `json:"user_id"`
	Total     float64 `json:"total"` // cross-type relative score, minute-normalized
	Rank      int     `json:"rank"`  // 1-based
	WeekDelta int     `json:"week_delta"`
}

// Leaderboard carries the overall ranking plus the most-improved
// sub-ranking (current week done-days minus prior week done-days).
type Leaderboard struct {
	Entries      []LeaderboardEntry `json:"entries"`
	MostImproved []LeaderboardEntry `json:"most_improved"`
	GeneratedAt  time.Time          `json:"generated_at"`
}
