package analytics

import (
	"sort"
	"time"

	"github.com/nkagupta/HT-sub000/internal/habit"
)

// UserTotal aggregates one user's cross-habit score: counter habits sum
// their minute-normalized daily contributions (swimming hours become
// minutes wherever they mix with weight/exercise), gauge habits contribute
// their latest non-zero reading. Units are deliberately mixed; the total is
// a relative competition score, not a physical quantity.
func UserTotal(habits []habit.Habit, completions []habit.Completion, asOf time.Time) float64 {
	today := habit.Day(asOf)
	byHabit := make(map[string][]habit.Completion, len(habits))
	for _, c := range completions {
		if c.Date.After(today) {
			continue
		}
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}

	total := 0.0
	for _, h := range habits {
		if habit.IsGauge(h.Type) {
			total += latestReading(h, byHabit[h.ID], today)
			continue
		}
		for _, c := range byHabit[h.ID] {
			total += habit.MinuteContribution(h.Type, c.Payload)
		}
	}
	return total
}

// UserWeekDelta is the user's done-day count for the current week minus the
// prior week, summed across habits. Feeds the most-improved sub-ranking.
func UserWeekDelta(habits []habit.Habit, completions []habit.Completion, asOf time.Time) int {
	delta := 0
	for _, h := range habits {
		buckets := WeeklyBuckets(doneDatesFor(h, completions), 2, asOf)
		delta += buckets[0].DoneCount - buckets[1].DoneCount
	}
	return delta
}

// doneDatesFor extracts the dates on which the habit's predicate holds.
func doneDatesFor(h habit.Habit, completions []habit.Completion) []time.Time {
	var dates []time.Time
	for _, c := range completions {
		if c.HabitID != h.ID {
			continue
		}
		if habit.IsDone(h.Type, c.Payload) {
			dates = append(dates, c.Date)
		}
	}
	return dates
}

// Rank orders users by descending total with a stable ascending-user-id
// tie-break, so recomputation and input order never change the output.
func Rank(totals map[string]float64) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(totals))
	for userID, total := range totals {
		entries = append(entries, LeaderboardEntry{UserID: userID, Total: total})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RankDeltas orders users by descending week-over-week delta with the same
// deterministic tie-break as Rank.
func RankDeltas(deltas map[string]int) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(deltas))
	for userID, delta := range deltas {
		entries = append(entries, LeaderboardEntry{UserID: userID, WeekDelta: delta})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WeekDelta != entries[j].WeekDelta {
			return entries[i].WeekDelta > entries[j].WeekDelta
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
