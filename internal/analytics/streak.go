package analytics

import (
	"sort"
	"time"

	"github.com/nkagupta/HT-sub000/internal/habit"
)

// CurrentStreak counts consecutive done-days ending at the most recent
// done-date, provided that date is today or yesterday relative to asOf.
// Anchoring to the most recent completion (with the one-day grace) means a
// streak is not lost just because today has not been logged yet; a most
// recent done-date older than yesterday is a broken streak and counts 0.
func CurrentStreak(doneDates []time.Time, asOf time.Time) int {
	if len(doneDates) == 0 {
		return 0
	}

	today := habit.Day(asOf)
	days := sortedUniqueDays(doneDates)

	// Walk from the newest date not after today.
	i := len(days) - 1
	for i >= 0 && days[i].After(today) {
		i--
	}
	if i < 0 {
		return 0
	}

	anchor := days[i]
	if today.Sub(anchor) > 24*time.Hour {
		return 0
	}

	streak := 1
	for ; i > 0; i-- {
		if days[i].Sub(days[i-1]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive done-days anywhere
// in the history.
func LongestStreak(doneDates []time.Time) int {
	if len(doneDates) == 0 {
		return 0
	}

	days := sortedUniqueDays(doneDates)

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// sortedUniqueDays truncates to calendar days, dedupes and sorts ascending.
func sortedUniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := habit.Day(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
