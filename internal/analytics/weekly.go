package analytics

import (
	"time"

	"github.com/nkagupta/HT-sub000/internal/habit"
)

// weekStart returns the Sunday opening the week containing the given date.
func weekStart(t time.Time) time.Time {
	day := habit.Day(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeeklyBuckets counts distinct done-days per Sunday-anchored week. The
// result always has exactly weekCount entries, newest week first and
// zero-filled, so downstream trend comparison sees dense, aligned slots.
// Dates after asOf or older than the window are ignored.
func WeeklyBuckets(doneDates []time.Time, weekCount int, asOf time.Time) []WeeklyBucket {
	if weekCount <= 0 {
		return []WeeklyBucket{}
	}

	buckets := make([]WeeklyBucket, weekCount)
	for i := range buckets {
		buckets[i].WeekIndex = i
	}

	currentWeek := weekStart(asOf)
	today := habit.Day(asOf)

	for _, day := range sortedUniqueDays(doneDates) {
		if day.After(today) {
			continue
		}
		index := int(currentWeek.Sub(weekStart(day)).Hours() / 24 / 7)
		if index < 0 || index >= weekCount {
			continue
		}
		buckets[index].DoneCount++
	}

	return buckets
}
