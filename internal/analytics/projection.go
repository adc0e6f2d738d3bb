package analytics

import (
	"time"

	"github.com/nkagupta/HT-sub000/internal/config"
	"github.com/nkagupta/HT-sub000/internal/habit"
)

// neutralPercentage is returned before the measurement window has opened,
// when there is no elapsed time to extrapolate from.
const neutralPercentage = 50

// Project extrapolates a habit's logged progress against its annual target
// over the engine's fixed measurement window. It returns nil when the
// habit's free-text target holds no integer: "no target set" is not an
// error, it simply has no computable projection.
//
// The projection is pace-based: progress so far is scaled to the full
// window before being compared to the target, so running ahead of pace
// scores above the naive current/target ratio and falling behind scores
// below it.
func Project(h habit.Habit, completions []habit.Completion, books []habit.Book, asOf time.Time, cfg config.Engine) *Projection {
	target, ok := habit.ParseTarget(h.Target)
	if !ok {
		return nil
	}

	current := currentProgress(h, completions, books, asOf)

	elapsedDays := int(habit.Day(asOf).Sub(habit.Day(cfg.AnnualWindowStart)).Hours() / 24)
	if elapsedDays < 0 {
		elapsedDays = 0
	}

	percentage := float64(neutralPercentage)
	if elapsedDays > 0 {
		expected := current / float64(elapsedDays) * float64(cfg.AnnualWindowDays())
		percentage = clamp(expected/float64(target)*100, 0, 100)
	}

	unit := habit.Unit(h.Type)
	if h.Type == habit.TypeBook {
		// Book progress is counted in finished titles, not raw pages.
		unit = "books"
	}

	return &Projection{
		Percentage:      percentage,
		CurrentProgress: current,
		TargetValue:     target,
		Unit:            unit,
	}
}

// currentProgress totals the habit's progress to date in its native unit.
// Books count finished titles rather than raw pages, and gauges report
// their latest non-zero reading instead of a sum.
func currentProgress(h habit.Habit, completions []habit.Completion, books []habit.Book, asOf time.Time) float64 {
	today := habit.Day(asOf)

	switch {
	case h.Type == habit.TypeBook:
		return float64(finishedBooks(h.ID, completions, books, today))

	case habit.IsGauge(h.Type):
		return latestReading(h, completions, today)

	default:
		total := 0.0
		for _, c := range completions {
			if c.HabitID != h.ID || c.Date.After(today) {
				continue
			}
			total += habit.Contribution(h.Type, c.Payload)
		}
		return total
	}
}

// finishedBooks joins book completions to Book records by normalized title
// and counts titles whose cumulative pages reached the declared total. A
// completion explicitly flagged finished counts even without a matching
// Book record.
func finishedBooks(habitID string, completions []habit.Completion, books []habit.Book, today time.Time) int {
	totalPages := make(map[string]int, len(books))
	for _, b := range books {
		totalPages[habit.NormalizeTitle(b.Title)] = b.TotalPages
	}

	pagesByTitle := make(map[string]int)
	flaggedDone := make(map[string]bool)
	for _, c := range completions {
		if c.HabitID != habitID || c.Date.After(today) {
			continue
		}
		title := habit.NormalizeTitle(c.Payload.BookTitle)
		if title == "" {
			continue
		}
		pagesByTitle[title] += c.Payload.PagesRead
		if c.Payload.BookFinished {
			flaggedDone[title] = true
		}
	}

	finished := 0
	for title, pages := range pagesByTitle {
		if flaggedDone[title] {
			finished++
			continue
		}
		if total, ok := totalPages[title]; ok && total > 0 && pages >= total {
			finished++
		}
	}
	return finished
}

// latestReading returns the most recent non-zero gauge value on or before
// the given day.
func latestReading(h habit.Habit, completions []habit.Completion, today time.Time) float64 {
	var (
		latest time.Time
		value  float64
	)
	for _, c := range completions {
		if c.HabitID != h.ID || c.Date.After(today) {
			continue
		}
		v := habit.Contribution(h.Type, c.Payload)
		if v <= 0 {
			continue
		}
		if latest.IsZero() || c.Date.After(latest) {
			latest = c.Date
			value = v
		}
	}
	return value
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
