package habit

// This file is the single source of truth for per-type interpretation of
// payloads. Every aggregate (streaks, weekly buckets, projections,
// leaderboards) goes through these functions; nothing else switches on Type.

// IsDone reports whether the day's payload counts as the habit being done.
// Missing fields are zero values and read as "not done"; an unknown type is
// never done.
func IsDone(t Type, p Payload) bool {
	switch t {
	case TypeBook:
		return p.PagesRead > 0
	case TypeRunning:
		return p.Kilometers > 0
	case TypeAILearning:
		return p.Completed
	case TypeJobSearch:
		return p.AppliedForJob || p.SoughtReference || p.UpdatedCV
	case TypeSwimming:
		return p.Hours > 0
	case TypeWeight:
		return p.WeightKg > 0 || p.Minutes > 0
	case TypeExercise:
		return p.Minutes > 0
	case TypeInstagram:
		return p.Followers > 0
	default:
		return false
	}
}

// Contribution converts the day's payload into the habit's scalar progress
// amount in the type's native unit (swimming stays in hours here; see
// MinuteContribution for mixed-unit sums). Unknown types contribute nothing.
func Contribution(t Type, p Payload) float64 {
	switch t {
	case TypeBook:
		return float64(p.PagesRead)
	case TypeRunning:
		return p.Kilometers
	case TypeAILearning:
		if p.Completed {
			return 1
		}
		return 0
	case TypeJobSearch:
		n := 0
		if p.AppliedForJob {
			n++
		}
		if p.SoughtReference {
			n++
		}
		if p.UpdatedCV {
			n++
		}
		return float64(n)
	case TypeSwimming:
		return p.Hours
	case TypeWeight:
		return float64(p.Minutes)
	case TypeExercise:
		return float64(p.Minutes)
	case TypeInstagram:
		return float64(p.Followers)
	default:
		return 0
	}
}

// MinuteContribution is Contribution normalized for aggregation boundaries
// that mix swimming with minute-denominated habits: swimming hours become
// minutes, everything else passes through unchanged.
func MinuteContribution(t Type, p Payload) float64 {
	if t == TypeSwimming {
		return p.Hours * 60
	}
	return Contribution(t, p)
}

// IsGauge reports whether the type's value is a point-in-time reading
// rather than an additive counter. Gauge totals take the latest non-zero
// reading; summing them would silently inflate totals.
func IsGauge(t Type) bool {
	return t == TypeInstagram
}

// Unit returns the display label for the type's native progress unit.
func Unit(t Type) string {
	switch t {
	case TypeBook:
		return "pages"
	case TypeRunning:
		return "km"
	case TypeAILearning:
		return "topics"
	case TypeJobSearch:
		return "activities"
	case TypeSwimming:
		return "hours"
	case TypeWeight:
		return "minutes"
	case TypeExercise:
		return "minutes"
	case TypeInstagram:
		return "followers"
	default:
		return ""
	}
}
