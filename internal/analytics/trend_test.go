package analytics

import "testing"

func bucketsOf(counts ...int) []WeeklyBucket {
	out := make([]WeeklyBucket, len(counts))
	for i, c := range counts {
		out[i] = WeeklyBucket{WeekIndex: i, DoneCount: c}
	}
	return out
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name    string
		buckets []WeeklyBucket
		want    Trend
	}{
		{"no activity", bucketsOf(0, 0, 0, 0), TrendNew},
		{"under sample threshold", bucketsOf(1, 4, 0, 0), TrendNew},
		{"six done days is still new", bucketsOf(2, 2, 1, 1), TrendNew},
		{"seven done days has signal", bucketsOf(2, 2, 2, 1), TrendImproving},
		{"improving beyond the band", bucketsOf(5, 5, 2, 2), TrendImproving},
		{"declining beyond the band", bucketsOf(1, 1, 4, 4), TrendDeclining},
		{"flat weeks are stable", bucketsOf(3, 3, 3, 3), TrendStable},
		{"within the upper band", bucketsOf(3, 3, 3, 2), TrendStable},
		{"fresh start after nothing", bucketsOf(4, 4, 0, 0), TrendImproving},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyTrend(tc.buckets); got != tc.want {
				t.Fatalf("ClassifyTrend(%v)=%s, want %s", tc.buckets, got, tc.want)
			}
		})
	}
}

func TestClassifyTrendBandEdges(t *testing.T) {
	// recent == older*1.2 exactly is not an improvement; the comparison is strict.
	if got := ClassifyTrend(bucketsOf(6, 6, 5, 5)); got != TrendStable {
		t.Fatalf("exactly +20%%: got %s, want stable", got)
	}
	// recent == older*0.8 exactly is not a decline either.
	if got := ClassifyTrend(bucketsOf(4, 4, 5, 5)); got != TrendStable {
		t.Fatalf("exactly -20%%: got %s, want stable", got)
	}
}

func TestClassifyTrendShortWindow(t *testing.T) {
	// Missing older weeks are treated as empty rather than skewing the mean.
	if got := ClassifyTrend(bucketsOf(4, 4)); got != TrendImproving {
		t.Fatalf("two-week window: got %s, want improving", got)
	}
}
