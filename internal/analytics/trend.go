package analytics

// ClassifyTrend labels a habit's trajectory from its dense weekly buckets.
// Fewer than trendMinSample done-days across the whole lookback is not
// enough signal and yields TrendNew regardless of shape. Otherwise the mean
// of the two most recent weeks is compared to the mean of the two weeks
// before that, with the ±20% bands absorbing small fluctuations.
func ClassifyTrend(buckets []WeeklyBucket) Trend {
	total := 0
	for _, b := range buckets {
		total += b.DoneCount
	}
	if total < trendMinSample {
		return TrendNew
	}

	recent := (weekCountAt(buckets, 0) + weekCountAt(buckets, 1)) / 2
	older := (weekCountAt(buckets, 2) + weekCountAt(buckets, 3)) / 2

	switch {
	case recent > older*trendUpperBand:
		return TrendImproving
	case recent < older*trendLowerBand:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// weekCountAt reads a bucket by index, treating missing weeks as empty.
func weekCountAt(buckets []WeeklyBucket, index int) float64 {
	if index < 0 || index >= len(buckets) {
		return 0
	}
	return float64(buckets[index].DoneCount)
}
