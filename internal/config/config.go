package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nkagupta/HT-sub000/internal/envconfig"
)

// Engine encapsulates the tunables of the analytics engine. Trend bands are
// deliberately not configurable; the ±20% thresholds are part of the
// product contract.
type Engine struct {
	// AnnualWindowStart opens the fixed twelve-month measurement window all
	// target projections extrapolate against. Shared by the whole group,
	// independent of when any habit was created.
	AnnualWindowStart time.Time `validate:"required"`

	// WeekCount is how many Sunday-anchored weeks feed weekly buckets and
	// trend classification.
	WeekCount int `validate:"gte=4,lte=52"`
}

const (
	defaultAnnualWindowStart = "2025-01-01"
	defaultWeekCount         = 4
)

// Default returns the engine configuration used when no environment is set.
func Default() Engine {
	start, _ := time.Parse("2006-01-02", defaultAnnualWindowStart)
	return Engine{
		AnnualWindowStart: start,
		WeekCount:         defaultWeekCount,
	}
}

// Load reads environment variables into Engine with validation.
func Load() (Engine, error) {
	rawStart := envconfig.Get("HT_ANNUAL_WINDOW_START", defaultAnnualWindowStart)
	start, err := time.Parse("2006-01-02", strings.TrimSpace(rawStart))
	if err != nil {
		return Engine{}, fmt.Errorf("HT_ANNUAL_WINDOW_START must be YYYY-MM-DD: %w", err)
	}

	cfg := Engine{
		AnnualWindowStart: start.UTC(),
		WeekCount:         envconfig.GetInt("HT_WEEK_COUNT", defaultWeekCount),
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Engine{}, err
	}
	return cfg, nil
}

// AnnualWindowEnd is one calendar year after the window start.
func (e Engine) AnnualWindowEnd() time.Time {
	return e.AnnualWindowStart.AddDate(1, 0, 0)
}

// AnnualWindowDays is the total day span of the measurement window.
func (e Engine) AnnualWindowDays() int {
	return int(e.AnnualWindowEnd().Sub(e.AnnualWindowStart).Hours() / 24)
}
