package analytics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nkagupta/HT-sub000/internal/config"
	"github.com/nkagupta/HT-sub000/internal/habit"
)

// Service orchestrates the analytics engine over a record-store snapshot.
// Every computation is deterministic given its inputs and the asOf
// timestamp; the service never reads the wall clock inside an algorithm and
// never mutates the collections handed to it.
type Service struct {
	repo   habit.Repository
	clock  habit.Clock
	logger *slog.Logger
	cfg    config.Engine
}

// NewService constructs a Service instance with the provided collaborators.
func NewService(repo habit.Repository, clock habit.Clock, logger *slog.Logger, cfg config.Engine) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	if clock == nil {
		clock = habit.NewSystemClock()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, clock: clock, logger: logger, cfg: cfg}, nil
}

// AnalyzeHabit derives the full analytics view for one habit from an
// in-memory snapshot. A zero asOf falls back to the injected clock. Bad
// records degrade to "not done, no contribution" and are logged; nothing in
// a snapshot can make this call fail.
func (s *Service) AnalyzeHabit(ctx context.Context, h habit.Habit, completions []habit.Completion, books []habit.Book, asOf time.Time) HabitAnalytics {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	asOf = asOf.UTC()

	if !h.Type.IsValid() {
		s.logger.Warn("unknown habit type, analytics degrade to empty",
			slog.String("habit_id", h.ID),
			slog.String("type", string(h.Type)))
	}

	doneDates := doneDatesFor(h, completions)
	buckets := WeeklyBuckets(doneDates, s.cfg.WeekCount, asOf)

	return HabitAnalytics{
		Habit:         h,
		CurrentStreak: CurrentStreak(doneDates, asOf),
		LongestStreak: LongestStreak(doneDates),
		WeeklyBuckets: buckets,
		Trend:         ClassifyTrend(buckets),
		Projection:    Project(h, completions, books, asOf, s.cfg),
		GeneratedAt:   habit.Day(asOf),
	}
}

// AnalyzeUserHabits fetches the user's snapshot from the repository and
// analyzes every habit in it.
func (s *Service) AnalyzeUserHabits(ctx context.Context, userID string, asOf time.Time) ([]HabitAnalytics, error) {
	habits, completions, books, err := s.userSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]HabitAnalytics, 0, len(habits))
	for _, h := range habits {
		out = append(out, s.AnalyzeHabit(ctx, h, completions, books, asOf))
	}
	return out, nil
}

// RankUsers builds the competition leaderboard across the given users,
// fetching per-user snapshots concurrently. Store failures abort the whole
// call (surfacing them is the caller's job); malformed records never do.
func (s *Service) RankUsers(ctx context.Context, userIDs []string, asOf time.Time) (Leaderboard, error) {
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	asOf = asOf.UTC()

	var (
		mu     sync.Mutex
		totals = make(map[string]float64, len(userIDs))
		deltas = make(map[string]int, len(userIDs))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			habits, completions, _, err := s.userSnapshot(ctx, userID)
			if err != nil {
				return err
			}

			total := UserTotal(habits, completions, asOf)
			delta := UserWeekDelta(habits, completions, asOf)

			mu.Lock()
			totals[userID] = total
			deltas[userID] = delta
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Leaderboard{}, err
	}

	entries := Rank(totals)
	for i := range entries {
		entries[i].WeekDelta = deltas[entries[i].UserID]
	}

	improved := RankDeltas(deltas)
	for i := range improved {
		improved[i].Total = totals[improved[i].UserID]
	}

	return Leaderboard{
		Entries:      entries,
		MostImproved: improved,
		GeneratedAt:  habit.Day(asOf),
	}, nil
}

func (s *Service) userSnapshot(ctx context.Context, userID string) ([]habit.Habit, []habit.Completion, []habit.Book, error) {
	var (
		habits      []habit.Habit
		completions []habit.Completion
		books       []habit.Book
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h, err := s.repo.ListHabits(ctx, userID)
		if err != nil {
			return err
		}
		habits = h
		return nil
	})

	g.Go(func() error {
		c, err := s.repo.ListCompletions(ctx, habit.CompletionFilter{UserID: userID})
		if err != nil {
			return err
		}
		completions = c
		return nil
	})

	g.Go(func() error {
		b, err := s.repo.ListBooks(ctx, userID)
		if err != nil {
			return err
		}
		books = b
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return habits, completions, books, nil
}
