package habit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository implements Repository using in-memory storage. It is the
// snapshot collaborator used by tests and by callers that already hold
// their data; durable storage lives outside this module.
type MemoryRepository struct {
	mu          sync.RWMutex
	habits      map[string]Habit      // habit id -> habit
	completions map[string]Completion // habit id + "|" + day key -> completion
	books       map[string]Book       // book id -> book

	clock Clock
	ids   IDGenerator
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository(clock Clock, ids IDGenerator) *MemoryRepository {
	if clock == nil {
		clock = NewSystemClock()
	}
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &MemoryRepository{
		habits:      make(map[string]Habit),
		completions: make(map[string]Completion),
		books:       make(map[string]Book),
		clock:       clock,
		ids:         ids,
	}
}

func completionKey(habitID string, date time.Time) string {
	return habitID + "|" + DayKey(date)
}

// UpsertHabit stores a habit, minting an ID when absent.
func (r *MemoryRepository) UpsertHabit(ctx context.Context, h Habit) (Habit, error) {
	if strings.TrimSpace(h.UserID) == "" {
		return Habit{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(h.Name) == "" {
		return Habit{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !h.Type.IsValid() {
		return Habit{}, fmt.Errorf("%w: unknown habit type %q", ErrInvalidInput, h.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	if h.ID == "" {
		h.ID = r.ids.NewID()
		h.CreatedAt = now
	} else if prev, ok := r.habits[h.ID]; ok {
		h.CreatedAt = prev.CreatedAt
	} else {
		h.CreatedAt = now
	}
	h.UpdatedAt = now

	r.habits[h.ID] = h
	return h, nil
}

// DeleteHabit removes a habit and cascades its completions.
func (r *MemoryRepository) DeleteHabit(ctx context.Context, userID, habitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.habits[habitID]
	if !ok || h.UserID != userID {
		return ErrNotFound
	}

	delete(r.habits, habitID)
	for key, c := range r.completions {
		if c.HabitID == habitID {
			delete(r.completions, key)
		}
	}
	return nil
}

// UpsertCompletion records one day's payload for a habit. At most one
// completion exists per (habit_id, date); the latest write replaces the
// whole payload for that date.
func (r *MemoryRepository) UpsertCompletion(ctx context.Context, c Completion) (Completion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.habits[c.HabitID]
	if !ok {
		return Completion{}, fmt.Errorf("%w: habit %s", ErrNotFound, c.HabitID)
	}

	now := r.clock.Now().UTC()
	c.UserID = h.UserID
	c.Date = Day(c.Date)

	key := completionKey(c.HabitID, c.Date)
	if prev, ok := r.completions[key]; ok {
		c.ID = prev.ID
		c.CreatedAt = prev.CreatedAt
	} else {
		c.ID = r.ids.NewID()
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.completions[key] = c
	return c, nil
}

// UpsertBook stores a book record, minting an ID when absent.
func (r *MemoryRepository) UpsertBook(ctx context.Context, b Book) (Book, error) {
	if strings.TrimSpace(b.Title) == "" {
		return Book{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = r.ids.NewID()
		b.CreatedAt = r.clock.Now().UTC()
	}
	r.books[b.ID] = b
	return b, nil
}

func (r *MemoryRepository) ListHabits(ctx context.Context, userID string) ([]Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) ListCompletions(ctx context.Context, filter CompletionFilter) ([]Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Completion
	for _, c := range r.completions {
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.HabitID != "" && c.HabitID != filter.HabitID {
			continue
		}
		if filter.From != nil && c.Date.Before(Day(*filter.From)) {
			continue
		}
		if filter.To != nil && c.Date.After(Day(*filter.To)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].HabitID < out[j].HabitID
	})
	return out, nil
}

func (r *MemoryRepository) ListBooks(ctx context.Context, userID string) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Book
	for _, b := range r.books {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
