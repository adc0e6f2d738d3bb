package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type identifies how a habit's daily payload is interpreted.
type Type string

const (
	TypeBook       Type = "book"
	TypeRunning    Type = "running"
	TypeAILearning Type = "ai_learning"
	TypeJobSearch  Type = "job_search"
	TypeSwimming   Type = "swimming"
	TypeWeight     Type = "weight"
	TypeExercise   Type = "exercise"
	TypeInstagram  Type = "instagram"
)

// Types lists every known habit type. Keep this stable because
// completions logged under a type are interpreted by it forever.
var Types = []Type{
	TypeBook,
	TypeRunning,
	TypeAILearning,
	TypeJobSearch,
	TypeSwimming,
	TypeWeight,
	TypeExercise,
	TypeInstagram,
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBook, TypeRunning, TypeAILearning, TypeJobSearch,
		TypeSwimming, TypeWeight, TypeExercise, TypeInstagram:
		return true
	default:
		return false
	}
}

// ParseType normalizes user input into a Type. Unknown values return an
// error; downstream computation treats them as "no contribution" instead.
func ParseType(input string) (Type, error) {
	t := Type(strings.TrimSpace(strings.ToLower(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown habit type %q", ErrInvalidInput, input)
	}
	return t, nil
}

// Habit is a tracked goal owned by a single user.
type Habit struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Target    string    `json:"target,omitempty"` // free text, e.g. "500 km in 2025"
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payload carries one day's logged data. It is the superset of every
// type-shaped payload; fields the habit's type does not use stay at their
// zero value, which downstream rules read as "not logged".
type Payload struct {
	// book
	PagesRead    int    `json:"pages_read,omitempty"`
	BookTitle    string `json:"book_title,omitempty"`
	BookFinished bool   `json:"book_finished,omitempty"`

	// running
	Kilometers float64 `json:"kilometers,omitempty"`

	// ai_learning
	Completed bool `json:"completed,omitempty"`

	// job_search
	AppliedForJob   bool `json:"applied_for_job,omitempty"`
	SoughtReference bool `json:"sought_reference,omitempty"`
	UpdatedCV       bool `json:"updated_cv,omitempty"`

	// swimming
	Hours float64 `json:"hours,omitempty"`

	// weight (either reading counts) / exercise
	WeightKg float64 `json:"weight_kg,omitempty"`
	Minutes  int     `json:"minutes,omitempty"`

	// instagram (gauge, not a counter)
	Followers int `json:"followers,omitempty"`
}

// Completion is one day's logged payload for one habit. At most one
// completion exists per (habit_id, date); writes replace the whole payload.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"` // calendar date, UTC midnight
	Payload   Payload   `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is the declared page count for a title, joined against book
// completions by normalized title to decide when a book is finished.
type Book struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	TotalPages int       `json:"total_pages"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompletionFilter narrows ListCompletions. Nil fields match everything.
type CompletionFilter struct {
	UserID  string
	HabitID string
	From    *time.Time // inclusive
	To      *time.Time // inclusive
}

// Repository is the record store the analytics layer consumes. The engine
// only ever reads snapshots; writes exist so tests and embedding callers
// can stage data.
type Repository interface {
	ListHabits(ctx context.Context, userID string) ([]Habit, error)
	ListCompletions(ctx context.Context, filter CompletionFilter) ([]Completion, error)
	ListBooks(ctx context.Context, userID string) ([]Book, error)
}

// ErrNotFound indicates the requested record does not exist for the user.
var ErrNotFound = errors.New("habit record not found")

// ErrInvalidInput indicates the provided data failed validation.
var ErrInvalidInput = errors.New("invalid input")

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for new records.
type IDGenerator interface {
	NewID() string
}

// Day truncates a timestamp to its calendar date in UTC. Completion keys
// and all streak arithmetic operate on these truncated values.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey renders the canonical YYYY-MM-DD key for a date.
func DayKey(t time.Time) string {
	return Day(t).Format("2006-01-02")
}

// NormalizeTitle is the join key between book completions and Book records.
// Matching free-text titles is fragile; an explicit book_id foreign key on
// completions is the planned replacement.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
