// Package event defines the core domain types for planpal.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JordanDim/planpal/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrInvalidCategory     = errors.New("category must be 'sports', 'culture', 'entertainment' or 'other'")
	ErrEndBeforeStart      = errors.New("event end must not precede event start")
	ErrInvalidFrequency    = errors.New("recurrence must be 'none', 'weekly', 'monthly' or 'yearly'")
	ErrRecurrenceEnd       = errors.New("final date requires a recurrence frequency")
	ErrIndefiniteConflict  = errors.New("indefinite recurrence cannot carry a final date")
	ErrIndefiniteFrequency = errors.New("indefinite recurrence requires a frequency")
)

// Domain errors.
var ErrEventNotFound = errors.New("event not found")

// Category classifies an event. Unknown stored values normalize to CategoryOther.
type Category string

const (
	CategorySports         Category = "sports"
	CategoryCultureScience Category = "culture"
	CategoryEntertainment  Category = "entertainment"
	CategoryOther          Category = "other"
)

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategorySports:
		return "Sports"
	case CategoryCultureScience:
		return "Culture & Science"
	case CategoryEntertainment:
		return "Entertainment"
	default:
		return "Other"
	}
}

// ParseCategory maps a string onto a Category. The empty string and any
// unrecognized value map to CategoryOther.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategorySports, CategoryCultureScience, CategoryEntertainment:
		return Category(s)
	default:
		return CategoryOther
	}
}

// ParseCategoryStrict maps a string onto a Category, rejecting unknown
// values. Used at input boundaries where a typo should fail loudly.
func ParseCategoryStrict(s string) (Category, error) {
	switch c := Category(s); c {
	case CategorySports, CategoryCultureScience, CategoryEntertainment, CategoryOther:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Frequency is the recurrence step of a series.
type Frequency string

const (
	FreqNone    Frequency = "none"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// Valid returns true if the frequency is a known value.
func (f Frequency) Valid() bool {
	switch f {
	case FreqNone, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	default:
		return false
	}
}

// Recurrence describes how an event repeats. The zero value means the
// event occurs exactly once.
//
// Exactly one of three shapes is legal for a repeating series:
// bounded (Until set), indefinite (Indefinite set), or open with neither.
// Consumers treat the open shape exactly like indefinite: Bounded reports
// false for it and expansion and export apply no final date.
type Recurrence struct {
	Freq       Frequency
	Until      string // civil date, inclusive; empty when unbounded
	Indefinite bool
}

// None reports whether the event does not repeat.
func (r Recurrence) None() bool { return r.Freq == FreqNone || r.Freq == "" }

// Bounded reports whether the series has a final date.
func (r Recurrence) Bounded() bool { return !r.None() && r.Until != "" }

// Validate checks internal consistency of the recurrence.
func (r Recurrence) Validate() error {
	if r.Freq != "" && !r.Freq.Valid() {
		return ErrInvalidFrequency
	}
	if r.None() {
		if r.Until != "" {
			return ErrRecurrenceEnd
		}
		if r.Indefinite {
			return ErrIndefiniteFrequency
		}
		return nil
	}
	if r.Indefinite && r.Until != "" {
		return ErrIndefiniteConflict
	}
	if r.Until != "" {
		if _, err := dateutil.ParseDate(r.Until); err != nil {
			return fmt.Errorf("final date: %w", err)
		}
	}
	return nil
}

// Event represents a calendar entry as stored. Date and time fields are
// naive local civil values; no timezone conversion is ever applied.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Category    Category
	Creator     string
	StartDate   string // "YYYY-MM-DD"
	StartTime   string // "HH:MM"
	EndDate     string // "YYYY-MM-DD"
	EndTime     string // "HH:MM"
	Public      bool
	Recurrence  Recurrence
	CreatedAt   time.Time
}

// New creates an Event with a fresh ID after validating every field.
// Zero-duration events are legal; an end instant before the start instant
// is rejected with ErrEndBeforeStart.
func New(title, category, creator, startDate, startTime, endDate, endTime string, recur Recurrence) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	e := &Event{
		ID:         uuid.NewString(),
		Title:      title,
		Category:   ParseCategory(category),
		Creator:    creator,
		StartDate:  startDate,
		StartTime:  startTime,
		EndDate:    endDate,
		EndTime:    endTime,
		Recurrence: recur,
		CreatedAt:  time.Now(),
	}
	if e.EndDate == "" {
		e.EndDate = e.StartDate
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the event's date/time fields and recurrence consistency.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	start, end, err := e.Interval()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	return e.Recurrence.Validate()
}

// Interval combines the civil fields into the event's start and end instants.
// It does not check ordering; callers needing the data-error check use Validate.
func (e *Event) Interval() (start, end time.Time, err error) {
	start, err = dateutil.Combine(e.StartDate, e.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	end, err = dateutil.Combine(e.EndDate, e.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

// Duration returns the event duration. Malformed fields yield zero.
func (e *Event) Duration() time.Duration {
	start, end, err := e.Interval()
	if err != nil {
		return 0
	}
	return end.Sub(start)
}

// Recurring reports whether the event repeats.
func (e *Event) Recurring() bool { return !e.Recurrence.None() }
