package event

import "time"

// Occurrence is one concrete instance of an event: the event itself for a
// single event, or one repeat of a recurring series. Occurrences are derived
// per query and never persisted. Two occurrences of the same series share
// EventID and differ by Start.
type Occurrence struct {
	EventID  string
	Title    string
	Location string
	Category Category
	Creator  string
	Start    time.Time
	End      time.Time
}

// FromEvent builds the occurrence of e at the given resolved instants.
func FromEvent(e *Event, start, end time.Time) Occurrence {
	return Occurrence{
		EventID:  e.ID,
		Title:    e.Title,
		Location: e.Location,
		Category: e.Category,
		Creator:  e.Creator,
		Start:    start,
		End:      end,
	}
}

// Overlaps reports whether two occurrences strictly intersect in time:
// a.Start < b.End && b.Start < a.End. Intervals that merely touch at an
// endpoint do not overlap.
func (o Occurrence) Overlaps(other Occurrence) bool {
	return o.Start.Before(other.End) && other.Start.Before(o.End)
}
