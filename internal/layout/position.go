package layout

import (
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
)

// DefaultUnitsPerHour is the vertical size of one hour in layout units.
// The terminal views multiply it into rows; it is configuration, not a
// fixed constant of the geometry.
const DefaultUnitsPerHour = 3.0

// Positioned is an Entry annotated with drawable vertical geometry for one
// specific day.
type Positioned struct {
	Entry
	TopOffset float64
	Height    float64
	IsPast    bool
}

// Position converts an occurrence into its vertical offset and height on
// day's hour axis. The effective interval is clipped to the day: an
// occurrence starting earlier draws from the top, one ending later draws
// to the bottom (offset 24h).
func Position(o event.Occurrence, day time.Time, unitsPerHour float64) (topOffset, height float64) {
	dayStart := dateutil.TruncateToDay(day)
	dayEnd := dateutil.NextMidnight(day)

	effStart := o.Start
	if effStart.Before(dayStart) {
		effStart = dayStart
	}
	effEnd := o.End
	if effEnd.After(dayEnd) {
		effEnd = dayEnd
	}

	topOffset = effStart.Sub(dayStart).Hours() * unitsPerHour
	bottom := effEnd.Sub(dayStart).Hours() * unitsPerHour
	return topOffset, bottom - topOffset
}

// NowOffset returns the vertical offset of the current instant, used to
// draw the "now" marker. Callers suppress the marker when the displayed
// day is not today.
func NowOffset(now time.Time, unitsPerHour float64) float64 {
	return (float64(now.Hour()) + float64(now.Minute())/60) * unitsPerHour
}

// PositionEntries annotates packed entries with geometry and the IsPast
// flag for day. IsPast compares the day-clipped end against now, so a
// multi-day occurrence reads as past on the days it has already left.
func PositionEntries(entries []Entry, day time.Time, now time.Time, unitsPerHour float64) []Positioned {
	if len(entries) == 0 {
		return nil
	}
	dayEnd := dateutil.NextMidnight(day)

	out := make([]Positioned, len(entries))
	for i, e := range entries {
		top, height := Position(e.Occurrence, day, unitsPerHour)
		effEnd := e.End
		if effEnd.After(dayEnd) {
			effEnd = dayEnd
		}
		out[i] = Positioned{
			Entry:     e,
			TopOffset: top,
			Height:    height,
			IsPast:    effEnd.Before(now),
		}
	}
	return out
}
