package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange  = errors.New("daterange: check-out must be after check-in")
	ErrInvalidSeason = errors.New("daterange: season end must not precede season start")
)

// DayOf truncates a timestamp to its UTC calendar day. All day-level math in
// the engine runs on values produced by this helper.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange represents a half-open interval [CheckIn, CheckOut). The check-out
// day itself is not part of the stay, which is what makes same-day turnover
// possible: one guest checks out the morning another checks in.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: DayOf(checkIn), CheckOut: DayOf(checkOut)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckIn.IsZero() || dr.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Nights() int {
	return int(dr.CheckOut.Sub(dr.CheckIn).Hours() / 24)
}

// ContainsDate reports half-open containment: CheckIn <= day < CheckOut.
func (dr DateRange) ContainsDate(t time.Time) bool {
	d := DayOf(t)
	return !d.Before(dr.CheckIn) && d.Before(dr.CheckOut)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Ranges that merely touch (one checks out the day the other checks in) do
// not overlap.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(dr.CheckOut)
}

// OccupiesDay reports closed containment: CheckIn <= day <= CheckOut. The
// check-out day is free for a new arrival yet still counts as occupied for
// statistics, so this predicate is intentionally distinct from ContainsDate.
func (dr DateRange) OccupiesDay(t time.Time) bool {
	d := DayOf(t)
	return !d.Before(dr.CheckIn) && !d.After(dr.CheckOut)
}

func (dr DateRange) Adjacent(other DateRange) bool {
	return dr.CheckOut.Equal(other.CheckIn) || dr.CheckIn.Equal(other.CheckOut)
}

// Days yields every calendar day of the stay in order, check-out day excluded.
func (dr DateRange) Days(yield func(time.Time) bool) {
	for d := dr.CheckIn; d.Before(dr.CheckOut); d = d.AddDate(0, 0, 1) {
		if !yield(d) {
			return
		}
	}
}

// ClosedRange is an inclusive-inclusive calendar interval [Start, End], the
// boundary convention seasonal price rules use. A single-day season has
// Start == End.
type ClosedRange struct {
	Start time.Time
	End   time.Time
}

func NewClosed(start, end time.Time) (ClosedRange, error) {
	cr := ClosedRange{Start: DayOf(start), End: DayOf(end)}
	if err := cr.Validate(); err != nil {
		return ClosedRange{}, err
	}
	return cr, nil
}

func (cr ClosedRange) Validate() error {
	if cr.Start.IsZero() || cr.End.IsZero() {
		return ErrInvalidSeason
	}
	if cr.End.Before(cr.Start) {
		return ErrInvalidSeason
	}
	return nil
}

// ContainsDate reports closed containment: Start <= day <= End.
func (cr ClosedRange) ContainsDate(t time.Time) bool {
	d := DayOf(t)
	return !d.Before(cr.Start) && !d.After(cr.End)
}

func (cr ClosedRange) Overlaps(other ClosedRange) bool {
	return !cr.Start.After(other.End) && !other.Start.After(cr.End)
}
