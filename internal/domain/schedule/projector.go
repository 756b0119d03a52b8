package schedule

import (
	"errors"
	"iter"
	"time"

	"villastay/internal/domain/reservation"
	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/villa"
)

var ErrMonthCount = errors.New("schedule: month count must be at least 1")

// Each month renders as a Monday-first grid of six full weeks.
const gridCells = 42

// ProjectedDay is one cell of a month grid: the resolved day status plus the
// month it is rendered inside. Padding days from adjacent months carry
// OutsideMonth so the display layer can dim them; their status and price are
// resolved exactly like in-month days.
type ProjectedDay struct {
	DayStatus
	Month        time.Month
	Year         int
	OutsideMonth bool
}

// Project lays out monthCount consecutive months starting at the first day of
// the month containing windowStart and resolves every grid cell through
// ResolveDay. The result is a lazy, restartable sequence; callers that only
// need the first weeks stop early without paying for the rest.
func Project(v *villa.Villa, windowStart time.Time, monthCount int, reservations []*reservation.Reservation, rules []*seasonal.Rule) (iter.Seq[ProjectedDay], error) {
	if monthCount < 1 {
		return nil, ErrMonthCount
	}
	first := daterange.DayOf(windowStart)
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)

	return func(yield func(ProjectedDay) bool) {
		for m := 0; m < monthCount; m++ {
			month := first.AddDate(0, m, 0)
			cell := gridStart(month)
			for i := 0; i < gridCells; i++ {
				day := ResolveDay(v, cell, reservations, rules)
				pd := ProjectedDay{
					DayStatus:    day,
					Month:        month.Month(),
					Year:         month.Year(),
					OutsideMonth: cell.Month() != month.Month() || cell.Year() != month.Year(),
				}
				if !yield(pd) {
					return
				}
				cell = cell.AddDate(0, 0, 1)
			}
		}
	}, nil
}

// gridStart returns the Monday on or before the first of the month.
func gridStart(firstOfMonth time.Time) time.Time {
	offset := (int(firstOfMonth.Weekday()) + 6) % 7
	return firstOfMonth.AddDate(0, 0, -offset)
}
