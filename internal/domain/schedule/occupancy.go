package schedule

import (
	"math"
	"time"

	"villastay/internal/domain/reservation"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/villa"
)

// OccupancySnapshot is a derived weekly statistic, computed on demand and
// never stored.
type OccupancySnapshot struct {
	WindowStart  time.Time
	WindowEnd    time.Time
	OccupiedDays int
	TotalDays    int
	Rate         int
}

// WeeklyOccupancy computes the share of villa-days covered by a confirmed
// reservation across the Monday..Sunday week containing referenceDate.
// Coverage uses the closed-interval predicate: a check-out day counts as
// occupied even though admission would let a new stay begin that day.
// Pending and blocked stays do not count.
func WeeklyOccupancy(villas []*villa.Villa, reservations []*reservation.Reservation, referenceDate time.Time) OccupancySnapshot {
	weekStart := startOfISOWeek(referenceDate)
	weekEnd := weekStart.AddDate(0, 0, 6)
	snapshot := OccupancySnapshot{
		WindowStart: weekStart,
		WindowEnd:   weekEnd,
		TotalDays:   len(villas) * 7,
	}

	for _, v := range villas {
		if v == nil {
			continue
		}
		for d := weekStart; !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
			if dayConfirmed(v.ID, d, reservations) {
				snapshot.OccupiedDays++
			}
		}
	}

	if snapshot.TotalDays == 0 {
		return snapshot
	}
	rate := int(math.Round(100 * float64(snapshot.OccupiedDays) / float64(snapshot.TotalDays)))
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	snapshot.Rate = rate
	return snapshot
}

func dayConfirmed(id villa.VillaID, day time.Time, reservations []*reservation.Reservation) bool {
	for _, r := range reservations {
		if r == nil || r.VillaID != id || r.Status != reservation.StatusConfirmed {
			continue
		}
		if r.Range.OccupiesDay(day) {
			return true
		}
	}
	return false
}

// startOfISOWeek returns the Monday of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	d := daterange.DayOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
