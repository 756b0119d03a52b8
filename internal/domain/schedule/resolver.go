// Package schedule is the availability and pricing resolution engine. It is
// pure computation over immutable snapshots: callers hand it a villa, its
// reservations and its seasonal price rules, and it answers what each calendar
// day looks like. Nothing here touches a store or mutates its arguments.
package schedule

import (
	"time"

	"villastay/internal/domain/reservation"
	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

type DayState string

const (
	DayAvailable DayState = "available"
	DayPending   DayState = "pending"
	DayConfirmed DayState = "confirmed"
	DayBlocked   DayState = "blocked"
)

// DayStatus is the resolved display state of one villa on one calendar day.
// It is derived fresh on every query and never persisted.
type DayStatus struct {
	Date          time.Time
	Status        DayState
	Price         money.Money
	IsSeasonal    bool
	OccupantLabel string
}

// ResolveDay picks the price source for a single day. An explicit reservation
// always wins over a seasonal rule: a paid stay has a locked-in price even if
// a seasonal rule is added retroactively. Without a reservation the first
// matching seasonal rule applies; rules are assumed non-overlapping upstream,
// but a violated invariant just means first match wins here. Otherwise the
// villa's base price stands.
func ResolveDay(v *villa.Villa, day time.Time, reservations []*reservation.Reservation, rules []*seasonal.Rule) DayStatus {
	d := daterange.DayOf(day)

	if r := coveringReservation(v.ID, d, reservations); r != nil {
		price := r.Price
		if price.IsZero() || !price.Currency.Valid() {
			price = v.BasePrice
		}
		return DayStatus{
			Date:          d,
			Status:        stateOf(r.Status),
			Price:         price,
			OccupantLabel: occupantLabel(r),
		}
	}

	for _, rule := range rules {
		if rule == nil || rule.VillaID != v.ID {
			continue
		}
		if rule.Season.ContainsDate(d) {
			return DayStatus{Date: d, Status: DayAvailable, Price: rule.Price, IsSeasonal: true}
		}
	}

	return DayStatus{Date: d, Status: DayAvailable, Price: v.BasePrice}
}

func coveringReservation(id villa.VillaID, d time.Time, reservations []*reservation.Reservation) *reservation.Reservation {
	for _, r := range reservations {
		if r == nil || r.VillaID != id || !r.IsActive() {
			continue
		}
		if r.Range.ContainsDate(d) {
			return r
		}
	}
	return nil
}

func stateOf(s reservation.Status) DayState {
	switch s {
	case reservation.StatusConfirmed:
		return DayConfirmed
	case reservation.StatusBlocked:
		return DayBlocked
	default:
		return DayPending
	}
}

func occupantLabel(r *reservation.Reservation) string {
	if r.ContactPerson.FullName != "" {
		return r.ContactPerson.FullName
	}
	return r.Title
}
