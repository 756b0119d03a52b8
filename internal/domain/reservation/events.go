package reservation

import (
	"time"

	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

type ReservationRequested struct {
	ReservationID ReservationID
	VillaID       villa.VillaID
	Range         daterange.DateRange
	Status        Status
	Price         money.Money
	At            time.Time
}

func (e ReservationRequested) EventName() string     { return "reservation.requested" }
func (e ReservationRequested) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationRequested) OccurredAt() time.Time { return e.At }

type ReservationConfirmed struct {
	ReservationID ReservationID
	VillaID       villa.VillaID
	Range         daterange.DateRange
	Total         money.Money
	At            time.Time
}

func (e ReservationConfirmed) EventName() string     { return "reservation.confirmed" }
func (e ReservationConfirmed) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationConfirmed) OccurredAt() time.Time { return e.At }

type ReservationCancelled struct {
	ReservationID ReservationID
	VillaID       villa.VillaID
	Reason        string
	At            time.Time
}

func (e ReservationCancelled) EventName() string     { return "reservation.cancelled" }
func (e ReservationCancelled) AggregateID() string   { return string(e.ReservationID) }
func (e ReservationCancelled) OccurredAt() time.Time { return e.At }

type AdmissionRejected struct {
	VillaID   villa.VillaID
	Range     daterange.DateRange
	Conflicts int
	At        time.Time
}

func (e AdmissionRejected) EventName() string     { return "reservation.admission_rejected" }
func (e AdmissionRejected) AggregateID() string   { return string(e.VillaID) }
func (e AdmissionRejected) OccurredAt() time.Time { return e.At }
