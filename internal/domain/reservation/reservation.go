package reservation

import (
	"context"
	"errors"
	"time"

	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/events"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

var (
	ErrInvalidState        = errors.New("reservation: invalid state transition")
	ErrContactRequired     = errors.New("reservation: contact person is required")
	ErrReservationNotFound = errors.New("reservation: not found")
)

type ReservationID string

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusBlocked   Status = "blocked"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusBlocked, StatusCancelled:
		return true
	}
	return false
}

type ContactPerson struct {
	FullName       string
	Email          string
	Phone          string
	IdentityNumber string
}

type Guest struct {
	FullName       string
	IdentityNumber string
}

// Reservation is one stay (or a manual block) on a villa's calendar. The range
// is half-open: the check-out day is free for the next arrival.
type Reservation struct {
	ID              ReservationID
	VillaID         villa.VillaID
	Range           daterange.DateRange
	Status          Status
	Price           money.Money
	Title           string
	ContactPerson   ContactPerson
	Guests          []Guest
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64
	events.EventRecorder
}

type Repository interface {
	ByID(ctx context.Context, id ReservationID) (*Reservation, error)
	ByVilla(ctx context.Context, id villa.VillaID) ([]*Reservation, error)
	All(ctx context.Context) ([]*Reservation, error)
	Save(ctx context.Context, r *Reservation) error
}

type CreateParams struct {
	ID              ReservationID
	VillaID         villa.VillaID
	Range           daterange.DateRange
	Status          Status
	Price           money.Money
	Title           string
	ContactPerson   ContactPerson
	Guests          []Guest
	SpecialRequests string
	CreatedAt       time.Time
}

func New(params CreateParams) (*Reservation, error) {
	if err := params.Range.Validate(); err != nil {
		return nil, err
	}
	status := params.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() || status == StatusCancelled {
		return nil, ErrInvalidState
	}
	if status != StatusBlocked && params.ContactPerson.FullName == "" {
		return nil, ErrContactRequired
	}
	now := params.CreatedAt.UTC()
	r := &Reservation{
		ID:              params.ID,
		VillaID:         params.VillaID,
		Range:           params.Range,
		Status:          status,
		Price:           params.Price,
		Title:           params.Title,
		ContactPerson:   params.ContactPerson,
		Guests:          params.Guests,
		SpecialRequests: params.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.Record(ReservationRequested{ReservationID: r.ID, VillaID: r.VillaID, Range: r.Range, Status: r.Status, Price: r.Price, At: now})
	return r, nil
}

func (r *Reservation) Confirm(now time.Time) error {
	if r.Status != StatusPending {
		return ErrInvalidState
	}
	r.Status = StatusConfirmed
	r.UpdatedAt = now.UTC()
	r.Record(ReservationConfirmed{ReservationID: r.ID, VillaID: r.VillaID, Range: r.Range, Total: r.Price, At: r.UpdatedAt})
	return nil
}

func (r *Reservation) Cancel(reason string, now time.Time) error {
	switch r.Status {
	case StatusPending, StatusConfirmed, StatusBlocked:
	default:
		return ErrInvalidState
	}
	r.Status = StatusCancelled
	r.UpdatedAt = now.UTC()
	r.Record(ReservationCancelled{ReservationID: r.ID, VillaID: r.VillaID, Reason: reason, At: r.UpdatedAt})
	return nil
}

// IsActive reports whether the reservation participates in conflict, pricing
// and occupancy computations. Cancelled stays never do.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// OccupiesDay is the statistics-side predicate: the closed containment check
// that counts the check-out day as occupied.
func (r *Reservation) OccupiesDay(day time.Time) bool {
	return r.IsActive() && r.Range.OccupiesDay(day)
}
