package dto

import (
	"time"

	"villastay/internal/domain/reservation"
)

type Booking struct {
	ID         string `json:"id"`
	VillaID    string `json:"villa_id"`
	Title      string `json:"title,omitempty"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Status     string `json:"status"`
	Guests     int    `json:"guests"`
	Contact    string `json:"contact,omitempty"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
	Total      string `json:"total"`
}

type BookingConflict struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

func MapBooking(r *reservation.Reservation) Booking {
	return Booking{
		ID:         string(r.ID),
		VillaID:    string(r.VillaID),
		Title:      r.Title,
		CheckIn:    r.Range.CheckIn.Format(time.DateOnly),
		CheckOut:   r.Range.CheckOut.Format(time.DateOnly),
		Nights:     r.Range.Nights(),
		Status:     string(r.Status),
		Guests:     len(r.Guests),
		Contact:    r.ContactPerson.FullName,
		TotalCents: r.Price.Amount,
		Currency:   string(r.Price.Currency),
		Total:      r.Price.Format(),
	}
}

func MapConflict(r *reservation.Reservation) BookingConflict {
	return BookingConflict{
		ID:       string(r.ID),
		Title:    r.Title,
		CheckIn:  r.Range.CheckIn.Format(time.DateOnly),
		CheckOut: r.Range.CheckOut.Format(time.DateOnly),
		Status:   string(r.Status),
	}
}

func MapConflicts(rs []*reservation.Reservation) []BookingConflict {
	out := make([]BookingConflict, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapConflict(r))
	}
	return out
}
