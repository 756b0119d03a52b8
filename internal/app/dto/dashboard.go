package dto

import (
	"time"

	"villastay/internal/domain/schedule"
)

type Occupancy struct {
	WindowStart  string `json:"window_start"`
	WindowEnd    string `json:"window_end"`
	OccupiedDays int    `json:"occupied_days"`
	TotalDays    int    `json:"total_days"`
	Rate         int    `json:"rate"`
}

type Stats struct {
	Villas          int              `json:"villas"`
	ActiveStays     int              `json:"active_stays"`
	PendingBookings int              `json:"pending_bookings"`
	Revenue         map[string]int64 `json:"revenue_cents"`
	RecentBookings  []Booking        `json:"recent_bookings"`
}

func MapOccupancy(s schedule.OccupancySnapshot) Occupancy {
	return Occupancy{
		WindowStart:  s.WindowStart.Format(time.DateOnly),
		WindowEnd:    s.WindowEnd.Format(time.DateOnly),
		OccupiedDays: s.OccupiedDays,
		TotalDays:    s.TotalDays,
		Rate:         s.Rate,
	}
}
