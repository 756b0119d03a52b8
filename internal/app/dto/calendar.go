package dto

import (
	"time"

	"villastay/internal/domain/schedule"
)

type CalendarDay struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	PriceCents   int64  `json:"price_cents"`
	Currency     string `json:"currency"`
	PriceDisplay string `json:"price_display"`
	IsSeasonal   bool   `json:"is_seasonal"`
	Occupant     string `json:"occupant,omitempty"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	OutsideMonth bool   `json:"outside_month"`
}

type Calendar struct {
	VillaID string        `json:"villa_id"`
	From    string        `json:"from"`
	Months  int           `json:"months"`
	Days    []CalendarDay `json:"days"`
}

func MapProjectedDay(pd schedule.ProjectedDay) CalendarDay {
	return CalendarDay{
		Date:         pd.Date.Format(time.DateOnly),
		Status:       string(pd.Status),
		PriceCents:   pd.Price.Amount,
		Currency:     string(pd.Price.Currency),
		PriceDisplay: pd.Price.Format(),
		IsSeasonal:   pd.IsSeasonal,
		Occupant:     pd.OccupantLabel,
		Month:        int(pd.Month),
		Year:         pd.Year,
		OutsideMonth: pd.OutsideMonth,
	}
}
