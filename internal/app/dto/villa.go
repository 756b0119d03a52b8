package dto

import (
	"villastay/internal/domain/villa"
)

type Villa struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Code           string   `json:"code,omitempty"`
	Description    string   `json:"description,omitempty"`
	Location       string   `json:"location,omitempty"`
	BasePriceCents int64    `json:"base_price_cents"`
	Currency       string   `json:"currency"`
	BasePrice      string   `json:"base_price"`
	MinStayNights  int      `json:"min_stay_nights"`
	MaxGuests      int      `json:"max_guests"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Features       []string `json:"features,omitempty"`
	Active         bool     `json:"active"`
	Featured       bool     `json:"featured"`
}

func MapVilla(v *villa.Villa) Villa {
	return Villa{
		ID:             string(v.ID),
		Name:           v.Name,
		Code:           v.Code,
		Description:    v.Description,
		Location:       v.Location,
		BasePriceCents: v.BasePrice.Amount,
		Currency:       string(v.BasePrice.Currency),
		BasePrice:      v.BasePrice.Format(),
		MinStayNights:  v.MinStayNights,
		MaxGuests:      v.MaxGuests,
		Bedrooms:       v.Bedrooms,
		Bathrooms:      v.Bathrooms,
		Features:       v.Features,
		Active:         v.Active,
		Featured:       v.Featured,
	}
}

func MapVillas(vs []*villa.Villa) []Villa {
	out := make([]Villa, 0, len(vs))
	for _, v := range vs {
		out = append(out, MapVilla(v))
	}
	return out
}
