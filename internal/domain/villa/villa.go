package villa

import (
	"context"
	"errors"
	"strings"
	"time"

	"villastay/internal/domain/shared/events"
	"villastay/internal/domain/shared/money"
)

var (
	ErrNameRequired   = errors.New("villa: name is required")
	ErrInvalidPrice   = errors.New("villa: base price must be non-negative")
	ErrGuestsLimit    = errors.New("villa: max guests must be at least 1")
	ErrMinStayNights  = errors.New("villa: minimum stay must be at least 1 night")
	ErrVillaNotFound  = errors.New("villa: not found")
	ErrVillaInactive  = errors.New("villa: not active")
)

type VillaID string

// Villa is the rentable unit. The availability and pricing engine treats it as
// an immutable snapshot: base nightly price plus stay constraints.
type Villa struct {
	ID            VillaID
	Name          string
	Code          string
	Description   string
	Location      string
	BasePrice     money.Money
	MinStayNights int
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Features      []string
	Active        bool
	Featured      bool
	OwnerName     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
	events.EventRecorder
}

type Repository interface {
	ByID(ctx context.Context, id VillaID) (*Villa, error)
	List(ctx context.Context) ([]*Villa, error)
	Save(ctx context.Context, v *Villa) error
}

type CreateParams struct {
	ID            VillaID
	Name          string
	Code          string
	Description   string
	Location      string
	BasePrice     money.Money
	MinStayNights int
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Features      []string
	OwnerName     string
	CreatedAt     time.Time
}

func New(params CreateParams) (*Villa, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if !params.BasePrice.Currency.Valid() || params.BasePrice.Amount < 0 {
		return nil, ErrInvalidPrice
	}
	if params.MinStayNights < 1 {
		return nil, ErrMinStayNights
	}
	if params.MaxGuests < 1 {
		return nil, ErrGuestsLimit
	}
	now := params.CreatedAt.UTC()
	v := &Villa{
		ID:            params.ID,
		Name:          params.Name,
		Code:          params.Code,
		Description:   params.Description,
		Location:      params.Location,
		BasePrice:     params.BasePrice,
		MinStayNights: params.MinStayNights,
		MaxGuests:     params.MaxGuests,
		Bedrooms:      params.Bedrooms,
		Bathrooms:     params.Bathrooms,
		Features:      params.Features,
		OwnerName:     params.OwnerName,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	v.Record(VillaCreated{VillaID: v.ID, Name: v.Name, At: now})
	return v, nil
}

func (v *Villa) ToggleActive(now time.Time) {
	v.Active = !v.Active
	v.UpdatedAt = now.UTC()
	v.Record(VillaStatusToggled{VillaID: v.ID, Active: v.Active, At: v.UpdatedAt})
}

func (v *Villa) ToggleFeatured(now time.Time) {
	v.Featured = !v.Featured
	v.UpdatedAt = now.UTC()
}
