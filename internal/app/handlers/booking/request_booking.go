package booking

import (
	"context"
	"errors"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/app/outbox"
	"villastay/internal/app/uow"
	domainpricing "villastay/internal/domain/pricing"
	domainreservation "villastay/internal/domain/reservation"
	domainrange "villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/events"
	domainvilla "villastay/internal/domain/villa"
)

const requestBookingKey = "booking.request"

var (
	ErrUnitOfWorkRequired = errors.New("booking: unit of work required")
	ErrTooManyGuests      = errors.New("booking: guest count exceeds villa capacity")
	ErrStayTooShort       = errors.New("booking: stay is shorter than the villa minimum")
)

type RequestBookingCommand struct {
	CommandID       string
	VillaID         string
	CheckIn         time.Time
	CheckOut        time.Time
	Status          string
	Title           string
	Contact         domainreservation.ContactPerson
	Guests          []domainreservation.Guest
	SpecialRequests string
}

func (c RequestBookingCommand) Key() string { return requestBookingKey }

// RequestBookingResult carries either the created booking or, on a date
// clash, every reservation the proposal collided with.
type RequestBookingResult struct {
	Admitted  bool                  `json:"admitted"`
	Booking   *dto.Booking          `json:"booking,omitempty"`
	Conflicts []dto.BookingConflict `json:"conflicts,omitempty"`
}

type RequestBookingHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Encoder    outbox.EventEncoder
	Now        func() time.Time
}

func (h *RequestBookingHandler) Handle(ctx context.Context, cmd RequestBookingCommand) (*RequestBookingResult, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if h.UoWFactory == nil {
			return nil, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{})
		if err != nil {
			return nil, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		managed = true
	}
	if managed {
		defer func() {
			if !committed {
				_ = unit.Rollback(ctx)
			}
		}()
	}

	dr, err := domainrange.New(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}

	v, err := unit.Villas().ByID(ctx, domainvilla.VillaID(cmd.VillaID))
	if err != nil {
		return nil, err
	}
	if !v.Active {
		return nil, domainvilla.ErrVillaInactive
	}
	status := domainreservation.Status(cmd.Status)
	if status == "" {
		status = domainreservation.StatusPending
	}
	if status != domainreservation.StatusBlocked {
		if len(cmd.Guests) > v.MaxGuests {
			return nil, ErrTooManyGuests
		}
		if dr.Nights() < v.MinStayNights {
			return nil, ErrStayTooShort
		}
	}

	existing, err := unit.Reservations().ByVilla(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	admission, err := domainreservation.CanAdmit(v.ID, dr, existing)
	if err != nil {
		return nil, err
	}
	if !admission.Admitted {
		rejected := domainreservation.AdmissionRejected{
			VillaID:   v.ID,
			Range:     dr,
			Conflicts: len(admission.Conflicts),
			At:        h.now(),
		}
		if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), []events.DomainEvent{rejected}); err != nil {
			return nil, err
		}
		if managed {
			if err := unit.Commit(ctx); err != nil {
				return nil, err
			}
			committed = true
		}
		return &RequestBookingResult{
			Admitted:  false,
			Conflicts: dto.MapConflicts(admission.Conflicts),
		}, nil
	}

	rules, err := unit.SeasonalPrices().ByVilla(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	quote, err := unit.Pricing().Quote(ctx, domainpricing.QuoteInput{Villa: v, Range: dr, Rules: rules})
	if err != nil {
		return nil, err
	}

	r, err := domainreservation.New(domainreservation.CreateParams{
		ID:              domainreservation.ReservationID(cmd.CommandID),
		VillaID:         v.ID,
		Range:           dr,
		Status:          status,
		Price:           quote.Total,
		Title:           cmd.Title,
		ContactPerson:   cmd.Contact,
		Guests:          cmd.Guests,
		SpecialRequests: cmd.SpecialRequests,
		CreatedAt:       h.now(),
	})
	if err != nil {
		return nil, err
	}

	if err := unit.Reservations().Save(ctx, r); err != nil {
		return nil, err
	}

	pending := r.PendingEvents()
	r.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.encoder(), pending); err != nil {
		return nil, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return nil, err
		}
		committed = true
	}

	booking := dto.MapBooking(r)
	return &RequestBookingResult{Admitted: true, Booking: &booking}, nil
}

func (h *RequestBookingHandler) encoder() outbox.EventEncoder {
	if h.Encoder != nil {
		return h.Encoder
	}
	return outbox.JSONEventEncoder{}
}

func (h *RequestBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[RequestBookingCommand, *RequestBookingResult] = (*RequestBookingHandler)(nil)
