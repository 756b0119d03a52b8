package booking

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/app/outbox"
	"villastay/internal/app/uow"
	domainreservation "villastay/internal/domain/reservation"
)

const (
	confirmBookingKey = "booking.confirm"
	cancelBookingKey  = "booking.cancel"
)

type ConfirmBookingCommand struct {
	BookingID string
}

func (c ConfirmBookingCommand) Key() string { return confirmBookingKey }

type CancelBookingCommand struct {
	BookingID string
	Reason    string
}

func (c CancelBookingCommand) Key() string { return cancelBookingKey }

type ConfirmBookingHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Encoder    outbox.EventEncoder
	Now        func() time.Time
}

func (h *ConfirmBookingHandler) Handle(ctx context.Context, cmd ConfirmBookingCommand) (dto.Booking, error) {
	return mutateBooking(ctx, h.UoWFactory, h.Outbox, h.Encoder, cmd.BookingID, func(r *domainreservation.Reservation) error {
		return r.Confirm(nowOrWall(h.Now))
	})
}

type CancelBookingHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Encoder    outbox.EventEncoder
	Now        func() time.Time
}

func (h *CancelBookingHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (dto.Booking, error) {
	return mutateBooking(ctx, h.UoWFactory, h.Outbox, h.Encoder, cmd.BookingID, func(r *domainreservation.Reservation) error {
		return r.Cancel(cmd.Reason, nowOrWall(h.Now))
	})
}

func mutateBooking(ctx context.Context, factory uow.UoWFactory, box outbox.Outbox, enc outbox.EventEncoder, id string, mutate func(*domainreservation.Reservation) error) (dto.Booking, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if factory == nil {
			return dto.Booking{}, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = factory.Begin(ctx, uow.TxOptions{})
		if err != nil {
			return dto.Booking{}, err
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

	r, err := unit.Reservations().ByID(ctx, domainreservation.ReservationID(id))
	if err != nil {
		return dto.Booking{}, err
	}
	if err := mutate(r); err != nil {
		return dto.Booking{}, err
	}
	if err := unit.Reservations().Save(ctx, r); err != nil {
		return dto.Booking{}, err
	}

	pending := r.PendingEvents()
	r.ClearEvents()
	if enc == nil {
		enc = outbox.JSONEventEncoder{}
	}
	if err := outbox.RecordDomainEvents(ctx, box, enc, pending); err != nil {
		return dto.Booking{}, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return dto.Booking{}, err
		}
		committed = true
	}
	return dto.MapBooking(r), nil
}

func nowOrWall(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[ConfirmBookingCommand, dto.Booking] = (*ConfirmBookingHandler)(nil)
var _ commands.Handler[CancelBookingCommand, dto.Booking] = (*CancelBookingHandler)(nil)
