package booking

import (
	"context"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"
	domainreservation "villastay/internal/domain/reservation"
	domainvilla "villastay/internal/domain/villa"
)

const listBookingsKey = "booking.list"

type ListBookingsQuery struct {
	VillaID string
}

func (q ListBookingsQuery) Key() string { return listBookingsKey }

type ListBookingsHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *ListBookingsHandler) Handle(ctx context.Context, q ListBookingsQuery) ([]dto.Booking, error) {
	unit, ok := uow.FromContext(ctx)
	if !ok {
		if h.UoWFactory == nil {
			return nil, uow.ErrUnitOfWorkMissing
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: true})
		if err != nil {
			return nil, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		defer unit.Rollback(ctx)
	}

	rs, err := listReservations(ctx, unit, q.VillaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Booking, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.MapBooking(r))
	}
	return out, nil
}

func listReservations(ctx context.Context, unit uow.UnitOfWork, villaID string) ([]*domainreservation.Reservation, error) {
	if villaID != "" {
		return unit.Reservations().ByVilla(ctx, domainvilla.VillaID(villaID))
	}
	return unit.Reservations().All(ctx)
}

var _ queries.Handler[ListBookingsQuery, []dto.Booking] = (*ListBookingsHandler)(nil)
