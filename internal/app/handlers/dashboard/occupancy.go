package dashboard

import (
	"context"
	"time"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"
	"villastay/internal/domain/schedule"
)

const weeklyOccupancyKey = "dashboard.occupancy"

type WeeklyOccupancyQuery struct {
	ReferenceDate time.Time
}

func (q WeeklyOccupancyQuery) Key() string { return weeklyOccupancyKey }

type WeeklyOccupancyHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *WeeklyOccupancyHandler) Handle(ctx context.Context, q WeeklyOccupancyQuery) (dto.Occupancy, error) {
	unit, ok := uow.FromContext(ctx)
	if !ok {
		if h.UoWFactory == nil {
			return dto.Occupancy{}, uow.ErrUnitOfWorkMissing
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: true})
		if err != nil {
			return dto.Occupancy{}, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		defer unit.Rollback(ctx)
	}

	villas, err := unit.Villas().List(ctx)
	if err != nil {
		return dto.Occupancy{}, err
	}
	reservations, err := unit.Reservations().All(ctx)
	if err != nil {
		return dto.Occupancy{}, err
	}

	ref := q.ReferenceDate
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	return dto.MapOccupancy(schedule.WeeklyOccupancy(villas, reservations, ref)), nil
}

var _ queries.Handler[WeeklyOccupancyQuery, dto.Occupancy] = (*WeeklyOccupancyHandler)(nil)
