package calendar

import (
	"context"
	"time"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"
	"villastay/internal/domain/schedule"
	domainvilla "villastay/internal/domain/villa"
)

const getCalendarKey = "calendar.get"

type GetCalendarQuery struct {
	VillaID string
	From    time.Time
	Months  int
}

func (q GetCalendarQuery) Key() string { return getCalendarKey }

type GetCalendarHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.Calendar, error) {
	unit, ok := uow.FromContext(ctx)
	if !ok {
		if h.UoWFactory == nil {
			return dto.Calendar{}, uow.ErrUnitOfWorkMissing
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: true})
		if err != nil {
			return dto.Calendar{}, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		defer unit.Rollback(ctx)
	}

	v, err := unit.Villas().ByID(ctx, domainvilla.VillaID(q.VillaID))
	if err != nil {
		return dto.Calendar{}, err
	}
	reservations, err := unit.Reservations().ByVilla(ctx, v.ID)
	if err != nil {
		return dto.Calendar{}, err
	}
	rules, err := unit.SeasonalPrices().ByVilla(ctx, v.ID)
	if err != nil {
		return dto.Calendar{}, err
	}

	months := q.Months
	if months < 1 {
		months = 1
	}
	seq, err := schedule.Project(v, q.From, months, reservations, rules)
	if err != nil {
		return dto.Calendar{}, err
	}

	cal := dto.Calendar{
		VillaID: string(v.ID),
		From:    q.From.Format(time.DateOnly),
		Months:  months,
		Days:    make([]dto.CalendarDay, 0, months*42),
	}
	for pd := range seq {
		cal.Days = append(cal.Days, dto.MapProjectedDay(pd))
	}
	return cal, nil
}

var _ queries.Handler[GetCalendarQuery, dto.Calendar] = (*GetCalendarHandler)(nil)
