package dashboard

import (
	"context"
	"sort"
	"time"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"
	domainreservation "villastay/internal/domain/reservation"
)

const getStatsKey = "dashboard.stats"

const recentBookingLimit = 5

type GetStatsQuery struct {
	ReferenceDate time.Time
}

func (q GetStatsQuery) Key() string { return getStatsKey }

type GetStatsHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (dto.Stats, error) {
	unit, ok := uow.FromContext(ctx)
	if !ok {
		if h.UoWFactory == nil {
			return dto.Stats{}, uow.ErrUnitOfWorkMissing
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: true})
		if err != nil {
			return dto.Stats{}, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		defer unit.Rollback(ctx)
	}

	villas, err := unit.Villas().List(ctx)
	if err != nil {
		return dto.Stats{}, err
	}
	reservations, err := unit.Reservations().All(ctx)
	if err != nil {
		return dto.Stats{}, err
	}

	today := q.ReferenceDate
	if today.IsZero() {
		today = time.Now().UTC()
	}

	stats := dto.Stats{
		Villas:  len(villas),
		Revenue: map[string]int64{},
	}
	var confirmed []*domainreservation.Reservation
	for _, r := range reservations {
		if r == nil {
			continue
		}
		switch r.Status {
		case domainreservation.StatusPending:
			stats.PendingBookings++
		case domainreservation.StatusConfirmed:
			confirmed = append(confirmed, r)
			stats.Revenue[string(r.Price.Currency)] += r.Price.Amount
			if r.OccupiesDay(today) {
				stats.ActiveStays++
			}
		}
	}

	sort.Slice(confirmed, func(i, j int) bool {
		return confirmed[i].CreatedAt.After(confirmed[j].CreatedAt)
	})
	if len(confirmed) > recentBookingLimit {
		confirmed = confirmed[:recentBookingLimit]
	}
	stats.RecentBookings = make([]dto.Booking, 0, len(confirmed))
	for _, r := range confirmed {
		stats.RecentBookings = append(stats.RecentBookings, dto.MapBooking(r))
	}
	return stats, nil
}

var _ queries.Handler[GetStatsQuery, dto.Stats] = (*GetStatsHandler)(nil)
