package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendarapp "villastay/internal/app/handlers/calendar"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
	"villastay/internal/infra/storage/memory"
)

func TestGetCalendarProjectsFullGrids(t *testing.T) {
	factory := memory.Factory{
		VillaRepo:       memory.NewVillaRepository(),
		ReservationRepo: memory.NewReservationRepository(),
		SeasonalRepo:    memory.NewSeasonalRepository(),
	}
	v, err := villa.New(villa.CreateParams{
		ID:            "villa-1",
		Name:          "Cliffside",
		BasePrice:     money.Must(15000, money.USD),
		MinStayNights: 1,
		MaxGuests:     4,
		CreatedAt:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, factory.VillaRepo.Save(context.Background(), v))

	h := &calendarapp.GetCalendarHandler{UoWFactory: factory}
	cal, err := h.Handle(context.Background(), calendarapp.GetCalendarQuery{
		VillaID: "villa-1",
		From:    time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Months:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cal.Months)
	require.Len(t, cal.Days, 84)

	// March 2026 begins on a Sunday, so the grid starts the Monday before.
	first := cal.Days[0]
	assert.Equal(t, "2026-02-23", first.Date)
	assert.True(t, first.OutsideMonth)
	assert.Equal(t, int(time.March), first.Month)

	for _, d := range cal.Days {
		assert.Equal(t, "available", d.Status)
		assert.Equal(t, int64(15000), d.PriceCents)
	}
}

func TestGetCalendarUnknownVilla(t *testing.T) {
	factory := memory.Factory{
		VillaRepo:       memory.NewVillaRepository(),
		ReservationRepo: memory.NewReservationRepository(),
		SeasonalRepo:    memory.NewSeasonalRepository(),
	}
	h := &calendarapp.GetCalendarHandler{UoWFactory: factory}
	_, err := h.Handle(context.Background(), calendarapp.GetCalendarQuery{
		VillaID: "missing",
		From:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Months:  1,
	})
	assert.ErrorIs(t, err, villa.ErrVillaNotFound)
}
