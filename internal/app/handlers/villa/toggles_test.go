package villa_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	villaapp "villastay/internal/app/handlers/villa"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
	"villastay/internal/infra/storage/memory"
)

func newFixture(t *testing.T) memory.Factory {
	t.Helper()
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
	v.ClearEvents()
	require.NoError(t, factory.VillaRepo.Save(context.Background(), v))
	return factory
}

func TestToggleActiveFlipsAndRecordsEvent(t *testing.T) {
	factory := newFixture(t)
	box := memory.NewOutbox()
	h := &villaapp.ToggleVillaActiveHandler{UoWFactory: factory, Outbox: box}

	res, err := h.Handle(context.Background(), villaapp.ToggleVillaActiveCommand{VillaID: "villa-1"})
	require.NoError(t, err)
	assert.False(t, res.Active)

	pending := box.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "villa.status_toggled", pending[0].Name)

	res, err = h.Handle(context.Background(), villaapp.ToggleVillaActiveCommand{VillaID: "villa-1"})
	require.NoError(t, err)
	assert.True(t, res.Active)
}

func TestToggleFeatured(t *testing.T) {
	factory := newFixture(t)
	h := &villaapp.ToggleVillaFeaturedHandler{UoWFactory: factory, Outbox: memory.NewOutbox()}

	res, err := h.Handle(context.Background(), villaapp.ToggleVillaFeaturedCommand{VillaID: "villa-1"})
	require.NoError(t, err)
	assert.True(t, res.Featured)
}

func TestCreateVillaValidates(t *testing.T) {
	factory := memory.Factory{
		VillaRepo:       memory.NewVillaRepository(),
		ReservationRepo: memory.NewReservationRepository(),
		SeasonalRepo:    memory.NewSeasonalRepository(),
	}
	h := &villaapp.CreateVillaHandler{UoWFactory: factory, Outbox: memory.NewOutbox()}

	_, err := h.Handle(context.Background(), villaapp.CreateVillaCommand{
		CommandID: "villa-2",
		Name:      "",
		Amount:    10000,
		Currency:  "USD",
	})
	assert.ErrorIs(t, err, villa.ErrNameRequired)

	created, err := h.Handle(context.Background(), villaapp.CreateVillaCommand{
		CommandID:     "villa-2",
		Name:          "Seafront",
		Amount:        10000,
		Currency:      "TRY",
		MinStayNights: 1,
		MaxGuests:     6,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, "TRY", created.Currency)
}
