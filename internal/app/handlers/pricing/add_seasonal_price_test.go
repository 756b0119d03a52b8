package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricingapp "villastay/internal/app/handlers/pricing"
	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
	"villastay/internal/infra/storage/memory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

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
		CreatedAt:     day(2026, time.January, 1),
	})
	require.NoError(t, err)
	require.NoError(t, factory.VillaRepo.Save(context.Background(), v))
	return factory
}

func cmd(id string, start, end time.Time) pricingapp.AddSeasonalPriceCommand {
	return pricingapp.AddSeasonalPriceCommand{
		CommandID: id,
		VillaID:   "villa-1",
		Start:     start,
		End:       end,
		Amount:    25000,
		Currency:  "USD",
	}
}

func TestAddSeasonalPriceStoresRule(t *testing.T) {
	factory := newFixture(t)
	h := &pricingapp.AddSeasonalPriceHandler{UoWFactory: factory}

	res, err := h.Handle(context.Background(), cmd("rule-1", day(2026, time.July, 1), day(2026, time.July, 31)))
	require.NoError(t, err)
	assert.Equal(t, "rule-1", res.RuleID)

	rules, err := factory.SeasonalRepo.ByVilla(context.Background(), "villa-1")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, int64(25000), rules[0].Price.Amount)
}

func TestAddSeasonalPriceRejectsOverlapListingClashes(t *testing.T) {
	factory := newFixture(t)
	h := &pricingapp.AddSeasonalPriceHandler{UoWFactory: factory}

	_, err := h.Handle(context.Background(), cmd("rule-1", day(2026, time.July, 1), day(2026, time.July, 15)))
	require.NoError(t, err)
	_, err = h.Handle(context.Background(), cmd("rule-2", day(2026, time.August, 1), day(2026, time.August, 15)))
	require.NoError(t, err)

	_, err = h.Handle(context.Background(), cmd("rule-3", day(2026, time.July, 10), day(2026, time.August, 5)))
	require.ErrorIs(t, err, seasonal.ErrRuleOverlap)

	var overlap *seasonal.OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Len(t, overlap.Existing, 2)

	rules, err := factory.SeasonalRepo.ByVilla(context.Background(), "villa-1")
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestAddSeasonalPriceAdjacentSeasonsAllowed(t *testing.T) {
	factory := newFixture(t)
	h := &pricingapp.AddSeasonalPriceHandler{UoWFactory: factory}

	_, err := h.Handle(context.Background(), cmd("rule-1", day(2026, time.July, 1), day(2026, time.July, 15)))
	require.NoError(t, err)

	// Closed bounds: the next season must start the day after.
	_, err = h.Handle(context.Background(), cmd("rule-2", day(2026, time.July, 16), day(2026, time.July, 31)))
	require.NoError(t, err)

	_, err = h.Handle(context.Background(), cmd("rule-3", day(2026, time.July, 31), day(2026, time.August, 10)))
	require.ErrorIs(t, err, seasonal.ErrRuleOverlap)
}

func TestRemoveSeasonalPrice(t *testing.T) {
	factory := newFixture(t)
	add := &pricingapp.AddSeasonalPriceHandler{UoWFactory: factory}
	remove := &pricingapp.RemoveSeasonalPriceHandler{UoWFactory: factory}

	_, err := add.Handle(context.Background(), cmd("rule-1", day(2026, time.July, 1), day(2026, time.July, 15)))
	require.NoError(t, err)

	_, err = remove.Handle(context.Background(), pricingapp.RemoveSeasonalPriceCommand{RuleID: "rule-1"})
	require.NoError(t, err)

	rules, err := factory.SeasonalRepo.ByVilla(context.Background(), "villa-1")
	require.NoError(t, err)
	assert.Empty(t, rules)

	_, err = remove.Handle(context.Background(), pricingapp.RemoveSeasonalPriceCommand{RuleID: "rule-1"})
	assert.ErrorIs(t, err, seasonal.ErrRuleNotFound)
}
