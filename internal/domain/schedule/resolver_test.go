package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/reservation"
	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVilla() *villa.Villa {
	return &villa.Villa{
		ID:            "villa-a",
		Name:          "Villa Portakal",
		BasePrice:     money.Must(15000, money.EUR),
		MinStayNights: 2,
		MaxGuests:     6,
		Active:        true,
	}
}

func stay(t *testing.T, id string, status reservation.Status, price money.Money, from, to time.Time) *reservation.Reservation {
	t.Helper()
	dr, err := daterange.New(from, to)
	require.NoError(t, err)
	return &reservation.Reservation{
		ID:            reservation.ReservationID(id),
		VillaID:       "villa-a",
		Range:         dr,
		Status:        status,
		Price:         price,
		ContactPerson: reservation.ContactPerson{FullName: "Mehmet Kaya"},
	}
}

func seasonRule(t *testing.T, id string, price money.Money, from, to time.Time) *seasonal.Rule {
	t.Helper()
	season, err := daterange.NewClosed(from, to)
	require.NoError(t, err)
	return &seasonal.Rule{ID: seasonal.RuleID(id), VillaID: "villa-a", Season: season, Price: price}
}

func TestResolveDayReservationBeatsSeasonalRule(t *testing.T) {
	v := testVilla()
	res := []*reservation.Reservation{
		stay(t, "r1", reservation.StatusConfirmed, money.Must(10000, money.EUR), day(2026, time.June, 10), day(2026, time.June, 20)),
	}
	rules := []*seasonal.Rule{
		seasonRule(t, "s1", money.Must(8000, money.EUR), day(2026, time.June, 1), day(2026, time.June, 30)),
	}

	ds := ResolveDay(v, day(2026, time.June, 15), res, rules)
	assert.Equal(t, DayConfirmed, ds.Status)
	assert.Equal(t, money.Must(10000, money.EUR), ds.Price)
	assert.False(t, ds.IsSeasonal)
	assert.Equal(t, "Mehmet Kaya", ds.OccupantLabel)
}

func TestResolveDaySeasonalFallback(t *testing.T) {
	v := testVilla()
	rules := []*seasonal.Rule{
		seasonRule(t, "s1", money.Must(22000, money.EUR), day(2026, time.July, 1), day(2026, time.July, 31)),
	}

	ds := ResolveDay(v, day(2026, time.July, 31), nil, rules)
	assert.Equal(t, DayAvailable, ds.Status)
	assert.True(t, ds.IsSeasonal)
	assert.Equal(t, money.Must(22000, money.EUR), ds.Price)
}

func TestResolveDayBasePriceFallback(t *testing.T) {
	v := testVilla()
	ds := ResolveDay(v, day(2026, time.February, 3), nil, nil)
	assert.Equal(t, DayAvailable, ds.Status)
	assert.False(t, ds.IsSeasonal)
	assert.Equal(t, v.BasePrice, ds.Price)
	assert.Empty(t, ds.OccupantLabel)
}

func TestResolveDayBlockedStay(t *testing.T) {
	v := testVilla()
	block := stay(t, "b1", reservation.StatusBlocked, money.Money{}, day(2026, time.March, 1), day(2026, time.March, 8))
	block.ContactPerson = reservation.ContactPerson{}
	block.Title = "Owner maintenance"

	ds := ResolveDay(v, day(2026, time.March, 3), []*reservation.Reservation{block}, nil)
	assert.Equal(t, DayBlocked, ds.Status)
	assert.Equal(t, v.BasePrice, ds.Price, "blocked stay without a stored price shows the base price")
	assert.Equal(t, "Owner maintenance", ds.OccupantLabel)
}

func TestResolveDayCheckoutDayIsFree(t *testing.T) {
	v := testVilla()
	res := []*reservation.Reservation{
		stay(t, "r1", reservation.StatusConfirmed, money.Must(10000, money.EUR), day(2026, time.June, 10), day(2026, time.June, 20)),
	}
	ds := ResolveDay(v, day(2026, time.June, 20), res, nil)
	assert.Equal(t, DayAvailable, ds.Status, "half-open range: checkout day takes new arrivals")
}

func TestResolveDayIgnoresCancelled(t *testing.T) {
	v := testVilla()
	res := []*reservation.Reservation{
		stay(t, "r1", reservation.StatusCancelled, money.Must(10000, money.EUR), day(2026, time.June, 10), day(2026, time.June, 20)),
	}
	ds := ResolveDay(v, day(2026, time.June, 15), res, nil)
	assert.Equal(t, DayAvailable, ds.Status)
}

func TestResolveDayFirstRuleWinsOnUpstreamOverlap(t *testing.T) {
	// Overlapping rules violate a write-path invariant; the resolver must not
	// crash and picks the first match.
	v := testVilla()
	rules := []*seasonal.Rule{
		seasonRule(t, "s1", money.Must(30000, money.EUR), day(2026, time.August, 1), day(2026, time.August, 31)),
		seasonRule(t, "s2", money.Must(40000, money.EUR), day(2026, time.August, 15), day(2026, time.September, 15)),
	}
	ds := ResolveDay(v, day(2026, time.August, 20), nil, rules)
	assert.Equal(t, money.Must(30000, money.EUR), ds.Price)
}

func TestResolveDayPendingStatus(t *testing.T) {
	v := testVilla()
	res := []*reservation.Reservation{
		stay(t, "r1", reservation.StatusPending, money.Must(9000, money.EUR), day(2026, time.May, 1), day(2026, time.May, 4)),
	}
	ds := ResolveDay(v, day(2026, time.May, 2), res, nil)
	assert.Equal(t, DayPending, ds.Status)
}
