package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
)

func TestNewRequiresContactUnlessBlocked(t *testing.T) {
	dr, _ := daterange.New(day(2026, time.April, 1), day(2026, time.April, 5))

	_, err := New(CreateParams{ID: "r1", VillaID: villaA, Range: dr, Status: StatusPending})
	assert.ErrorIs(t, err, ErrContactRequired)

	block, err := New(CreateParams{ID: "b1", VillaID: villaA, Range: dr, Status: StatusBlocked, Title: "Owner stay"})
	require.NoError(t, err)
	assert.Equal(t, StatusBlocked, block.Status)
}

func TestNewDefaultsToPendingAndRecordsEvent(t *testing.T) {
	dr, _ := daterange.New(day(2026, time.April, 1), day(2026, time.April, 5))
	r, err := New(CreateParams{
		ID:            "r1",
		VillaID:       villaA,
		Range:         dr,
		Price:         money.Must(40000, money.EUR),
		ContactPerson: ContactPerson{FullName: "Ayşe Yılmaz"},
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, r.Status)

	evs := r.PendingEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, "reservation.requested", evs[0].EventName())
}

func TestNewRejectsCancelledStatus(t *testing.T) {
	dr, _ := daterange.New(day(2026, time.April, 1), day(2026, time.April, 5))
	_, err := New(CreateParams{ID: "r1", VillaID: villaA, Range: dr, Status: StatusCancelled})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStateTransitions(t *testing.T) {
	r := stay(t, "r1", villaA, StatusPending, day(2026, time.April, 1), day(2026, time.April, 5))
	now := time.Now()

	require.NoError(t, r.Confirm(now))
	assert.Equal(t, StatusConfirmed, r.Status)
	assert.ErrorIs(t, r.Confirm(now), ErrInvalidState)

	require.NoError(t, r.Cancel("guest request", now))
	assert.Equal(t, StatusCancelled, r.Status)
	assert.ErrorIs(t, r.Cancel("again", now), ErrInvalidState)
	assert.False(t, r.IsActive())
}

func TestOccupiesDayCountsCheckout(t *testing.T) {
	r := stay(t, "r1", villaA, StatusConfirmed, day(2026, time.April, 1), day(2026, time.April, 5))
	assert.True(t, r.OccupiesDay(day(2026, time.April, 5)))
	assert.False(t, r.Range.ContainsDate(day(2026, time.April, 5)))

	require.NoError(t, r.Cancel("", time.Now()))
	assert.False(t, r.OccupiesDay(day(2026, time.April, 3)))
}
