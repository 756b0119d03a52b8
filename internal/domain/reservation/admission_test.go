package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

const villaA villa.VillaID = "villa-a"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, id string, vid villa.VillaID, status Status, from, to time.Time) *Reservation {
	t.Helper()
	dr, err := daterange.New(from, to)
	require.NoError(t, err)
	return &Reservation{
		ID:      ReservationID(id),
		VillaID: vid,
		Range:   dr,
		Status:  status,
		Price:   money.Must(10000, money.EUR),
	}
}

func proposed(t *testing.T, from, to time.Time) daterange.DateRange {
	t.Helper()
	dr, err := daterange.New(from, to)
	require.NoError(t, err)
	return dr
}

func TestCanAdmitEmptyCalendar(t *testing.T) {
	res, err := CanAdmit(villaA, proposed(t, day(2026, time.January, 10), day(2026, time.January, 15)), nil)
	require.NoError(t, err)
	assert.True(t, res.Admitted)
	assert.Empty(t, res.Conflicts)
}

func TestCanAdmitSharedBoundaryDays(t *testing.T) {
	existing := []*Reservation{
		stay(t, "r1", villaA, StatusConfirmed, day(2026, time.January, 5), day(2026, time.January, 10)),
		stay(t, "r2", villaA, StatusConfirmed, day(2026, time.January, 15), day(2026, time.January, 20)),
	}

	// New stay checks in the day r1 checks out and checks out the day r2
	// checks in: same-day turnover on both ends.
	res, err := CanAdmit(villaA, proposed(t, day(2026, time.January, 10), day(2026, time.January, 15)), existing)
	require.NoError(t, err)
	assert.True(t, res.Admitted)
	assert.Empty(t, res.Conflicts)
}

func TestCanAdmitRejectsRealOverlap(t *testing.T) {
	overlapping := stay(t, "r3", villaA, StatusConfirmed, day(2026, time.January, 12), day(2026, time.January, 18))
	res, err := CanAdmit(villaA, proposed(t, day(2026, time.January, 10), day(2026, time.January, 15)), []*Reservation{overlapping})
	require.NoError(t, err)
	assert.False(t, res.Admitted)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, ReservationID("r3"), res.Conflicts[0].ID)
}

func TestCanAdmitAccumulatesAllConflicts(t *testing.T) {
	existing := []*Reservation{
		stay(t, "r1", villaA, StatusPending, day(2026, time.March, 1), day(2026, time.March, 5)),
		stay(t, "r2", villaA, StatusBlocked, day(2026, time.March, 6), day(2026, time.March, 9)),
		stay(t, "r3", villaA, StatusConfirmed, day(2026, time.March, 10), day(2026, time.March, 20)),
	}
	res, err := CanAdmit(villaA, proposed(t, day(2026, time.March, 2), day(2026, time.March, 12)), existing)
	require.NoError(t, err)
	assert.False(t, res.Admitted)
	require.Len(t, res.Conflicts, 3, "all conflicts surfaced, not just the first")
}

func TestCanAdmitIgnoresCancelledAndOtherVillas(t *testing.T) {
	existing := []*Reservation{
		stay(t, "cancelled", villaA, StatusCancelled, day(2026, time.May, 1), day(2026, time.May, 30)),
		stay(t, "other", "villa-b", StatusConfirmed, day(2026, time.May, 1), day(2026, time.May, 30)),
	}
	res, err := CanAdmit(villaA, proposed(t, day(2026, time.May, 10), day(2026, time.May, 12)), existing)
	require.NoError(t, err)
	assert.True(t, res.Admitted)
}

func TestCanAdmitRejectsMalformedRange(t *testing.T) {
	bad := daterange.DateRange{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 10)}
	_, err := CanAdmit(villaA, bad, nil)
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

// Admission invariant: once a range is admitted against an existing stay, the
// two never both claim the same day under half-open containment.
func TestAdmittedRangesNeverShareADay(t *testing.T) {
	existing := stay(t, "r1", villaA, StatusConfirmed, day(2026, time.July, 5), day(2026, time.July, 10))
	candidates := []daterange.DateRange{
		proposed(t, day(2026, time.July, 1), day(2026, time.July, 5)),
		proposed(t, day(2026, time.July, 10), day(2026, time.July, 15)),
		proposed(t, day(2026, time.July, 20), day(2026, time.July, 22)),
	}
	for _, cand := range candidates {
		res, err := CanAdmit(villaA, cand, []*Reservation{existing})
		require.NoError(t, err)
		require.True(t, res.Admitted)
		for d := range cand.Days {
			assert.False(t, existing.Range.ContainsDate(d), "day %s claimed twice", d.Format(time.DateOnly))
		}
	}
}
