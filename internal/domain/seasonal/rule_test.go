package seasonal

import (
	"errors"
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

func rule(t *testing.T, id string, vid villa.VillaID, from, to time.Time) *Rule {
	t.Helper()
	season, err := daterange.NewClosed(from, to)
	require.NoError(t, err)
	r, err := NewRule(CreateParams{ID: RuleID(id), VillaID: vid, Season: season, Price: money.Must(20000, money.EUR)})
	require.NoError(t, err)
	return r
}

func TestNewRuleValidatesSeasonAndCurrency(t *testing.T) {
	season, _ := daterange.NewClosed(day(2026, time.June, 1), day(2026, time.June, 30))
	_, err := NewRule(CreateParams{ID: "s1", VillaID: villaA, Season: season, Price: money.Money{Amount: 100, Currency: "XXX"}})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)

	bad := daterange.ClosedRange{Start: day(2026, time.June, 30), End: day(2026, time.June, 1)}
	_, err = NewRule(CreateParams{ID: "s1", VillaID: villaA, Season: bad, Price: money.Must(100, money.EUR)})
	assert.ErrorIs(t, err, daterange.ErrInvalidSeason)
}

func TestCheckOverlapListsAllClashes(t *testing.T) {
	existing := []*Rule{
		rule(t, "s1", villaA, day(2026, time.June, 1), day(2026, time.June, 30)),
		rule(t, "s2", villaA, day(2026, time.July, 1), day(2026, time.July, 31)),
		rule(t, "s3", "villa-b", day(2026, time.June, 1), day(2026, time.August, 31)),
	}
	candidate := rule(t, "new", villaA, day(2026, time.June, 15), day(2026, time.July, 15))

	err := CheckOverlap(candidate, existing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRuleOverlap)

	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Len(t, overlap.Existing, 2, "other villa's rule must not clash")
}

func TestCheckOverlapSharedBoundaryDayClashes(t *testing.T) {
	// Closed intervals share their boundary day, unlike reservation ranges.
	existing := []*Rule{rule(t, "s1", villaA, day(2026, time.June, 1), day(2026, time.June, 30))}
	candidate := rule(t, "new", villaA, day(2026, time.June, 30), day(2026, time.July, 10))
	assert.ErrorIs(t, CheckOverlap(candidate, existing), ErrRuleOverlap)
}

func TestCheckOverlapAdjacentSeasonsAllowed(t *testing.T) {
	existing := []*Rule{rule(t, "s1", villaA, day(2026, time.June, 1), day(2026, time.June, 30))}
	candidate := rule(t, "new", villaA, day(2026, time.July, 1), day(2026, time.July, 31))
	assert.NoError(t, CheckOverlap(candidate, existing))
}
