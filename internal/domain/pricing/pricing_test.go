package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVilla() *villa.Villa {
	return &villa.Villa{ID: "villa-a", Name: "Villa Portakal", BasePrice: money.Must(15000, money.EUR), MinStayNights: 1, MaxGuests: 6}
}

func seasonRule(t *testing.T, price money.Money, from, to time.Time) *seasonal.Rule {
	t.Helper()
	season, err := daterange.NewClosed(from, to)
	require.NoError(t, err)
	return &seasonal.Rule{ID: "s1", VillaID: "villa-a", Season: season, Price: price}
}

func TestQuoteBasePriceOnly(t *testing.T) {
	dr, _ := daterange.New(day(2026, time.February, 1), day(2026, time.February, 5))
	q, err := SeasonalCalculator{}.Quote(context.Background(), QuoteInput{Villa: testVilla(), Range: dr})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Nights)
	assert.Equal(t, money.Must(60000, money.EUR), q.Total)
}

func TestQuoteMixesSeasonalAndBaseNights(t *testing.T) {
	// Rule covers June 1..June 2 inclusive; the stay June 1..June 5 has two
	// seasonal nights and two base nights.
	rule := seasonRule(t, money.Must(25000, money.EUR), day(2026, time.June, 1), day(2026, time.June, 2))
	dr, _ := daterange.New(day(2026, time.June, 1), day(2026, time.June, 5))

	q, err := SeasonalCalculator{}.Quote(context.Background(), QuoteInput{Villa: testVilla(), Range: dr, Rules: []*seasonal.Rule{rule}})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Nights)
	assert.Equal(t, money.Must(2*25000+2*15000, money.EUR), q.Total)
}

func TestQuoteCurrencyMismatchSurfaces(t *testing.T) {
	rule := seasonRule(t, money.Must(900000, money.TRY), day(2026, time.June, 1), day(2026, time.June, 2))
	dr, _ := daterange.New(day(2026, time.June, 1), day(2026, time.June, 5))

	_, err := SeasonalCalculator{}.Quote(context.Background(), QuoteInput{Villa: testVilla(), Range: dr, Rules: []*seasonal.Rule{rule}})
	assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
}

func TestQuoteRejectsMalformedRange(t *testing.T) {
	bad := daterange.DateRange{CheckIn: day(2026, time.June, 5), CheckOut: day(2026, time.June, 5)}
	_, err := SeasonalCalculator{}.Quote(context.Background(), QuoteInput{Villa: testVilla(), Range: bad})
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}
