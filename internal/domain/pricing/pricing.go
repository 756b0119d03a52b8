package pricing

import (
	"context"
	"errors"

	"villastay/internal/domain/schedule"
	"villastay/internal/domain/seasonal"
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

var ErrNoNights = errors.New("pricing: stay must cover at least one night")

// Quote is the price offered for a stay before it becomes a reservation.
type Quote struct {
	Nights int
	Total  money.Money
}

type QuoteInput struct {
	Villa *villa.Villa
	Range daterange.DateRange
	Rules []*seasonal.Rule
}

type Calculator interface {
	Quote(ctx context.Context, input QuoteInput) (Quote, error)
}

// SeasonalCalculator prices a stay night by night: each night resolves through
// the same day resolver the calendar uses, so seasonal rules apply to exactly
// the nights they cover. A rule priced in a different currency than the rest
// of the stay surfaces the money mismatch instead of silently converting.
type SeasonalCalculator struct{}

func (SeasonalCalculator) Quote(ctx context.Context, input QuoteInput) (Quote, error) {
	if err := input.Range.Validate(); err != nil {
		return Quote{}, err
	}
	nights := input.Range.Nights()
	if nights < 1 {
		return Quote{}, ErrNoNights
	}
	if len(input.Rules) == 0 {
		return Quote{Nights: nights, Total: input.Villa.BasePrice.Multiply(int64(nights))}, nil
	}

	var total money.Money
	first := true
	for night := range input.Range.Days {
		ds := schedule.ResolveDay(input.Villa, night, nil, input.Rules)
		if first {
			total = ds.Price
			first = false
			continue
		}
		sum, err := total.Add(ds.Price)
		if err != nil {
			return Quote{}, err
		}
		total = sum
	}
	return Quote{Nights: nights, Total: total}, nil
}

var _ Calculator = SeasonalCalculator{}
