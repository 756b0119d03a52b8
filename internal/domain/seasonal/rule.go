package seasonal

import (
	"context"
	"errors"
	"time"

	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
)

var (
	ErrRuleNotFound = errors.New("seasonal: rule not found")
	ErrRuleOverlap  = errors.New("seasonal: date range overlaps an existing rule")
)

type RuleID string

// Rule overrides a villa's nightly base price for a fixed calendar interval.
// Season bounds are inclusive on both ends: a rule for June 1..June 30 prices
// the night of June 30 too.
type Rule struct {
	ID        RuleID
	VillaID   villa.VillaID
	Season    daterange.ClosedRange
	Price     money.Money
	CreatedAt time.Time
}

type Repository interface {
	ByVilla(ctx context.Context, id villa.VillaID) ([]*Rule, error)
	Save(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id RuleID) error
}

type CreateParams struct {
	ID        RuleID
	VillaID   villa.VillaID
	Season    daterange.ClosedRange
	Price     money.Money
	CreatedAt time.Time
}

func NewRule(params CreateParams) (*Rule, error) {
	if err := params.Season.Validate(); err != nil {
		return nil, err
	}
	if !params.Price.Currency.Valid() {
		return nil, money.ErrInvalidCurrency
	}
	return &Rule{
		ID:        params.ID,
		VillaID:   params.VillaID,
		Season:    params.Season,
		Price:     params.Price,
		CreatedAt: params.CreatedAt.UTC(),
	}, nil
}

// OverlapError rejects a new rule and lists every stored rule it collides
// with, mirroring how admission conflicts surface all offenders at once.
type OverlapError struct {
	Existing []*Rule
}

func (e *OverlapError) Error() string { return ErrRuleOverlap.Error() }

func (e *OverlapError) Unwrap() error { return ErrRuleOverlap }

// CheckOverlap enforces the non-overlap invariant on the write path. The read
// path (price resolution) stays defensive and never assumes it held.
func CheckOverlap(candidate *Rule, existing []*Rule) error {
	var clashes []*Rule
	for _, r := range existing {
		if r == nil || r.VillaID != candidate.VillaID || r.ID == candidate.ID {
			continue
		}
		if candidate.Season.Overlaps(r.Season) {
			clashes = append(clashes, r)
		}
	}
	if len(clashes) > 0 {
		return &OverlapError{Existing: clashes}
	}
	return nil
}
