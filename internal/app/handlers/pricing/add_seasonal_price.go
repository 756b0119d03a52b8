package pricing

import (
	"context"
	"errors"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/uow"
	domainseasonal "villastay/internal/domain/seasonal"
	domainrange "villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

const addSeasonalPriceKey = "pricing.add_seasonal"

var ErrUnitOfWorkRequired = errors.New("pricing: unit of work required")

type AddSeasonalPriceCommand struct {
	CommandID string
	VillaID   string
	Start     time.Time
	End       time.Time
	Amount    int64
	Currency  string
}

func (c AddSeasonalPriceCommand) Key() string { return addSeasonalPriceKey }

type AddSeasonalPriceResult struct {
	RuleID string `json:"rule_id"`
}

type AddSeasonalPriceHandler struct {
	UoWFactory uow.UoWFactory
	Now        func() time.Time
}

func (h *AddSeasonalPriceHandler) Handle(ctx context.Context, cmd AddSeasonalPriceCommand) (*AddSeasonalPriceResult, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if h.UoWFactory == nil {
			return nil, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{})
		if err != nil {
			return nil, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		managed = true
	}
	if managed {
		defer func() {
			if !committed {
				_ = unit.Rollback(ctx)
			}
		}()
	}

	season, err := domainrange.NewClosed(cmd.Start, cmd.End)
	if err != nil {
		return nil, err
	}
	currency, err := money.ParseCurrency(cmd.Currency)
	if err != nil {
		return nil, err
	}
	price, err := money.New(cmd.Amount, currency)
	if err != nil {
		return nil, err
	}

	v, err := unit.Villas().ByID(ctx, domainvilla.VillaID(cmd.VillaID))
	if err != nil {
		return nil, err
	}

	rule, err := domainseasonal.NewRule(domainseasonal.CreateParams{
		ID:        domainseasonal.RuleID(cmd.CommandID),
		VillaID:   v.ID,
		Season:    season,
		Price:     price,
		CreatedAt: h.now(),
	})
	if err != nil {
		return nil, err
	}

	existing, err := unit.SeasonalPrices().ByVilla(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if err := domainseasonal.CheckOverlap(rule, existing); err != nil {
		return nil, err
	}

	if err := unit.SeasonalPrices().Save(ctx, rule); err != nil {
		return nil, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return nil, err
		}
		committed = true
	}
	return &AddSeasonalPriceResult{RuleID: string(rule.ID)}, nil
}

func (h *AddSeasonalPriceHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[AddSeasonalPriceCommand, *AddSeasonalPriceResult] = (*AddSeasonalPriceHandler)(nil)
