package pricing

import (
	"context"

	"villastay/internal/app/commands"
	"villastay/internal/app/uow"
	domainseasonal "villastay/internal/domain/seasonal"
)

const removeSeasonalPriceKey = "pricing.remove_seasonal"

type RemoveSeasonalPriceCommand struct {
	RuleID string
}

func (c RemoveSeasonalPriceCommand) Key() string { return removeSeasonalPriceKey }

type RemoveSeasonalPriceHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *RemoveSeasonalPriceHandler) Handle(ctx context.Context, cmd RemoveSeasonalPriceCommand) (struct{}, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if h.UoWFactory == nil {
			return struct{}{}, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{})
		if err != nil {
			return struct{}{}, err
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

	if err := unit.SeasonalPrices().Delete(ctx, domainseasonal.RuleID(cmd.RuleID)); err != nil {
		return struct{}{}, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return struct{}{}, err
		}
		committed = true
	}
	return struct{}{}, nil
}

var _ commands.Handler[RemoveSeasonalPriceCommand, struct{}] = (*RemoveSeasonalPriceHandler)(nil)
