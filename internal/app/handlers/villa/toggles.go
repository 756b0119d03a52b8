package villa

import (
	"context"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/app/outbox"
	"villastay/internal/app/uow"
	domainvilla "villastay/internal/domain/villa"
)

const (
	toggleActiveKey   = "villa.toggle_active"
	toggleFeaturedKey = "villa.toggle_featured"
)

type ToggleVillaActiveCommand struct {
	VillaID string
}

func (c ToggleVillaActiveCommand) Key() string { return toggleActiveKey }

type ToggleVillaFeaturedCommand struct {
	VillaID string
}

func (c ToggleVillaFeaturedCommand) Key() string { return toggleFeaturedKey }

type ToggleVillaActiveHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Now        func() time.Time
}

func (h *ToggleVillaActiveHandler) Handle(ctx context.Context, cmd ToggleVillaActiveCommand) (dto.Villa, error) {
	return mutateVilla(ctx, h.UoWFactory, h.Outbox, cmd.VillaID, func(v *domainvilla.Villa) {
		v.ToggleActive(nowOrWall(h.Now))
	})
}

type ToggleVillaFeaturedHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Now        func() time.Time
}

func (h *ToggleVillaFeaturedHandler) Handle(ctx context.Context, cmd ToggleVillaFeaturedCommand) (dto.Villa, error) {
	return mutateVilla(ctx, h.UoWFactory, h.Outbox, cmd.VillaID, func(v *domainvilla.Villa) {
		v.ToggleFeatured(nowOrWall(h.Now))
	})
}

func mutateVilla(ctx context.Context, factory uow.UoWFactory, box outbox.Outbox, id string, mutate func(*domainvilla.Villa)) (dto.Villa, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if factory == nil {
			return dto.Villa{}, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = factory.Begin(ctx, uow.TxOptions{})
		if err != nil {
			return dto.Villa{}, err
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

	v, err := unit.Villas().ByID(ctx, domainvilla.VillaID(id))
	if err != nil {
		return dto.Villa{}, err
	}
	mutate(v)
	if err := unit.Villas().Save(ctx, v); err != nil {
		return dto.Villa{}, err
	}

	pending := v.PendingEvents()
	v.ClearEvents()
	if err := outbox.RecordDomainEvents(ctx, box, outbox.JSONEventEncoder{}, pending); err != nil {
		return dto.Villa{}, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return dto.Villa{}, err
		}
		committed = true
	}
	return dto.MapVilla(v), nil
}

func nowOrWall(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[ToggleVillaActiveCommand, dto.Villa] = (*ToggleVillaActiveHandler)(nil)
var _ commands.Handler[ToggleVillaFeaturedCommand, dto.Villa] = (*ToggleVillaFeaturedHandler)(nil)
