package villa

import (
	"context"
	"errors"
	"time"

	"villastay/internal/app/commands"
	"villastay/internal/app/dto"
	"villastay/internal/app/outbox"
	"villastay/internal/app/uow"
	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

const createVillaKey = "villa.create"

var ErrUnitOfWorkRequired = errors.New("villa: unit of work required")

type CreateVillaCommand struct {
	CommandID     string
	Name          string
	Code          string
	Description   string
	Location      string
	Amount        int64
	Currency      string
	MinStayNights int
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Features      []string
	OwnerName     string
}

func (c CreateVillaCommand) Key() string { return createVillaKey }

type CreateVillaHandler struct {
	UoWFactory uow.UoWFactory
	Outbox     outbox.Outbox
	Encoder    outbox.EventEncoder
	Now        func() time.Time
}

func (h *CreateVillaHandler) Handle(ctx context.Context, cmd CreateVillaCommand) (dto.Villa, error) {
	unit, ok := uow.FromContext(ctx)
	managed := false
	committed := false
	if !ok {
		if h.UoWFactory == nil {
			return dto.Villa{}, ErrUnitOfWorkRequired
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{})
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

	currency, err := money.ParseCurrency(cmd.Currency)
	if err != nil {
		return dto.Villa{}, err
	}
	base, err := money.New(cmd.Amount, currency)
	if err != nil {
		return dto.Villa{}, err
	}

	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now().UTC()
	}
	v, err := domainvilla.New(domainvilla.CreateParams{
		ID:            domainvilla.VillaID(cmd.CommandID),
		Name:          cmd.Name,
		Code:          cmd.Code,
		Description:   cmd.Description,
		Location:      cmd.Location,
		BasePrice:     base,
		MinStayNights: cmd.MinStayNights,
		MaxGuests:     cmd.MaxGuests,
		Bedrooms:      cmd.Bedrooms,
		Bathrooms:     cmd.Bathrooms,
		Features:      cmd.Features,
		OwnerName:     cmd.OwnerName,
		CreatedAt:     now,
	})
	if err != nil {
		return dto.Villa{}, err
	}

	if err := unit.Villas().Save(ctx, v); err != nil {
		return dto.Villa{}, err
	}

	pending := v.PendingEvents()
	v.ClearEvents()
	enc := h.Encoder
	if enc == nil {
		enc = outbox.JSONEventEncoder{}
	}
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, enc, pending); err != nil {
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

var _ commands.Handler[CreateVillaCommand, dto.Villa] = (*CreateVillaHandler)(nil)
