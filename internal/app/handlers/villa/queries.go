package villa

import (
	"context"

	"villastay/internal/app/dto"
	"villastay/internal/app/queries"
	"villastay/internal/app/uow"
	domainvilla "villastay/internal/domain/villa"
)

const (
	listVillasKey = "villa.list"
	getVillaKey   = "villa.get"
)

type ListVillasQuery struct {
	ActiveOnly bool
}

func (q ListVillasQuery) Key() string { return listVillasKey }

type GetVillaQuery struct {
	VillaID string
}

func (q GetVillaQuery) Key() string { return getVillaKey }

type ListVillasHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *ListVillasHandler) Handle(ctx context.Context, q ListVillasQuery) ([]dto.Villa, error) {
	unit, err := readUnit(ctx, h.UoWFactory)
	if err != nil {
		return nil, err
	}
	villas, err := unit.Villas().List(ctx)
	if err != nil {
		return nil, err
	}
	if q.ActiveOnly {
		filtered := villas[:0:0]
		for _, v := range villas {
			if v.Active {
				filtered = append(filtered, v)
			}
		}
		villas = filtered
	}
	return dto.MapVillas(villas), nil
}

type GetVillaHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *GetVillaHandler) Handle(ctx context.Context, q GetVillaQuery) (dto.Villa, error) {
	unit, err := readUnit(ctx, h.UoWFactory)
	if err != nil {
		return dto.Villa{}, err
	}
	v, err := unit.Villas().ByID(ctx, domainvilla.VillaID(q.VillaID))
	if err != nil {
		return dto.Villa{}, err
	}
	return dto.MapVilla(v), nil
}

func readUnit(ctx context.Context, factory uow.UoWFactory) (uow.UnitOfWork, error) {
	if unit, ok := uow.FromContext(ctx); ok {
		return unit, nil
	}
	if factory == nil {
		return nil, uow.ErrUnitOfWorkMissing
	}
	return factory.Begin(ctx, uow.TxOptions{ReadOnly: true})
}

var _ queries.Handler[ListVillasQuery, []dto.Villa] = (*ListVillasHandler)(nil)
var _ queries.Handler[GetVillaQuery, dto.Villa] = (*GetVillaHandler)(nil)
