package memory

import (
	"context"
	"errors"

	"villastay/internal/app/uow"
	domainpricing "villastay/internal/domain/pricing"
	domainreservation "villastay/internal/domain/reservation"
	domainseasonal "villastay/internal/domain/seasonal"
	domainvilla "villastay/internal/domain/villa"
)

// ErrFactoryMisconfigured indicates missing repositories.
var ErrFactoryMisconfigured = errors.New("memory: unit of work factory misconfigured")

// Factory wires in-memory repositories into a unit-of-work boundary.
type Factory struct {
	VillaRepo       domainvilla.Repository
	ReservationRepo domainreservation.Repository
	SeasonalRepo    domainseasonal.Repository
	PricingSvc      domainpricing.Calculator
}

// Begin starts a lightweight transaction boundary. No isolation is provided but
// the abstraction matches the application ports.
func (f Factory) Begin(ctx context.Context, opts uow.TxOptions) (uow.UnitOfWork, error) {
	if f.VillaRepo == nil || f.ReservationRepo == nil || f.SeasonalRepo == nil {
		return nil, ErrFactoryMisconfigured
	}
	pricing := f.PricingSvc
	if pricing == nil {
		pricing = domainpricing.SeasonalCalculator{}
	}
	return &Unit{
		villas:       f.VillaRepo,
		reservations: f.ReservationRepo,
		seasonal:     f.SeasonalRepo,
		pricing:      pricing,
	}, nil
}

// Unit is a lightweight uow.UnitOfWork backed by in-memory stores.
type Unit struct {
	villas       domainvilla.Repository
	reservations domainreservation.Repository
	seasonal     domainseasonal.Repository
	pricing      domainpricing.Calculator
}

func (u *Unit) Villas() domainvilla.Repository { return u.villas }

func (u *Unit) Reservations() domainreservation.Repository { return u.reservations }

func (u *Unit) SeasonalPrices() domainseasonal.Repository { return u.seasonal }

func (u *Unit) Pricing() domainpricing.Calculator { return u.pricing }

func (u *Unit) Commit(ctx context.Context) error { return nil }

func (u *Unit) Rollback(ctx context.Context) error { return nil }

var _ uow.UoWFactory = Factory{}
