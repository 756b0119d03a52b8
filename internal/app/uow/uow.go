package uow

import (
	"context"

	domainpricing "villastay/internal/domain/pricing"
	domainreservation "villastay/internal/domain/reservation"
	domainseasonal "villastay/internal/domain/seasonal"
	domainvilla "villastay/internal/domain/villa"
)

// UnitOfWork coordinates repositories inside a transaction boundary.
type UnitOfWork interface {
	Villas() domainvilla.Repository
	Reservations() domainreservation.Repository
	SeasonalPrices() domainseasonal.Repository
	Pricing() domainpricing.Calculator

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UoWFactory starts unit of work instances.
type UoWFactory interface {
	Begin(ctx context.Context, opts TxOptions) (UnitOfWork, error)
}

// TxOptions configure transaction boundaries.
type TxOptions struct {
	ReadOnly bool
}
