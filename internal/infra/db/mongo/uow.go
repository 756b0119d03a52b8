package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villastay/internal/app/uow"
	domainpricing "villastay/internal/domain/pricing"
	domainreservation "villastay/internal/domain/reservation"
	domainseasonal "villastay/internal/domain/seasonal"
	domainvilla "villastay/internal/domain/villa"
)

var ErrUnitOfWorkNotConfigured = errors.New("mongo: unit of work factory missing database")

// Factory wires Mongo transactions into the generic UnitOfWork interface.
type Factory struct {
	DB *mongo.Database

	VillaRepo       domainvilla.Repository
	ReservationRepo domainreservation.Repository
	SeasonalRepo    domainseasonal.Repository
	PricingSvc      domainpricing.Calculator
}

// Begin starts a MongoDB session/transaction.
func (f Factory) Begin(ctx context.Context, opts uow.TxOptions) (uow.UnitOfWork, error) {
	if f.DB == nil {
		return nil, ErrUnitOfWorkNotConfigured
	}
	session, err := f.DB.Client().StartSession()
	if err != nil {
		return nil, err
	}
	txnOpts := options.Transaction().SetReadConcern(f.DB.ReadConcern()).SetWriteConcern(f.DB.WriteConcern())
	if err := session.StartTransaction(txnOpts); err != nil {
		session.EndSession(ctx)
		return nil, err
	}
	pricing := f.PricingSvc
	if pricing == nil {
		pricing = domainpricing.SeasonalCalculator{}
	}
	return &Unit{
		db:           f.DB,
		session:      session,
		villas:       f.VillaRepo,
		reservations: f.ReservationRepo,
		seasonal:     f.SeasonalRepo,
		pricing:      pricing,
	}, nil
}

type Unit struct {
	db      *mongo.Database
	session mongo.Session

	villas       domainvilla.Repository
	reservations domainreservation.Repository
	seasonal     domainseasonal.Repository
	pricing      domainpricing.Calculator
}

func (u *Unit) Villas() domainvilla.Repository { return u.villas }

func (u *Unit) Reservations() domainreservation.Repository { return u.reservations }

func (u *Unit) SeasonalPrices() domainseasonal.Repository { return u.seasonal }

func (u *Unit) Pricing() domainpricing.Calculator { return u.pricing }

func (u *Unit) Commit(ctx context.Context) error {
	defer u.session.EndSession(ctx)
	return u.session.CommitTransaction(ctx)
}

func (u *Unit) Rollback(ctx context.Context) error {
	defer u.session.EndSession(ctx)
	return u.session.AbortTransaction(ctx)
}

// InjectContext ensures Mongo session is available in context for downstream repos.
func (u *Unit) InjectContext(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, u.session)
}

var _ uow.UoWFactory = Factory{}
