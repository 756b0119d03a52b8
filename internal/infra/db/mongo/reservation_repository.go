package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainreservation "villastay/internal/domain/reservation"
	domainrange "villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("agg_reservation")}
}

func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *ReservationRepository) ByVilla(ctx context.Context, id domainvilla.VillaID) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{"villa_id": string(id)})
}

func (r *ReservationRepository) All(ctx context.Context) ([]*domainreservation.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]*domainreservation.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "range.check_in", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domainreservation.Reservation
	for cur.Next(ctx) {
		var doc reservationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	doc := newReservationDocument(res)
	filter := bson.M{"_id": doc.ID, "version": res.Version}
	doc.Version = res.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	result, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	res.Version = doc.Version
	return nil
}

type reservationDocument struct {
	ID              string          `bson:"_id"`
	VillaID         string          `bson:"villa_id"`
	Range           rangeDocument   `bson:"range"`
	Status          string          `bson:"status"`
	PriceAmount     int64           `bson:"price_amount"`
	PriceCurrency   string          `bson:"price_currency"`
	Title           string          `bson:"title"`
	Contact         contactDocument `bson:"contact"`
	Guests          []guestDocument `bson:"guests"`
	SpecialRequests string          `bson:"special_requests"`
	CreatedAt       int64           `bson:"created_at"`
	UpdatedAt       int64           `bson:"updated_at"`
	Version         int64           `bson:"version"`
}

type rangeDocument struct {
	CheckIn  int64 `bson:"check_in"`
	CheckOut int64 `bson:"check_out"`
}

type contactDocument struct {
	FullName       string `bson:"full_name"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
	IdentityNumber string `bson:"identity_number"`
}

type guestDocument struct {
	FullName       string `bson:"full_name"`
	IdentityNumber string `bson:"identity_number"`
}

func newReservationDocument(res *domainreservation.Reservation) reservationDocument {
	guests := make([]guestDocument, 0, len(res.Guests))
	for _, g := range res.Guests {
		guests = append(guests, guestDocument{FullName: g.FullName, IdentityNumber: g.IdentityNumber})
	}
	return reservationDocument{
		ID:            string(res.ID),
		VillaID:       string(res.VillaID),
		Range:         rangeDocument{CheckIn: res.Range.CheckIn.UnixMilli(), CheckOut: res.Range.CheckOut.UnixMilli()},
		Status:        string(res.Status),
		PriceAmount:   res.Price.Amount,
		PriceCurrency: string(res.Price.Currency),
		Title:         res.Title,
		Contact: contactDocument{
			FullName:       res.ContactPerson.FullName,
			Email:          res.ContactPerson.Email,
			Phone:          res.ContactPerson.Phone,
			IdentityNumber: res.ContactPerson.IdentityNumber,
		},
		Guests:          guests,
		SpecialRequests: res.SpecialRequests,
		CreatedAt:       res.CreatedAt.UnixMilli(),
		UpdatedAt:       res.UpdatedAt.UnixMilli(),
		Version:         res.Version,
	}
}

func (d reservationDocument) toAggregate() *domainreservation.Reservation {
	guests := make([]domainreservation.Guest, 0, len(d.Guests))
	for _, g := range d.Guests {
		guests = append(guests, domainreservation.Guest{FullName: g.FullName, IdentityNumber: g.IdentityNumber})
	}
	return &domainreservation.Reservation{
		ID:      domainreservation.ReservationID(d.ID),
		VillaID: domainvilla.VillaID(d.VillaID),
		Range: domainrange.DateRange{
			CheckIn:  timestampToTime(d.Range.CheckIn),
			CheckOut: timestampToTime(d.Range.CheckOut),
		},
		Status: domainreservation.Status(d.Status),
		Price:  money.Money{Amount: d.PriceAmount, Currency: money.Currency(d.PriceCurrency)},
		Title:  d.Title,
		ContactPerson: domainreservation.ContactPerson{
			FullName:       d.Contact.FullName,
			Email:          d.Contact.Email,
			Phone:          d.Contact.Phone,
			IdentityNumber: d.Contact.IdentityNumber,
		},
		Guests:          guests,
		SpecialRequests: d.SpecialRequests,
		CreatedAt:       timestampToTime(d.CreatedAt),
		UpdatedAt:       timestampToTime(d.UpdatedAt),
		Version:         d.Version,
	}
}

var _ domainreservation.Repository = (*ReservationRepository)(nil)
