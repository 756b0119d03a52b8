package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type VillaRepository struct {
	col *mongo.Collection
}

func NewVillaRepository(db *mongo.Database) *VillaRepository {
	return &VillaRepository{col: db.Collection("agg_villa")}
}

func (r *VillaRepository) ByID(ctx context.Context, id domainvilla.VillaID) (*domainvilla.Villa, error) {
	var doc villaDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainvilla.ErrVillaNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *VillaRepository) List(ctx context.Context) ([]*domainvilla.Villa, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domainvilla.Villa
	for cur.Next(ctx) {
		var doc villaDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cur.Err()
}

func (r *VillaRepository) Save(ctx context.Context, v *domainvilla.Villa) error {
	doc := newVillaDocument(v)
	filter := bson.M{"_id": doc.ID, "version": v.Version}
	doc.Version = v.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	v.Version = doc.Version
	return nil
}

type villaDocument struct {
	ID            string   `bson:"_id"`
	Name          string   `bson:"name"`
	Code          string   `bson:"code"`
	Description   string   `bson:"description"`
	Location      string   `bson:"location"`
	BasePriceAmt  int64    `bson:"base_price_amount"`
	BasePriceCur  string   `bson:"base_price_currency"`
	MinStayNights int      `bson:"min_stay_nights"`
	MaxGuests     int      `bson:"max_guests"`
	Bedrooms      int      `bson:"bedrooms"`
	Bathrooms     int      `bson:"bathrooms"`
	Features      []string `bson:"features"`
	Active        bool     `bson:"active"`
	Featured      bool     `bson:"featured"`
	OwnerName     string   `bson:"owner_name"`
	CreatedAt     int64    `bson:"created_at"`
	UpdatedAt     int64    `bson:"updated_at"`
	Version       int64    `bson:"version"`
}

func newVillaDocument(v *domainvilla.Villa) villaDocument {
	return villaDocument{
		ID:            string(v.ID),
		Name:          v.Name,
		Code:          v.Code,
		Description:   v.Description,
		Location:      v.Location,
		BasePriceAmt:  v.BasePrice.Amount,
		BasePriceCur:  string(v.BasePrice.Currency),
		MinStayNights: v.MinStayNights,
		MaxGuests:     v.MaxGuests,
		Bedrooms:      v.Bedrooms,
		Bathrooms:     v.Bathrooms,
		Features:      v.Features,
		Active:        v.Active,
		Featured:      v.Featured,
		OwnerName:     v.OwnerName,
		CreatedAt:     v.CreatedAt.UnixMilli(),
		UpdatedAt:     v.UpdatedAt.UnixMilli(),
		Version:       v.Version,
	}
}

func (d villaDocument) toAggregate() *domainvilla.Villa {
	return &domainvilla.Villa{
		ID:            domainvilla.VillaID(d.ID),
		Name:          d.Name,
		Code:          d.Code,
		Description:   d.Description,
		Location:      d.Location,
		BasePrice:     money.Money{Amount: d.BasePriceAmt, Currency: money.Currency(d.BasePriceCur)},
		MinStayNights: d.MinStayNights,
		MaxGuests:     d.MaxGuests,
		Bedrooms:      d.Bedrooms,
		Bathrooms:     d.Bathrooms,
		Features:      d.Features,
		Active:        d.Active,
		Featured:      d.Featured,
		OwnerName:     d.OwnerName,
		CreatedAt:     timestampToTime(d.CreatedAt),
		UpdatedAt:     timestampToTime(d.UpdatedAt),
		Version:       d.Version,
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ domainvilla.Repository = (*VillaRepository)(nil)
