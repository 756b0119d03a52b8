package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainseasonal "villastay/internal/domain/seasonal"
	domainrange "villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/shared/money"
	domainvilla "villastay/internal/domain/villa"
)

type SeasonalRepository struct {
	col *mongo.Collection
}

func NewSeasonalRepository(db *mongo.Database) *SeasonalRepository {
	return &SeasonalRepository{col: db.Collection("seasonal_prices")}
}

func (r *SeasonalRepository) ByVilla(ctx context.Context, id domainvilla.VillaID) ([]*domainseasonal.Rule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "season.start", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"villa_id": string(id)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domainseasonal.Rule
	for cur.Next(ctx) {
		var doc seasonalDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toRule())
	}
	return out, cur.Err()
}

func (r *SeasonalRepository) Save(ctx context.Context, rule *domainseasonal.Rule) error {
	doc := newSeasonalDocument(rule)
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": doc}, opts)
	return err
}

func (r *SeasonalRepository) Delete(ctx context.Context, id domainseasonal.RuleID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainseasonal.ErrRuleNotFound
	}
	return nil
}

type seasonalDocument struct {
	ID            string         `bson:"_id"`
	VillaID       string         `bson:"villa_id"`
	Season        seasonDocument `bson:"season"`
	PriceAmount   int64          `bson:"price_amount"`
	PriceCurrency string         `bson:"price_currency"`
	CreatedAt     int64          `bson:"created_at"`
}

type seasonDocument struct {
	Start int64 `bson:"start"`
	End   int64 `bson:"end"`
}

func newSeasonalDocument(rule *domainseasonal.Rule) seasonalDocument {
	return seasonalDocument{
		ID:            string(rule.ID),
		VillaID:       string(rule.VillaID),
		Season:        seasonDocument{Start: rule.Season.Start.UnixMilli(), End: rule.Season.End.UnixMilli()},
		PriceAmount:   rule.Price.Amount,
		PriceCurrency: string(rule.Price.Currency),
		CreatedAt:     rule.CreatedAt.UnixMilli(),
	}
}

func (d seasonalDocument) toRule() *domainseasonal.Rule {
	return &domainseasonal.Rule{
		ID:      domainseasonal.RuleID(d.ID),
		VillaID: domainvilla.VillaID(d.VillaID),
		Season: domainrange.ClosedRange{
			Start: timestampToTime(d.Season.Start),
			End:   timestampToTime(d.Season.End),
		},
		Price:     money.Money{Amount: d.PriceAmount, Currency: money.Currency(d.PriceCurrency)},
		CreatedAt: timestampToTime(d.CreatedAt),
	}
}

var _ domainseasonal.Repository = (*SeasonalRepository)(nil)
