package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// OrdersCollection holds one document per order.
	OrdersCollection = "orders"

	// DiagnosticsCollection holds the connectivity probe document.
	DiagnosticsCollection = "diagnostics"

	// ConnectivityDocumentID is the _id of the probe document.
	ConnectivityDocumentID = "connectivity"
)

// MongoOrderRepository implements ports.OrderRepository and
// ports.ConnectivityChecker on MongoDB.
type MongoOrderRepository struct {
	orders      *mongo.Collection
	diagnostics *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		orders:      db.Collection(OrdersCollection),
		diagnostics: db.Collection(DiagnosticsCollection),
	}
}

// Set replaces the whole document, inserting it when absent.
func (r *MongoOrderRepository) Set(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)
	_, err := r.orders.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errs.NewStoreFailedError("set order", err)
	}
	return nil
}

// Update $sets the mutable fields of an existing document.
func (r *MongoOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromDomain(aggregate)
	result, err := r.orders.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: doc.ID}},
		bson.D{{Key: "$set", Value: doc.mutableFields()}},
	)
	if err != nil {
		return errs.NewStoreFailedError("update order", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewObjectNotFoundError("orderId", doc.ID)
	}
	return nil
}

func (r *MongoOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var doc orderDocument
	err := r.orders.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, errs.NewStoreFailedError("get order", err)
	}
	return toDomain(doc)
}

// List returns every order sorted by _id.
func (r *MongoOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	cursor, err := r.orders.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errs.NewStoreFailedError("list orders", err)
	}

	var docs []orderDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errs.NewStoreFailedError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *MongoOrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.orders.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errs.NewStoreFailedError("count orders", err)
	}
	return count, nil
}

// CheckConnectivity upserts diagnostics/connectivity.
func (r *MongoOrderRepository) CheckConnectivity(ctx context.Context) error {
	_, err := r.diagnostics.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: ConnectivityDocumentID}},
		bson.D{
			{Key: "_id", Value: ConnectivityDocumentID},
			{Key: "status", Value: "ok"},
			{Key: "checkedAt", Value: time.Now().UTC()},
		},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errs.NewStoreFailedError("write diagnostics/connectivity", err)
	}
	return nil
}
