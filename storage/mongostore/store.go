// Package mongostore is the MongoDB implementation of models.Store.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/models"
)

const (
	adminsCollection     = "Admins"
	categoriesCollection = "Categories"
	productsCollection   = "Products"
	ordersCollection     = "Orders"
	settingsCollection   = "Settings"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	// Location is the zone datetimes are decoded into.
	Location *time.Location
}

type collection[T any] struct {
	coll *mongo.Collection
}

func byID(id int) bson.D {
	return bson.D{{Key: "id", Value: id}}
}

func (c *collection[T]) MaxID(ctx context.Context) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "id", Value: -1}}).
		SetProjection(bson.D{{Key: "id", Value: 1}})

	var doc struct {
		ID int `bson:"id"`
	}
	if err := c.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return doc.ID, nil
}

func (c *collection[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", models.ErrDuplicateID, err)
		}
		return err
	}
	return nil
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *collection[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (c *collection[T]) FindFirst(ctx context.Context) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, bson.D{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Replace counts a match as success even when the stored document was
// already identical to doc.
func (c *collection[T]) Replace(ctx context.Context, id int, doc *T) error {
	res, err := c.coll.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (c *collection[T]) Delete(ctx context.Context, id int) error {
	res, err := c.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Store talks to one MongoDB database. It is safe for concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// Connect dials MongoDB, verifies the connection and makes sure every
// collection has a unique index on id.
func Connect(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(NewRegistry(cfg.Location))
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(cfg.Database), log: log}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	for _, name := range []string{adminsCollection, categoriesCollection, productsCollection, ordersCollection, settingsCollection} {
		idx := mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("id_unique"),
		}
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("create id index on %s: %w", name, err)
		}
		s.log.Debug("ensured unique id index", zap.String("collection", name))
	}

	idx := mongo.IndexModel{Keys: bson.D{{Key: "orderDate", Value: 1}}}
	if _, err := s.db.Collection(ordersCollection).Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create orderDate index: %w", err)
	}
	return nil
}

func (s *Store) Admins() models.Collection[models.Admin] {
	return &collection[models.Admin]{coll: s.db.Collection(adminsCollection)}
}

func (s *Store) Categories() models.Collection[models.Category] {
	return &collection[models.Category]{coll: s.db.Collection(categoriesCollection)}
}

func (s *Store) Products() models.Collection[models.Product] {
	return &collection[models.Product]{coll: s.db.Collection(productsCollection)}
}

func (s *Store) Orders() models.Collection[models.Order] {
	return &collection[models.Order]{coll: s.db.Collection(ordersCollection)}
}

func (s *Store) Settings() models.Collection[models.Settings] {
	return &collection[models.Settings]{coll: s.db.Collection(settingsCollection)}
}

func (s *Store) FindAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	filter := bson.D{
		{Key: "username", Value: username},
		{Key: "passwordHash", Value: passwordHash},
	}
	var admin models.Admin
	if err := s.db.Collection(adminsCollection).FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *Store) FindOrdersBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	filter := bson.D{{Key: "orderDate", Value: bson.D{
		{Key: "$gte", Value: start},
		{Key: "$lte", Value: end},
	}}}
	cur, err := s.db.Collection(ordersCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
