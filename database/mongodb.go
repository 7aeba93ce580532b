package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lingerie-shop/config"
)

// Store is the document store handle passed into handlers. Raw records come
// back as bson.M maps; callers normalize them before they leave the handler.
type Store interface {
	// Find returns raw records matching the equality filter. A limit of 0
	// means no limit.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	// Insert stores one record and returns the generated identifier.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client   *mongo.Client
	database string
}

func Connect(cfg *config.Config) (*MongoStore, error) {
	if cfg.MongoURI == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	// Initialize MongoDB client
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	// Connect to MongoDB
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, err
	}
	// Check the connection
	if err = client.Ping(context.TODO(), nil); err != nil {
		return nil, err
	}

	return &MongoStore{client: client, database: cfg.Database}, nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.client.Database(s.database).Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.client.Database(s.database).Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.client.Database(s.database).ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
