// internal/app/store/kv/mongo.go
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores each key as one document in a kv collection
// ({_id: <key>, value: <bytes>}). Used when several installations share a
// central database; the application still treats it as a plain key-value
// store with no cross-key transactions.
type Mongo struct {
	client *mongo.Client
	c      *mongo.Collection
}

const mongoConnectTimeout = 10 * time.Second

type mongoDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// OpenMongo connects to uri and uses the kv collection of database.
func OpenMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	if err := wafflemongo.ValidateURI(uri); err != nil {
		return nil, fmt.Errorf("invalid mongo URI: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Mongo{client: client, c: client.Database(database).Collection("kv")}, nil
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc mongoDoc
	err := m.c.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find %q: %w", key, err)
	}
	return doc.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.c.ReplaceOne(ctx, bson.M{"_id": key},
		mongoDoc{Key: key, Value: value}, options.Replace().SetUpsert(true))
	if err != nil {
		// A concurrent upsert of the same new key can surface as a
		// duplicate; the replace below it already won, so retry once.
		if wafflemongo.IsDup(err) {
			_, err = m.c.ReplaceOne(ctx, bson.M{"_id": key},
				mongoDoc{Key: key, Value: value})
		}
	}
	if err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, key string) error {
	if _, err := m.c.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (m *Mongo) Reset(ctx context.Context) error {
	if _, err := m.c.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("reset kv: %w", err)
	}
	return nil
}

func (m *Mongo) Close() error {
	return m.client.Disconnect(context.Background())
}
