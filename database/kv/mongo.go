package kv

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// kvDocument is one stored entry.
type kvDocument struct {
	ID        string    `bson:"_id"`
	Namespace string    `bson:"namespace"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per key in a collection shared by all
// namespaces.
type MongoBackend struct {
	client    *mongo.Client
	coll      *mongo.Collection
	namespace string
}

func NewMongoBackend(client *mongo.Client, database, namespace string) *MongoBackend {
	return &MongoBackend{
		client:    client,
		coll:      client.Database(database).Collection("kv"),
		namespace: namespace,
	}
}

func (m *MongoBackend) id(key string) string { return m.namespace + ":" + key }

func (m *MongoBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": m.id(key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (m *MongoBackend) Write(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{
		ID:        m.id(key),
		Namespace: m.namespace,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoBackend) Delete(ctx context.Context, keys ...string) error {
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = m.id(k)
	}
	_, err := m.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (m *MongoBackend) Clear(ctx context.Context) error {
	_, err := m.coll.DeleteMany(ctx, bson.M{"namespace": m.namespace})
	return err
}

func (m *MongoBackend) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
