package outcomestore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ykhdr/crack-hash/pkg/messages"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DefaultCollection = "outcomes"

// OutcomeStore archives finished scans. It records results only, never
// in-flight progress.
type OutcomeStore interface {
	Save(ctx context.Context, outcome *messages.CrackOutcome) error
	ListByHash(ctx context.Context, hash string) ([]*messages.CrackOutcome, error)
}

type outcomeStore struct {
	collection *mongo.Collection
}

func NewOutcomeStore(database *mongo.Database, collection string) OutcomeStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &outcomeStore{collection: database.Collection(collection)}
}

func (s *outcomeStore) Save(ctx context.Context, outcome *messages.CrackOutcome) error {
	if _, err := s.collection.InsertOne(ctx, outcome); err != nil {
		return errors.Wrap(err, "error saving outcome")
	}
	return nil
}

// ListByHash returns every archived outcome for hash, newest first.
func (s *outcomeStore) ListByHash(ctx context.Context, hash string) ([]*messages.CrackOutcome, error) {
	opts := options.Find().SetSort(bson.D{{Key: "finished_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"hash": hash}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error listing outcomes")
	}
	defer func() { _ = cursor.Close(ctx) }()
	var result []*messages.CrackOutcome
	for cursor.Next(ctx) {
		var outcome messages.CrackOutcome
		if err := cursor.Decode(&outcome); err != nil {
			return nil, errors.Wrap(err, "error decoding outcome")
		}
		result = append(result, &outcome)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "error listing outcomes")
	}
	return result, nil
}
