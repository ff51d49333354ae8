package store

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genialityco/events-api/query"
)

// ErrNotFound reports that an identifier matched no document.
var ErrNotFound = errors.New("document not found")

// Result is the uniform list-response payload.
type Result struct {
	Items       []bson.M `json:"items"`
	TotalItems  int64    `json:"totalItems"`
	TotalPages  int64    `json:"totalPages"`
	CurrentPage int64    `json:"currentPage"`
}

// Store gives typed access to one collection plus the dynamic search path.
// Populated search results carry joined sub-documents in place of bare ids,
// so they are returned as raw documents rather than T.
type Store[T any] struct {
	coll *mongo.Collection
	rels query.Relations
}

func New[T any](db *mongo.Database, collection string, rels query.Relations) *Store[T] {
	return &Store[T]{coll: db.Collection(collection), rels: rels}
}

// Collection exposes the underlying handle for entity-specific atomic
// operations.
func (s *Store[T]) Collection() *mongo.Collection {
	return s.coll
}

// Relations exposes the entity's relation registry.
func (s *Store[T]) Relations() query.Relations {
	return s.rels
}

// Create inserts the document with a fresh id and timestamps and returns
// the stored form.
func (s *Store[T]) Create(ctx context.Context, doc T) (T, error) {
	var out T

	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, errors.Wrap(err, "marshaling document")
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return out, errors.Wrap(err, "remarshaling document")
	}

	now := time.Now().UTC()
	m["_id"] = primitive.NewObjectID()
	m["createdAt"] = now
	m["updatedAt"] = now

	if _, err := s.coll.InsertOne(ctx, m); err != nil {
		return out, errors.Wrap(err, "inserting document")
	}
	if err := s.coll.FindOne(ctx, bson.M{"_id": m["_id"]}).Decode(&out); err != nil {
		return out, errors.Wrap(err, "reading back inserted document")
	}
	return out, nil
}

// Get fetches one document by id without resolving references.
func (s *Store[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	var out T
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return out, ErrNotFound
	}
	if err != nil {
		return out, errors.Wrap(err, "finding document")
	}
	return out, nil
}

// GetPopulated fetches one document by id with every registered reference
// resolved into its target document.
func (s *Store[T]) GetPopulated(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	cursor, err := s.coll.Aggregate(ctx, query.PopulateOne(id, s.rels))
	if err != nil {
		return nil, errors.Wrap(err, "aggregating document")
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding document")
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

// Update applies a partial merge and returns the updated document.
// Identifier and creation timestamp are immutable.
func (s *Store[T]) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (T, error) {
	var out T

	delete(patch, "_id")
	delete(patch, "id")
	delete(patch, "createdAt")
	patch = NormalizePatch(patch)
	patch["updatedAt"] = time.Now().UTC()

	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return out, ErrNotFound
	}
	if err != nil {
		return out, errors.Wrap(err, "updating document")
	}
	return out, nil
}

// Remove hard-deletes one document and returns its last state.
func (s *Store[T]) Remove(ctx context.Context, id primitive.ObjectID) (T, error) {
	var out T
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return out, ErrNotFound
	}
	if err != nil {
		return out, errors.Wrap(err, "deleting document")
	}
	return out, nil
}

// Search answers a normalized list request. Plain filters run as a find;
// population or cross-collection filters run as an aggregation pipeline.
// The total count is computed by a second execution of the same predicate
// stages and can drift from the returned page under concurrent writes.
func (s *Store[T]) Search(ctx context.Context, p query.Params) (*Result, error) {
	if query.NeedsPipeline(p, s.rels) {
		return s.searchPipeline(ctx, p)
	}

	filter := query.BuildFilter(p.Filters)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "counting documents")
	}

	opts := options.Find().
		SetSort(query.BuildSort(p.Sorters)).
		SetSkip(p.Skip).
		SetLimit(p.Limit)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "finding documents")
	}
	items := []bson.M{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decoding documents")
	}

	return s.result(items, total, p), nil
}

func (s *Store[T]) searchPipeline(ctx context.Context, p query.Params) (*Result, error) {
	countCursor, err := s.coll.Aggregate(ctx, query.CountPipeline(p, s.rels))
	if err != nil {
		return nil, errors.Wrap(err, "counting via pipeline")
	}
	var counts []struct {
		TotalItems int64 `bson:"totalItems"`
	}
	if err := countCursor.All(ctx, &counts); err != nil {
		return nil, errors.Wrap(err, "decoding count")
	}
	var total int64
	if len(counts) > 0 {
		total = counts[0].TotalItems
	}

	cursor, err := s.coll.Aggregate(ctx, query.Pipeline(p, s.rels))
	if err != nil {
		return nil, errors.Wrap(err, "aggregating documents")
	}
	items := []bson.M{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decoding documents")
	}

	return s.result(items, total, p), nil
}

func (s *Store[T]) result(items []bson.M, total int64, p query.Params) *Result {
	var pages int64
	if p.Limit > 0 {
		pages = int64(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return &Result{
		Items:       items,
		TotalItems:  total,
		TotalPages:  pages,
		CurrentPage: p.Page,
	}
}
