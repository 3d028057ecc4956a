// Package store is the persistence boundary: a thin generic adapter over
// one mongo collection per resource. All four resources share the same
// CRUD surface, so there is a single parameterized type.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/pagination"
)

// ErrDuplicateKey reports a write rejected by a unique index. Services map
// it to their resource-specific duplicate error.
var ErrDuplicateKey = errors.New("duplicate key")

// Collection adapts one mongo collection for documents of type E.
type Collection[E any] struct {
	coll *mongo.Collection
}

func NewCollection[E any](db *mongo.Database, name string) *Collection[E] {
	return &Collection[E]{coll: db.Collection(name)}
}

// Per-resource constructors bind the collection names used by the
// original deployment's init script.

func NewMenus(db *mongo.Database) *Collection[domain.Menu] {
	return NewCollection[domain.Menu](db, "menu")
}

func NewGalleries(db *mongo.Database) *Collection[domain.Gallery] {
	return NewCollection[domain.Gallery](db, "gallery")
}

func NewQuotes(db *mongo.Database) *Collection[domain.Quote] {
	return NewCollection[domain.Quote](db, "quotes")
}

func NewReviews(db *mongo.Database) *Collection[domain.Review] {
	return NewCollection[domain.Review](db, "reviews")
}

// Save upserts doc under id. Unique-index violations come back as
// ErrDuplicateKey.
func (c *Collection[E]) Save(ctx context.Context, id string, doc *E) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("save %s: %w", c.coll.Name(), ErrDuplicateKey)
		}
		return fmt.Errorf("failed to save %s document: %w", c.coll.Name(), err)
	}
	return nil
}

// FindByID returns (nil, nil) when no document matches.
func (c *Collection[E]) FindByID(ctx context.Context, id string) (*E, error) {
	var doc E
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s document: %w", c.coll.Name(), err)
	}
	return &doc, nil
}

// FindAll returns the requested slice of the collection, sorted by the
// request's field and direction. Bounds are validated upstream.
func (c *Collection[E]) FindAll(ctx context.Context, req pagination.Request) ([]*E, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: req.SortBy, Value: req.SortOrder()}}).
		SetSkip(req.Offset()).
		SetLimit(int64(req.Size))

	cur, err := c.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", c.coll.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []*E
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", c.coll.Name(), err)
	}
	return docs, nil
}

// Count is the unfiltered collection count. It is a separate read from
// FindAll, so page totals can drift under concurrent writes.
func (c *Collection[E]) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", c.coll.Name(), err)
	}
	return n, nil
}

// DeleteByID reports whether a document was actually removed.
func (c *Collection[E]) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s document: %w", c.coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

func (c *Collection[E]) ExistsByImageID(ctx context.Context, imageID string) (bool, error) {
	return c.exists(ctx, bson.M{"imageId": imageID})
}

func (c *Collection[E]) ExistsByImageIDExcluding(ctx context.Context, imageID, excludeID string) (bool, error) {
	return c.exists(ctx, bson.M{"imageId": imageID, "_id": bson.M{"$ne": excludeID}})
}

func (c *Collection[E]) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := c.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed existence check on %s: %w", c.coll.Name(), err)
	}
	return n > 0, nil
}
