// Package service orchestrates validation, persistence and (for gallery
// items) object-store calls. The CRUD surface shared by all four resources
// lives in one generic core; resource services add their own create/update
// semantics on top.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/validate"
)

// repository is the slice of store.Collection behavior every resource
// service requires.
type repository[E any] interface {
	Save(ctx context.Context, id string, doc *E) error
	FindByID(ctx context.Context, id string) (*E, error)
	FindAll(ctx context.Context, req pagination.Request) ([]*E, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// imageRepository adds the uniqueness probes used by resources whose
// imageId is unique per collection.
type imageRepository[E any] interface {
	repository[E]
	ExistsByImageID(ctx context.Context, imageID string) (bool, error)
	ExistsByImageIDExcluding(ctx context.Context, imageID, excludeID string) (bool, error)
}

// crud holds the operations identical across resources. resource is the
// display name used in messages ("Menu", "Gallery", ...).
type crud[E any] struct {
	repo     repository[E]
	resource string
	logger   *slog.Logger
}

// GetByID validates the identifier, then loads the record.
func (c *crud[E]) GetByID(ctx context.Context, id string) (*E, error) {
	if err := validate.UUID(id, "id"); err != nil {
		return nil, err
	}
	doc, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Internal(err, "failed to fetch %s", c.resource)
	}
	if doc == nil {
		return nil, errs.NotFound("%s not found with id: %s", c.resource, id)
	}
	return doc, nil
}

// GetAll validates the pagination bounds, then reads count and page. The
// two reads are not a snapshot; totals can drift under concurrent writes.
func (c *crud[E]) GetAll(ctx context.Context, req pagination.Request) (*pagination.Page[*E], error) {
	if err := validate.Pagination(req.Page, req.Size); err != nil {
		return nil, err
	}

	docs, err := c.repo.FindAll(ctx, req)
	if err != nil {
		return nil, errs.Internal(err, "failed to list %s records", c.resource)
	}
	total, err := c.repo.Count(ctx)
	if err != nil {
		return nil, errs.Internal(err, "failed to count %s records", c.resource)
	}

	page := pagination.NewPage(docs, req, total)
	return &page, nil
}

// Delete removes the record, failing when it never existed.
func (c *crud[E]) Delete(ctx context.Context, id string) error {
	if err := validate.UUID(id, "id"); err != nil {
		return err
	}
	removed, err := c.repo.DeleteByID(ctx, id)
	if err != nil {
		return errs.Internal(err, "failed to delete %s", c.resource)
	}
	if !removed {
		return errs.NotFound("%s not found with id: %s", c.resource, id)
	}
	c.logger.Info(fmt.Sprintf("%s deleted", c.resource), "id", id)
	return nil
}
