package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/objectstore"
	"github.com/srikarthikeya/caterers/internal/store"
)

// ImageUpload is a multipart image payload handed down by the transport.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// GalleryInput carries create/update fields. Image is required on create
// and optional on update (nil means keep the current asset).
type GalleryInput struct {
	Type        domain.GalleryType
	Name        string
	Description string
	Image       *ImageUpload
}

// GalleryService owns the asset lifecycle: galleries create their image at
// create, swap it on update and destroy it on delete.
type GalleryService struct {
	crud[domain.Gallery]
	assets objectstore.Store
}

func NewGalleryService(repo repository[domain.Gallery], assets objectstore.Store, logger *slog.Logger) *GalleryService {
	return &GalleryService{
		crud:   crud[domain.Gallery]{repo: repo, resource: "Gallery", logger: logger},
		assets: assets,
	}
}

func (s *GalleryService) Create(ctx context.Context, in GalleryInput) (*domain.Gallery, error) {
	if in.Image == nil {
		return nil, errs.BadRequest("image file is required")
	}

	key, err := s.assets.Upload(ctx, in.Image.Data, in.Image.ContentType, in.Image.Filename,
		objectstore.PrefixFor(in.Type))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	gallery := &domain.Gallery{
		ID:          uuid.NewString(),
		ImageID:     key,
		Type:        in.Type,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, gallery.ID, gallery); err != nil {
		// The record never existed; remove the asset it would have owned.
		if delErr := s.assets.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to remove asset after save failure", "key", key, "error", delErr)
		}
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errs.Duplicate("Gallery with imageId %s already exists", key)
		}
		return nil, errs.Internal(err, "failed to save gallery")
	}

	s.logger.Info("gallery created", "id", gallery.ID, "key", key, "type", gallery.Type)
	return gallery, nil
}

// Update swaps the asset safely when a new image arrives: upload new,
// commit the record, delete old last. A failure at any step leaves the
// record pointing at an asset that exists; the worst outcome is an
// orphaned object, never a dangling reference.
func (s *GalleryService) Update(ctx context.Context, id string, in GalleryInput) (*domain.Gallery, error) {
	gallery, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldKey := ""
	if in.Image != nil {
		newKey, err := s.assets.Upload(ctx, in.Image.Data, in.Image.ContentType, in.Image.Filename,
			objectstore.PrefixFor(in.Type))
		if err != nil {
			return nil, err
		}
		oldKey = gallery.ImageID
		gallery.ImageID = newKey
	}

	gallery.Type = in.Type
	gallery.Name = in.Name
	gallery.Description = in.Description
	gallery.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, gallery.ID, gallery); err != nil {
		if oldKey != "" {
			if delErr := s.assets.Delete(ctx, gallery.ImageID); delErr != nil {
				s.logger.Error("failed to remove asset after save failure", "key", gallery.ImageID, "error", delErr)
			}
		}
		return nil, errs.Internal(err, "failed to save gallery")
	}

	if oldKey != "" {
		if err := s.assets.Delete(ctx, oldKey); err != nil {
			// The record already points at the new asset; the old one is
			// merely orphaned.
			s.logger.Error("failed to delete replaced asset", "key", oldKey, "error", err)
		}
	}

	s.logger.Info("gallery updated", "id", gallery.ID)
	return gallery, nil
}

// Delete removes the owned asset first, then the record. A failed asset
// delete aborts so the record keeps tracking the still-present object.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	gallery, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assets.Delete(ctx, gallery.ImageID); err != nil {
		return err
	}

	return s.crud.Delete(ctx, id)
}

// PresignedImageURL returns a time-limited read URL for the item's asset.
func (s *GalleryService) PresignedImageURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	gallery, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.assets.PresignedURL(ctx, gallery.ImageID, expiry)
}
