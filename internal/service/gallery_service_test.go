package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
)

func newGalleryFixture() (*GalleryService, *fakeRepo[domain.Gallery], *fakeAssets) {
	repo := newFakeRepo[domain.Gallery](func(g *domain.Gallery) string { return g.ImageID })
	assets := newFakeAssets()
	return NewGalleryService(repo, assets, slog.Default()), repo, assets
}

func galleryInput(image *ImageUpload) GalleryInput {
	return GalleryInput{
		Type:        domain.GalleryTypeServices,
		Name:        "Plating",
		Description: "Our plating work",
		Image:       image,
	}
}

func pngUpload() *ImageUpload {
	return &ImageUpload{Data: []byte("png bytes"), ContentType: "image/png", Filename: "plating.png"}
}

func TestGalleryCreateUploadsUnderTypePrefix(t *testing.T) {
	svc, _, assets := newGalleryFixture()

	created, err := svc.Create(context.Background(), galleryInput(pngUpload()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ImageID, "services/"))
	exists, err := assets.Exists(context.Background(), created.ImageID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	svc, _, _ := newGalleryFixture()

	_, err := svc.Create(context.Background(), galleryInput(nil))
	require.Error(t, err)
	assert.Equal(t, errs.KindBadRequest, errs.KindOf(err))
}

func TestGalleryCreateRejectsBadPayload(t *testing.T) {
	svc, _, assets := newGalleryFixture()

	_, err := svc.Create(context.Background(), galleryInput(
		&ImageUpload{Data: []byte("x"), ContentType: "image/bmp", Filename: "x.bmp"}))
	require.Error(t, err)
	assert.Equal(t, errs.KindBadRequest, errs.KindOf(err))
	assert.Empty(t, assets.uploads)
}

func TestGalleryCreateCleansUpAssetOnSaveFailure(t *testing.T) {
	svc, repo, assets := newGalleryFixture()
	repo.saveErr = errors.New("write refused")

	_, err := svc.Create(context.Background(), galleryInput(pngUpload()))
	require.Error(t, err)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))

	require.Len(t, assets.uploads, 1)
	assert.Equal(t, assets.uploads, assets.deletes, "orphaned upload must be removed")
}

func TestGalleryUpdateMetadataOnlyKeepsAsset(t *testing.T) {
	svc, _, assets := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)

	in := galleryInput(nil)
	in.Name = "Renamed"
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ImageID, updated.ImageID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Len(t, assets.uploads, 1)
	assert.Empty(t, assets.deletes)
}

func TestGalleryUpdateReplacesAssetSafely(t *testing.T) {
	svc, _, assets := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)
	oldKey := created.ImageID

	in := galleryInput(&ImageUpload{Data: []byte("v2"), ContentType: "image/jpeg", Filename: "v2.jpg"})
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.NotEqual(t, oldKey, updated.ImageID)

	// New asset uploaded before the old one was deleted.
	require.Len(t, assets.uploads, 2)
	require.Len(t, assets.deletes, 1)
	assert.Equal(t, oldKey, assets.deletes[0])

	exists, _ := assets.Exists(ctx, oldKey)
	assert.False(t, exists)
	exists, _ = assets.Exists(ctx, updated.ImageID)
	assert.True(t, exists)
}

func TestGalleryUpdateUploadFailureKeepsOldAsset(t *testing.T) {
	svc, _, assets := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)

	assets.uploadErr = errors.New("storage down")
	_, err = svc.Update(ctx, created.ID, galleryInput(pngUpload()))
	require.Error(t, err)

	// The record still points at the original asset and it is intact.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ImageID, got.ImageID)
	exists, _ := assets.Exists(ctx, created.ImageID)
	assert.True(t, exists)
}

func TestGalleryUpdateSaveFailureRemovesNewAsset(t *testing.T) {
	svc, repo, assets := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)

	repo.saveErr = errors.New("write refused")
	_, err = svc.Update(ctx, created.ID, galleryInput(pngUpload()))
	require.Error(t, err)

	// Old asset intact, the new upload rolled back.
	exists, _ := assets.Exists(ctx, created.ImageID)
	assert.True(t, exists)
	require.Len(t, assets.uploads, 2)
	assert.Equal(t, assets.uploads[1], assets.deletes[len(assets.deletes)-1])
}

func TestGalleryDeleteCascadesToAsset(t *testing.T) {
	svc, _, assets := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	exists, err := assets.Exists(ctx, created.ImageID)
	require.NoError(t, err)
	assert.False(t, exists, "owned asset must be gone after delete")

	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestGalleryDeleteMissing(t *testing.T) {
	svc, _, _ := newGalleryFixture()

	err := svc.Delete(context.Background(), uuid.NewString())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	err = svc.Delete(context.Background(), "junk")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestGalleryPresignedImageURL(t *testing.T) {
	svc, _, _ := newGalleryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, galleryInput(pngUpload()))
	require.NoError(t, err)

	url, err := svc.PresignedImageURL(ctx, created.ID, 30*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, created.ImageID)

	_, err = svc.PresignedImageURL(ctx, uuid.NewString(), 30*time.Minute)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
