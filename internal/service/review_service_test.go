package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
)

func newReviewFixture() (*ReviewService, *fakeRepo[domain.Review]) {
	repo := newFakeRepo[domain.Review](func(r *domain.Review) string { return r.ImageID })
	return NewReviewService(repo, slog.Default()), repo
}

func reviewInput() ReviewInput {
	return ReviewInput{
		ImageID:     uuid.NewString(),
		Timeline:    "Wedding reception, March 2026",
		GuestsCount: 300,
		Stars:       5,
		Comments:    "The biryani was the talk of the evening.",
		TopPicks:    []domain.TopPick{domain.TopPickFood, domain.TopPickService},
		EventType:   domain.EventTypeWedding,
	}
}

func TestReviewCreate(t *testing.T) {
	svc, _ := newReviewFixture()

	in := reviewInput()
	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(created.ID))
	assert.Equal(t, in.ImageID, created.ImageID)
	assert.Equal(t, in.TopPicks, created.TopPicks)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestReviewCreateRejectsInvalidImageID(t *testing.T) {
	svc, _ := newReviewFixture()

	for _, bad := range []string{"", "not-a-uuid", "5f64ec52c1854410b1fed1d4705ffc0b"} {
		in := reviewInput()
		in.ImageID = bad
		_, err := svc.Create(context.Background(), in)
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	}
}

func TestReviewCreateDuplicateImageID(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	in := reviewInput()
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	other := reviewInput()
	other.ImageID = in.ImageID
	_, err = svc.Create(ctx, other)
	require.Error(t, err)
	assert.Equal(t, errs.KindDuplicate, errs.KindOf(err))
}

func TestReviewUpdate(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, reviewInput())
	require.NoError(t, err)

	in := reviewInput()
	in.ImageID = created.ImageID
	in.Stars = 4
	in.TopPicks = []domain.TopPick{domain.TopPickAmbience}
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 4, updated.Stars)
	assert.Equal(t, []domain.TopPick{domain.TopPickAmbience}, updated.TopPicks)
}

func TestReviewUpdateImageIDCollision(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, reviewInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, reviewInput())
	require.NoError(t, err)

	in := reviewInput()
	in.ImageID = first.ImageID
	_, err = svc.Update(ctx, second.ID, in)
	require.Error(t, err)
	assert.Equal(t, errs.KindDuplicate, errs.KindOf(err))
}

func TestReviewDelete(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, reviewInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(svc.Delete(ctx, created.ID)))
}
