package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/store"
	"github.com/srikarthikeya/caterers/internal/validate"
)

type ReviewInput struct {
	ImageID     string
	Timeline    string
	GuestsCount int
	Stars       int
	Comments    string
	TopPicks    []domain.TopPick
	EventType   domain.EventType
}

type ReviewService struct {
	crud[domain.Review]
	repo imageRepository[domain.Review]
}

func NewReviewService(repo imageRepository[domain.Review], logger *slog.Logger) *ReviewService {
	return &ReviewService{
		crud: crud[domain.Review]{repo: repo, resource: "Review", logger: logger},
		repo: repo,
	}
}

func (s *ReviewService) Create(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	if err := validate.UUID(in.ImageID, "imageId"); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByImageID(ctx, in.ImageID)
	if err != nil {
		return nil, errs.Internal(err, "failed to check imageId uniqueness")
	}
	if taken {
		return nil, errs.Duplicate("Review with imageId %s already exists", in.ImageID)
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:          uuid.NewString(),
		ImageID:     in.ImageID,
		Timeline:    in.Timeline,
		GuestsCount: in.GuestsCount,
		Stars:       in.Stars,
		Comments:    in.Comments,
		TopPicks:    in.TopPicks,
		EventType:   in.EventType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, review.ID, review); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errs.Duplicate("Review with imageId %s already exists", in.ImageID)
		}
		return nil, errs.Internal(err, "failed to save review")
	}

	s.logger.Info("review created", "id", review.ID, "stars", review.Stars)
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, in ReviewInput) (*domain.Review, error) {
	if err := validate.UUID(id, "id"); err != nil {
		return nil, err
	}
	if err := validate.UUID(in.ImageID, "imageId"); err != nil {
		return nil, err
	}

	review, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByImageIDExcluding(ctx, in.ImageID, id)
	if err != nil {
		return nil, errs.Internal(err, "failed to check imageId uniqueness")
	}
	if taken {
		return nil, errs.Duplicate("Review with imageId %s already exists", in.ImageID)
	}

	review.ImageID = in.ImageID
	review.Timeline = in.Timeline
	review.GuestsCount = in.GuestsCount
	review.Stars = in.Stars
	review.Comments = in.Comments
	review.TopPicks = in.TopPicks
	review.EventType = in.EventType
	review.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, review.ID, review); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errs.Duplicate("Review with imageId %s already exists", in.ImageID)
		}
		return nil, errs.Internal(err, "failed to save review")
	}

	s.logger.Info("review updated", "id", review.ID)
	return review, nil
}
