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

// MenuInput carries the caller-supplied fields for create and update.
// Field bounds are enforced at the transport binding; the service enforces
// the semantic rules (imageId format and uniqueness).
type MenuInput struct {
	ImageID     string
	Name        string
	Price       float64
	Description string
	Items       []string
}

type MenuService struct {
	crud[domain.Menu]
	repo imageRepository[domain.Menu]
}

func NewMenuService(repo imageRepository[domain.Menu], logger *slog.Logger) *MenuService {
	return &MenuService{
		crud: crud[domain.Menu]{repo: repo, resource: "Menu", logger: logger},
		repo: repo,
	}
}

func (s *MenuService) Create(ctx context.Context, in MenuInput) (*domain.Menu, error) {
	if err := validate.UUID(in.ImageID, "imageId"); err != nil {
		return nil, err
	}

	// Advisory pre-check; the unique index catches the race at Save.
	taken, err := s.repo.ExistsByImageID(ctx, in.ImageID)
	if err != nil {
		return nil, errs.Internal(err, "failed to check imageId uniqueness")
	}
	if taken {
		return nil, errs.Duplicate("Menu with imageId %s already exists", in.ImageID)
	}

	now := time.Now().UTC()
	menu := &domain.Menu{
		ID:          uuid.NewString(),
		ImageID:     in.ImageID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Items:       in.Items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, menu.ID, menu); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errs.Duplicate("Menu with imageId %s already exists", in.ImageID)
		}
		return nil, errs.Internal(err, "failed to save menu")
	}

	s.logger.Info("menu created", "id", menu.ID, "name", menu.Name)
	return menu, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in MenuInput) (*domain.Menu, error) {
	if err := validate.UUID(id, "id"); err != nil {
		return nil, err
	}
	if err := validate.UUID(in.ImageID, "imageId"); err != nil {
		return nil, err
	}

	menu, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The record's own imageId never conflicts with itself.
	taken, err := s.repo.ExistsByImageIDExcluding(ctx, in.ImageID, id)
	if err != nil {
		return nil, errs.Internal(err, "failed to check imageId uniqueness")
	}
	if taken {
		return nil, errs.Duplicate("Menu with imageId %s already exists", in.ImageID)
	}

	menu.ImageID = in.ImageID
	menu.Name = in.Name
	menu.Price = in.Price
	menu.Description = in.Description
	menu.Items = in.Items
	menu.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, menu.ID, menu); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errs.Duplicate("Menu with imageId %s already exists", in.ImageID)
		}
		return nil, errs.Internal(err, "failed to save menu")
	}

	s.logger.Info("menu updated", "id", menu.ID)
	return menu, nil
}
