package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/validate"
)

type QuoteInput struct {
	FullName          string
	PhoneNumber       string
	Email             string
	EventDate         time.Time
	EventType         domain.EventType
	ExpectedGuests    int
	AdditionalDetails string
}

type QuoteService struct {
	crud[domain.Quote]
}

func NewQuoteService(repo repository[domain.Quote], logger *slog.Logger) *QuoteService {
	return &QuoteService{
		crud: crud[domain.Quote]{repo: repo, resource: "Quote", logger: logger},
	}
}

func (s *QuoteService) Create(ctx context.Context, in QuoteInput) (*domain.Quote, error) {
	if err := futureDate(in.EventDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:                uuid.NewString(),
		FullName:          in.FullName,
		PhoneNumber:       in.PhoneNumber,
		Email:             in.Email,
		EventDate:         in.EventDate,
		EventType:         in.EventType,
		ExpectedGuests:    in.ExpectedGuests,
		AdditionalDetails: in.AdditionalDetails,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Save(ctx, quote.ID, quote); err != nil {
		return nil, errs.Internal(err, "failed to save quote")
	}

	s.logger.Info("quote created", "id", quote.ID, "eventType", quote.EventType)
	return quote, nil
}

func (s *QuoteService) Update(ctx context.Context, id string, in QuoteInput) (*domain.Quote, error) {
	if err := validate.UUID(id, "id"); err != nil {
		return nil, err
	}
	if err := futureDate(in.EventDate); err != nil {
		return nil, err
	}

	quote, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quote.FullName = in.FullName
	quote.PhoneNumber = in.PhoneNumber
	quote.Email = in.Email
	quote.EventDate = in.EventDate
	quote.EventType = in.EventType
	quote.ExpectedGuests = in.ExpectedGuests
	quote.AdditionalDetails = in.AdditionalDetails
	quote.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, quote.ID, quote); err != nil {
		return nil, errs.Internal(err, "failed to save quote")
	}

	s.logger.Info("quote updated", "id", quote.ID)
	return quote, nil
}

func futureDate(d time.Time) error {
	if !d.After(time.Now()) {
		return errs.BadRequest("event date must be in the future")
	}
	return nil
}
