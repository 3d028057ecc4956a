package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/service"
)

// QuoteAPI is the slice of the quote service the transport calls.
type QuoteAPI interface {
	Create(ctx context.Context, in service.QuoteInput) (*domain.Quote, error)
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	GetAll(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Quote], error)
	Update(ctx context.Context, id string, in service.QuoteInput) (*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}

type quoteHandler struct {
	svc QuoteAPI
}

const eventDateLayout = "2006-01-02"

type quoteRequest struct {
	FullName          string `json:"fullName" binding:"required,min=2,max=100"`
	PhoneNumber       string `json:"phoneNumber" binding:"required,phone"`
	Email             string `json:"email" binding:"required,email,max=100"`
	EventDate         string `json:"eventDate" binding:"required,datetime=2006-01-02"`
	EventType         string `json:"eventType" binding:"required,oneof=WEDDING BIRTHDAY CORPORATE ANNIVERSARY HOUSEWARMING OTHER"`
	ExpectedGuests    int    `json:"expectedGuests" binding:"required,min=1,max=100000"`
	AdditionalDetails string `json:"additionalDetails" binding:"omitempty,max=2000"`
}

func (r quoteRequest) input() service.QuoteInput {
	// The layout is already enforced by the binding tag.
	date, _ := time.Parse(eventDateLayout, r.EventDate)
	return service.QuoteInput{
		FullName:          r.FullName,
		PhoneNumber:       r.PhoneNumber,
		Email:             r.Email,
		EventDate:         date,
		EventType:         domain.EventType(r.EventType),
		ExpectedGuests:    r.ExpectedGuests,
		AdditionalDetails: r.AdditionalDetails,
	}
}

// quoteResponse renders eventDate date-only, the format clients submit.
type quoteResponse struct {
	ID                string           `json:"id"`
	FullName          string           `json:"fullName"`
	PhoneNumber       string           `json:"phoneNumber"`
	Email             string           `json:"email"`
	EventDate         string           `json:"eventDate"`
	EventType         domain.EventType `json:"eventType"`
	ExpectedGuests    int              `json:"expectedGuests"`
	AdditionalDetails string           `json:"additionalDetails,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{
		ID:                q.ID,
		FullName:          q.FullName,
		PhoneNumber:       q.PhoneNumber,
		Email:             q.Email,
		EventDate:         q.EventDate.Format(eventDateLayout),
		EventType:         q.EventType,
		ExpectedGuests:    q.ExpectedGuests,
		AdditionalDetails: q.AdditionalDetails,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func toQuotePage(p *pagination.Page[*domain.Quote]) pagination.Page[quoteResponse] {
	content := make([]quoteResponse, 0, len(p.Content))
	for _, q := range p.Content {
		content = append(content, toQuoteResponse(q))
	}
	return pagination.Page[quoteResponse]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}

func (h *quoteHandler) create(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	quote, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Quote request submitted successfully", toQuoteResponse(quote))
}

func (h *quoteHandler) get(c *gin.Context) {
	quote, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Quote retrieved successfully", toQuoteResponse(quote))
}

func (h *quoteHandler) list(c *gin.Context) {
	req, err := pagination.FromQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.svc.GetAll(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Quotes retrieved successfully", toQuotePage(page))
}

func (h *quoteHandler) update(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	quote, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Quote updated successfully", toQuoteResponse(quote))
}

func (h *quoteHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Quote deleted successfully", nil)
}
