package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/service"
)

// ReviewAPI is the slice of the review service the transport calls.
type ReviewAPI interface {
	Create(ctx context.Context, in service.ReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetAll(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Review], error)
	Update(ctx context.Context, id string, in service.ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewHandler struct {
	svc ReviewAPI
}

type reviewRequest struct {
	ImageID     string   `json:"imageId" binding:"required"`
	Timeline    string   `json:"timeline" binding:"required,notblank,max=200"`
	GuestsCount int      `json:"guestsCount" binding:"required,min=1,max=100000"`
	Stars       int      `json:"stars" binding:"required,min=1,max=5"`
	Comments    string   `json:"comments" binding:"required,notblank,max=2000"`
	TopPicks    []string `json:"topPicks" binding:"required,min=1,max=5,dive,oneof=FOOD SERVICE PRESENTATION AMBIENCE VALUE"`
	EventType   string   `json:"eventType" binding:"required,oneof=WEDDING BIRTHDAY CORPORATE ANNIVERSARY HOUSEWARMING OTHER"`
}

func (r reviewRequest) input() service.ReviewInput {
	picks := make([]domain.TopPick, 0, len(r.TopPicks))
	for _, p := range r.TopPicks {
		picks = append(picks, domain.TopPick(p))
	}
	return service.ReviewInput{
		ImageID:     r.ImageID,
		Timeline:    r.Timeline,
		GuestsCount: r.GuestsCount,
		Stars:       r.Stars,
		Comments:    r.Comments,
		TopPicks:    picks,
		EventType:   domain.EventType(r.EventType),
	}
}

func (h *reviewHandler) create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	review, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Review created successfully", review)
}

func (h *reviewHandler) get(c *gin.Context) {
	review, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review retrieved successfully", review)
}

func (h *reviewHandler) list(c *gin.Context) {
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
	respond(c, http.StatusOK, "Reviews retrieved successfully", page)
}

func (h *reviewHandler) update(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	review, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review updated successfully", review)
}

func (h *reviewHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review deleted successfully", nil)
}
