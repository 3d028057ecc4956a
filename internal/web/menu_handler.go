package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/service"
)

// MenuAPI is the slice of the menu service the transport calls.
type MenuAPI interface {
	Create(ctx context.Context, in service.MenuInput) (*domain.Menu, error)
	GetByID(ctx context.Context, id string) (*domain.Menu, error)
	GetAll(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Menu], error)
	Update(ctx context.Context, id string, in service.MenuInput) (*domain.Menu, error)
	Delete(ctx context.Context, id string) error
}

type menuHandler struct {
	svc MenuAPI
}

type menuRequest struct {
	ImageID     string   `json:"imageId" binding:"required"`
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Price       float64  `json:"price" binding:"required,gt=0,lte=999999.99"`
	Description string   `json:"description" binding:"required,notblank,max=1000"`
	Items       []string `json:"items" binding:"required,min=1,max=50,dive,notblank,max=200"`
}

func (r menuRequest) input() service.MenuInput {
	return service.MenuInput{
		ImageID:     r.ImageID,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Items:       r.Items,
	}
}

func (h *menuHandler) create(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	menu, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Menu created successfully", menu)
}

func (h *menuHandler) get(c *gin.Context) {
	menu, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu retrieved successfully", menu)
}

func (h *menuHandler) list(c *gin.Context) {
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
	respond(c, http.StatusOK, "Menus retrieved successfully", page)
}

func (h *menuHandler) update(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	menu, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu updated successfully", menu)
}

func (h *menuHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Menu deleted successfully", nil)
}
