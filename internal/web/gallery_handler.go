package web

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srikarthikeya/caterers/internal/domain"
	"github.com/srikarthikeya/caterers/internal/errs"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/service"
)

// GalleryAPI is the slice of the gallery service the transport calls.
type GalleryAPI interface {
	Create(ctx context.Context, in service.GalleryInput) (*domain.Gallery, error)
	GetByID(ctx context.Context, id string) (*domain.Gallery, error)
	GetAll(ctx context.Context, req pagination.Request) (*pagination.Page[*domain.Gallery], error)
	Update(ctx context.Context, id string, in service.GalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error
	PresignedImageURL(ctx context.Context, id string, expiry time.Duration) (string, error)
}

type galleryHandler struct {
	svc           GalleryAPI
	presignExpiry time.Duration
}

// galleryRequest binds the non-file multipart fields; the image arrives
// as the form file "image".
type galleryRequest struct {
	Type        string `form:"type" binding:"required,oneof=MENU SERVICES TEAM REVIEWS GALLERY"`
	Name        string `form:"name" binding:"required,min=2,max=100"`
	Description string `form:"description" binding:"required,notblank,max=1000"`
}

// bindGallery reads the form fields plus the optional image file. A
// missing file yields a nil upload; the service decides whether that is
// acceptable for the operation.
func bindGallery(c *gin.Context) (service.GalleryInput, error) {
	var req galleryRequest
	if err := c.ShouldBind(&req); err != nil {
		return service.GalleryInput{}, bindError(err)
	}

	in := service.GalleryInput{
		Type:        domain.GalleryType(req.Type),
		Name:        req.Name,
		Description: req.Description,
	}

	header, err := c.FormFile("image")
	if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
		if err == multipart.ErrMessageTooLarge {
			return service.GalleryInput{}, errs.BadRequest("image exceeds the maximum allowed size")
		}
		return in, nil
	}
	if err != nil {
		return service.GalleryInput{}, errs.BadRequest("invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return service.GalleryInput{}, errs.BadRequest("unable to read uploaded image")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return service.GalleryInput{}, errs.BadRequest("unable to read uploaded image")
	}

	in.Image = &service.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}
	return in, nil
}

func (h *galleryHandler) create(c *gin.Context) {
	in, err := bindGallery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	gallery, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Gallery item created successfully", gallery)
}

func (h *galleryHandler) get(c *gin.Context) {
	gallery, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Gallery item retrieved successfully", gallery)
}

func (h *galleryHandler) list(c *gin.Context) {
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
	respond(c, http.StatusOK, "Gallery items retrieved successfully", page)
}

func (h *galleryHandler) imageURL(c *gin.Context) {
	url, err := h.svc.PresignedImageURL(c.Request.Context(), c.Param("id"), h.presignExpiry)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Image URL generated successfully", gin.H{"url": url})
}

func (h *galleryHandler) update(c *gin.Context) {
	in, err := bindGallery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	gallery, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Gallery item updated successfully", gallery)
}

func (h *galleryHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Gallery item deleted successfully", nil)
}
