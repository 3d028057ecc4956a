// Package web is the HTTP transport: gin routes under /api, request
// binding with validator tags mirroring the stored field bounds, and the
// response envelopes.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wires the resource handlers onto a gin engine.
type Server struct {
	engine *gin.Engine
	logger *slog.Logger
}

// New builds the router. presignExpiry bounds the lifetime of gallery
// image URLs handed to clients.
func New(menus MenuAPI, galleries GalleryAPI, quotes QuoteAPI, reviews ReviewAPI, presignExpiry time.Duration, logger *slog.Logger) *Server {
	registerValidators()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(logger))
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		respondError(c, nil)
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := engine.Group("/api")

	mh := &menuHandler{svc: menus}
	menu := api.Group("/menu")
	menu.POST("", mh.create)
	menu.GET("", mh.list)
	menu.GET("/:id", mh.get)
	menu.PUT("/:id", mh.update)
	menu.DELETE("/:id", mh.delete)

	gh := &galleryHandler{svc: galleries, presignExpiry: presignExpiry}
	gallery := api.Group("/gallery")
	gallery.POST("", gh.create)
	gallery.GET("", gh.list)
	gallery.GET("/:id", gh.get)
	gallery.GET("/:id/image-url", gh.imageURL)
	gallery.PUT("/:id", gh.update)
	gallery.DELETE("/:id", gh.delete)

	qh := &quoteHandler{svc: quotes}
	quote := api.Group("/quotes")
	quote.POST("", qh.create)
	quote.GET("", qh.list)
	quote.GET("/:id", qh.get)
	quote.PUT("/:id", qh.update)
	quote.DELETE("/:id", qh.delete)

	rh := &reviewHandler{svc: reviews}
	review := api.Group("/reviews")
	review.POST("", rh.create)
	review.GET("", rh.list)
	review.GET("/:id", rh.get)
	review.PUT("/:id", rh.update)
	review.DELETE("/:id", rh.delete)

	return &Server{engine: engine, logger: logger}
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
