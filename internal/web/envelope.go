package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srikarthikeya/caterers/internal/errs"
)

// Envelope wraps every successful response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorEnvelope wraps every failed response. Message is the classified
// error's caller-facing text; unclassified errors get an opaque message.
type ErrorEnvelope struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation: http.StatusBadRequest,
	errs.KindBadRequest: http.StatusBadRequest,
	errs.KindNotFound:   http.StatusNotFound,
	errs.KindDuplicate:  http.StatusConflict,
	errs.KindInternal:   http.StatusInternalServerError,
}

func respondError(c *gin.Context, err error) {
	status, ok := kindStatus[errs.KindOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	message, classified := errs.MessageOf(err)
	if !classified {
		message = "An unexpected error occurred"
	}
	c.JSON(status, ErrorEnvelope{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
