package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

// Envelope codes.
const (
	CodeOK           = 0
	CodeInvalidInput = 1001
	CodeNotFound     = 4004
	CodeInternal     = 5000
)

// Response is the common response envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, status, code int, message string) {
	c.JSON(status, Response{
		Code:    code,
		Message: message,
	})
}

// fail maps a service error onto a status and envelope code.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidConvention):
		errorResponse(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	default:
		log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		errorResponse(c, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
