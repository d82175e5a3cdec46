package http

import (
	"errors"
	"net/http"

	"vidtube/internal/entity"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every successful endpoint returns.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse is the envelope every failed endpoint returns.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Errors:     []string{},
		Success:    false,
	})
}

// respondError maps domain errors onto HTTP status codes. Anything not in
// the domain taxonomy is a 500 with a generic message so internals never
// leak to clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, entity.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, entity.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, entity.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, entity.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Errors:     []string{},
		Success:    false,
	})
}
