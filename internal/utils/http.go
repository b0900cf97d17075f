package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the {"message": ...} body used for lookup errors
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetailResponse is the {"error": ...} body used by the totals endpoint
type ErrorDetailResponse struct {
	Error string `json:"error"`
}

// NotFoundMessage sends a 404 response with the given message
func NotFoundMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// InternalErrorMessage sends a 500 response with the given message
func InternalErrorMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: message})
}

// InternalErrorDetail sends a 500 response carrying the error detail
func InternalErrorDetail(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorDetailResponse{Error: err.Error()})
}
