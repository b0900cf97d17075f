package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the header carrying the request correlation ID
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware creates middleware that ensures every request carries a
// request ID, reusing the inbound header when a caller already set one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			// Expose the ID to handlers and to the caller
			c.Set("request_id", requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)

			return next(c)
		}
	}
}
