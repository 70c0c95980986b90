// Package response provides standardized HTTP response builders for the flight offers API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:      CodeInvalidRequest,
		Message:   message,
		RequestID: requestID(c),
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:      CodeInvalidRequest,
		Message:   MsgInvalidRequestBody,
		RequestID: requestID(c),
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:      CodeValidationError,
		Message:   MsgValidationFailed,
		Details:   details,
		RequestID: requestID(c),
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:      CodeValidationError,
		Message:   message,
		RequestID: requestID(c),
	})
}

// NotFound writes a 404 Not Found response with the given error message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:      CodeNotFound,
		Message:   message,
		RequestID: requestID(c),
	})
}

// Conflict writes a 409 Conflict response with the given error message.
func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:      CodeConflict,
		Message:   message,
		RequestID: requestID(c),
	})
}

// BadGateway writes a 502 Bad Gateway response for upstream communication failures.
func BadGateway(c echo.Context) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:      CodeUpstreamError,
		Message:   MsgUpstreamError,
		RequestID: requestID(c),
	})
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, &ErrorDetail{
		Code:      CodeServiceUnavailable,
		Message:   MsgUpstreamError,
		RequestID: requestID(c),
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:      CodeTimeout,
		Message:   MsgTimeout,
		RequestID: requestID(c),
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:      CodeTimeout,
		Message:   MsgRequestCancelled,
		RequestID: requestID(c),
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:      CodeInternalError,
		Message:   MsgInternalError,
		RequestID: requestID(c),
	})
}
