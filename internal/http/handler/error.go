package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"inquiryapi/internal/http/middleware"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// statusPayload is the body of every JSON response from this API.
// The submission endpoint sets only Status and Message.
type statusPayload struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeStatus writes the plain {"status","message"} body.
func writeStatus(c *fiber.Ctx, httpStatus int, status, message string) error {
	return c.Status(httpStatus).JSON(statusPayload{Status: status, Message: message})
}

// writeError writes an error body with a machine-readable code and the request id.
//
// Parameters:
// - status: HTTP status code to return
// - code: short error code (e.g., "INVALID_LIMIT", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(statusPayload{
		Status:    statusError,
		Message:   message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
