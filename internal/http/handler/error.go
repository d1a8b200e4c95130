package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"questshare/internal/http/middleware"
	"questshare/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
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

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeValidationError includes the per-field messages so clients can attach
// them to the corresponding form inputs.
func writeValidationError(c *fiber.Ctx, ve *service.ValidationError) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "invalid input",
			Fields:  ve.Fields,
		},
	}
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

// writeServiceError translates a service-layer error into the standard envelope.
func writeServiceError(c *fiber.Ctx, err error) error {
	if ve, ok := service.AsValidationError(err); ok {
		return writeValidationError(c, ve)
	}

	var ue *service.UploadError
	var ge *service.GenerationError

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "account required")
	case errors.Is(err, service.ErrPermissionDenied):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "admin role required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrAlreadyModerated):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "material already moderated")
	case errors.Is(err, service.ErrAccountExists):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "account already registered")
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "email already registered")
	case errors.As(err, &ue):
		return writeError(c, fiber.StatusBadGateway, "UPLOAD_ERROR", "upload could not be completed")
	case errors.As(err, &ge):
		return writeError(c, fiber.StatusBadGateway, "GENERATION_ERROR", "study guide generation failed")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
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
