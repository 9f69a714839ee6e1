package helper

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// APIError is the single error type the route layer raises. The fiber
// ErrorHandler turns it into the HTTP response; nothing else writes error
// bodies directly.
type APIError struct {
	Status  int
	Message string
	Errors  map[string]string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// ErrInvalidParam reports a path parameter that is not a positive integer.
func ErrInvalidParam(raw string) *APIError {
	return &APIError{
		Status:  fiber.StatusBadRequest,
		Message: fmt.Sprintf("Invalid parameter in request: '%s'", raw),
	}
}

// ErrNotFound reports a well-formed id with no matching row.
func ErrNotFound(kind string, id uint) *APIError {
	return &APIError{
		Status:  fiber.StatusNotFound,
		Message: fmt.Sprintf("%s '%d' not found", kind, id),
	}
}

// ErrUnauthorized covers both missing/invalid tokens and capability
// failures. Rendered as plain text, never JSON.
func ErrUnauthorized(message string) *APIError {
	if message == "" {
		message = "Unauthorized"
	}
	return &APIError{Status: fiber.StatusUnauthorized, Message: message}
}

// ErrUnprocessable reports missing or wrong-typed request body fields,
// detected before any storage access.
func ErrUnprocessable(message string, errors map[string]string) *APIError {
	return &APIError{Status: fiber.StatusUnprocessableEntity, Message: message, Errors: errors}
}

// ErrValidation reports business-rule violations found at write time.
func ErrValidation(message string, errors map[string]string) *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Message: message, Errors: errors}
}

// ErrorHandler is installed as the fiber app ErrorHandler. Auth failures
// keep their historical plain-text body; every other error is JSON.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var apiErr *APIError
	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *fiber.Error:
		apiErr = &APIError{Status: e.Code, Message: e.Message}
	default:
		log.Printf("unhandled error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		apiErr = &APIError{Status: fiber.StatusInternalServerError, Message: "Internal server error"}
	}

	if apiErr.Status == fiber.StatusUnauthorized {
		return ctx.Status(apiErr.Status).SendString(apiErr.Message)
	}

	body := fiber.Map{"error": apiErr.Message}
	if len(apiErr.Errors) > 0 {
		body["errors"] = apiErr.Errors
	}
	return ctx.Status(apiErr.Status).JSON(body)
}
