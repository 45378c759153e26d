package httperr

import (
	"errors"

	"notes-api/internal/services/notes"

	"github.com/gofiber/fiber/v2"
)

// E represents an HTTP error with status code and message
type E struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON renders the error as an ErrorResponse envelope
func (e E) JSON(c *fiber.Ctx) error {
	return c.Status(e.Status).JSON(notes.NewErrorResponse(e.Status, e.Message))
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// InternalError returns an internal server error with the given message
func InternalError(message string) E {
	return E{Status: fiber.StatusInternalServerError, Message: message}
}

// Pre-defined HTTP errors
var (
	ErrMalformedBody   = E{Status: fiber.StatusBadRequest, Message: "Malformed request body"}
	ErrTooManyRequests = E{Status: fiber.StatusTooManyRequests, Message: "Too Many Requests"}
	ErrInternal        = InternalError("Internal Server Error")
)

// Handler is the global error handler for Fiber
func Handler(c *fiber.Ctx, err error) error {
	var e E
	if errors.As(err, &e) {
		return e.JSON(c)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return E{Status: fiberError.Code, Message: fiberError.Message}.JSON(c)
	}

	return ErrInternal.JSON(c)
}
