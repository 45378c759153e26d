package notes

import (
	"net/http"
)

// SuccessResponse wraps a successful payload
type SuccessResponse[T any] struct {
	Data T `json:"data"`
}

// Error is a single entry of an ErrorResponse
type Error struct {
	Code   string `json:"code" example:"400_BAD_REQUEST"`
	Title  string `json:"title" example:"Invalid Request"`
	Detail string `json:"detail" example:"Validation error: Description is 'Null/Empty'"`
}

// ErrorResponse wraps one or more errors
type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

// NewErrorResponse builds an ErrorResponse holding exactly one entry whose
// code and title are derived from the HTTP status.
func NewErrorResponse(status int, message string) ErrorResponse {
	var code, title string
	switch status {
	case http.StatusBadRequest:
		code, title = "400_BAD_REQUEST", "Invalid Request"
	case http.StatusNotFound:
		code, title = "404_NOT_FOUND", "Resource Not Found"
	case http.StatusInternalServerError:
		code, title = "500_INTERNAL_ERROR", "Server Error"
	default:
		code, title = "UNKNOWN_ERROR", "Unknown Error"
	}

	return ErrorResponse{
		Errors: []Error{{Code: code, Title: title, Detail: message}},
	}
}

// Result is the outcome of a service operation: either a SuccessResponse or
// an ErrorResponse together with the HTTP status it maps to.
type Result[T any] struct {
	data    T
	failure *ErrorResponse
	status  int
}

// Succeed returns a successful Result carrying data.
func Succeed[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Fail returns a failed Result for the given status and detail message.
func Fail[T any](status int, message string) Result[T] {
	resp := NewErrorResponse(status, message)
	return Result[T]{failure: &resp, status: status}
}

// Failed reports whether r holds an ErrorResponse.
func (r Result[T]) Failed() bool {
	return r.failure != nil
}

// Status is the HTTP status of a failed Result; zero on success.
func (r Result[T]) Status() int {
	return r.status
}

// SuccessResponse returns the success envelope. Only meaningful when !Failed().
func (r Result[T]) SuccessResponse() SuccessResponse[T] {
	return SuccessResponse[T]{Data: r.data}
}

// ErrorResponse returns the error envelope. Only meaningful when Failed().
func (r Result[T]) ErrorResponse() ErrorResponse {
	if r.failure == nil {
		return ErrorResponse{}
	}
	return *r.failure
}

// Detail is the detail of the first error entry, or "" on success.
func (r Result[T]) Detail() string {
	if r.failure == nil || len(r.failure.Errors) == 0 {
		return ""
	}
	return r.failure.Errors[0].Detail
}
