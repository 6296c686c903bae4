package result

import "fmt"

// Error is a stable, machine-readable failure reason. Codes are namespaced
// by entity, e.g. "Department.NotFound".
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func NewError(code, description string) Error {
	return Error{Code: code, Description: description}
}

// Result is the uniform return channel for every fallible service
// operation. It carries either a value or a non-empty ordered list of
// errors, never both. Expected domain outcomes (not found, constraint
// violation, no-op update) travel as Failure values instead of raw errors.
type Result[T any] struct {
	value   T
	errors  []Error
	success bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

func Failure[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		errs = []Error{NewError("Unknown", "An unknown error occurred.")}
	}
	return Result[T]{errors: errs}
}

func (r Result[T]) IsSuccess() bool { return r.success }

// Value returns the carried value. Callers must check IsSuccess first;
// on failure the zero value is returned.
func (r Result[T]) Value() T { return r.value }

// Errors returns the ordered error list. Empty on success.
func (r Result[T]) Errors() []Error { return r.errors }
