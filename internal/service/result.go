// Package service implements the domain services. Every method returns the
// shared Result envelope for business outcomes and a plain error only for
// unexpected failures (database down, etc.) that the handler boundary turns
// into a generic 500.
package service

// FieldError describes a single per-field business or validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the uniform response envelope returned by every service call.
type Result struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps field errors in a failed envelope.
func Fail(errs ...FieldError) Result {
	return Result{Success: false, Errors: errs}
}

// FailField builds a failed envelope with a single field error.
func FailField(field, message string) Result {
	return Fail(FieldError{Field: field, Message: message})
}
