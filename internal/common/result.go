// File: internal/common/result.go
package common

// Result is the tagged outcome every container action resolves to. Actions
// never let errors escape their own boundary; callers branch on Success and
// read either Data/Message or Message/Errors.
type Result struct {
	Success bool
	Data    interface{}
	Message string
	Errors  FieldErrors
}

// OK wraps a successful outcome carrying data.
func OK(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// OKMessage wraps a successful outcome where only a confirmation message matters.
func OKMessage(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail wraps a failed outcome with a banner message and optional per-field errors.
func Fail(message string, fieldErrors FieldErrors) Result {
	return Result{Success: false, Message: message, Errors: fieldErrors}
}

// FailFromError normalizes any error into a failed Result, pulling the message
// and field errors out of an APIError when present.
func FailFromError(err error, fallback string) Result {
	if apiErr, ok := IsAPIError(err); ok {
		return Fail(ErrorMessage(err, fallback), apiErr.FieldErrors)
	}
	return Fail(fallback, nil)
}
