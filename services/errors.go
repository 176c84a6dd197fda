package services

// ErrorCode classifies a business failure. Controllers map codes to
// HTTP statuses; services never touch HTTP.
type ErrorCode string

const (
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeForbidden  ErrorCode = "FORBIDDEN"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeValidation ErrorCode = "VALIDATION"
)

// Error is a typed business error with a machine code and a human
// message. All failures inside a service transaction are returned as
// *Error; anything else is a storage failure.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func ErrForbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func ErrConflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func ErrValidation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}
