package apperror

import "net/http"

// Kind names the failure class surfaced to clients next to the message.
type Kind string

const (
	KindInvalidDate            Kind = "InvalidDate"
	KindInvalidSkillSet        Kind = "InvalidSkillSet"
	KindValidation             Kind = "ValidationError"
	KindUnsupportedFileType    Kind = "UnsupportedFileType"
	KindUnsupportedContentType Kind = "UnsupportedContentType"
	KindResumeTooLarge         Kind = "ResumeTooLarge"
	KindNotFound               Kind = "NotFound"
	KindInternal               Kind = "Internal"
)

type AppError struct {
	Code    int      `json:"code"`
	Kind    Kind     `json:"kind,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithKind returns a client error of the given kind.
func WithKind(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// BadRequest reports a malformed request that no more specific kind covers.
func BadRequest(message string) *AppError {
	return WithKind(http.StatusBadRequest, KindValidation, message)
}

func InvalidDate(message string) *AppError {
	return WithKind(http.StatusBadRequest, KindInvalidDate, message)
}

func InvalidSkillSet(message string) *AppError {
	return WithKind(http.StatusBadRequest, KindInvalidSkillSet, message)
}

// Validation reports every violated constraint; the first one becomes the message.
func Validation(details []string) *AppError {
	msg := "Validation failed"
	if len(details) > 0 {
		msg = details[0]
	}
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
		Details: details,
	}
}

func UnsupportedFileType(message string) *AppError {
	return WithKind(http.StatusBadRequest, KindUnsupportedFileType, message)
}

func UnsupportedContentType(message string) *AppError {
	return WithKind(http.StatusBadRequest, KindUnsupportedContentType, message)
}

func ResumeTooLarge(message string) *AppError {
	return WithKind(http.StatusRequestEntityTooLarge, KindResumeTooLarge, message)
}

func NotFound(message string) *AppError {
	return WithKind(http.StatusNotFound, KindNotFound, message)
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: "Internal Server Error",
		Err:     err,
	}
}
