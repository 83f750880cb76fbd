package security

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrFileTooLarge           = errors.New("file too large")
)

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Canonical MIME types for the allowed extensions
var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// FileValidationError carries the client-facing message next to the failure class.
type FileValidationError struct {
	Kind    error
	Message string
}

func (e *FileValidationError) Error() string {
	return e.Message
}

func (e *FileValidationError) Unwrap() error {
	return e.Kind
}

// ResumeExtension returns the lower-cased text after the last "." with a leading
// dot, or "" when the name has no dot.
func ResumeExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return "." + strings.ToLower(filename[i+1:])
}

// ValidateResumeFile checks the declared filename and content type.
// An empty content type is accepted; clients often omit it.
func ValidateResumeFile(filename, contentType string) error {
	if !allowedExtensions[ResumeExtension(filename)] {
		return &FileValidationError{
			Kind:    ErrUnsupportedFileType,
			Message: "Resume must be PDF, DOC or DOCX. Got: " + filename,
		}
	}
	if contentType != "" && !allowedContentTypes[contentType] {
		return &FileValidationError{
			Kind:    ErrUnsupportedContentType,
			Message: "Resume content type not allowed: " + contentType,
		}
	}
	return nil
}

// ValidateFileSize rejects files above maxBytes. maxBytes <= 0 means no cap.
func ValidateFileSize(size, maxBytes int64) error {
	if maxBytes > 0 && size > maxBytes {
		return &FileValidationError{
			Kind:    ErrFileTooLarge,
			Message: fmt.Sprintf("Resume exceeds the maximum size of %d bytes", maxBytes),
		}
	}
	return nil
}

// GetAllowedExtensions returns the allowed extensions, sorted
func GetAllowedExtensions() []string {
	extensions := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}
