package security_test

import (
	"testing"

	"resume-collector-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateResumeFile(t *testing.T) {
	t.Run("Should accept a PDF with its MIME type", func(t *testing.T) {
		assert.NoError(t, security.ValidateResumeFile("resume.pdf", "application/pdf"))
	})

	t.Run("Should accept DOC and DOCX regardless of extension case", func(t *testing.T) {
		assert.NoError(t, security.ValidateResumeFile("CV.DOC", "application/msword"))
		assert.NoError(t, security.ValidateResumeFile("my.cv.Docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	})

	t.Run("Should accept a missing content type", func(t *testing.T) {
		assert.NoError(t, security.ValidateResumeFile("resume.docx", ""))
	})

	t.Run("Should reject a disallowed extension whatever the content type", func(t *testing.T) {
		for _, ct := range []string{"", "application/pdf", "application/x-msdownload"} {
			err := security.ValidateResumeFile("resume.exe", ct)
			assert.ErrorIs(t, err, security.ErrUnsupportedFileType)
			assert.Equal(t, "Resume must be PDF, DOC or DOCX. Got: resume.exe", err.Error())
		}
	})

	t.Run("Should reject names without an extension", func(t *testing.T) {
		assert.ErrorIs(t, security.ValidateResumeFile("pdf", "application/pdf"), security.ErrUnsupportedFileType)
		assert.ErrorIs(t, security.ValidateResumeFile("", ""), security.ErrUnsupportedFileType)
		assert.ErrorIs(t, security.ValidateResumeFile("resume.pdf.", ""), security.ErrUnsupportedFileType)
	})

	t.Run("Should reject an unknown content type", func(t *testing.T) {
		err := security.ValidateResumeFile("resume.pdf", "application/octet-stream")
		assert.ErrorIs(t, err, security.ErrUnsupportedContentType)
		assert.Equal(t, "Resume content type not allowed: application/octet-stream", err.Error())
	})
}

func TestResumeExtension(t *testing.T) {
	assert.Equal(t, ".pdf", security.ResumeExtension("a.b.PDF"))
	assert.Equal(t, "", security.ResumeExtension("noext"))
	assert.Equal(t, ".", security.ResumeExtension("trailing."))
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, security.ValidateFileSize(10, 10))
	assert.NoError(t, security.ValidateFileSize(1<<30, 0))
	assert.ErrorIs(t, security.ValidateFileSize(11, 10), security.ErrFileTooLarge)
}

func TestGetAllowedExtensions(t *testing.T) {
	assert.Equal(t, []string{".doc", ".docx", ".pdf"}, security.GetAllowedExtensions())
}
