package middleware

import (
	"errors"
	"net/http"

	"resume-collector-backend/internal/delivery/http/response"
	"resume-collector-backend/pkg/apperror"
	"resume-collector-backend/pkg/logger"
	"resume-collector-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, response.ErrorDetail{
				Kind:    string(appErr.Kind),
				Details: appErr.Details,
			})
			if isUploadRejection(appErr.Kind) {
				security.DefaultLogger().LogUploadRejected(c.Request.Context(),
					c.ClientIP(), c.Request.UserAgent(), response.RequestID(c), string(appErr.Kind), appErr.Message)
			}
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error",
			"error", err,
			"request_id", response.RequestID(c),
			"path", c.FullPath(),
		)
		security.DefaultLogger().LogServerError(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath(), err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", response.ErrorDetail{
			Kind: string(apperror.KindInternal),
		})
	}
}

func isUploadRejection(kind apperror.Kind) bool {
	switch kind {
	case apperror.KindUnsupportedFileType, apperror.KindUnsupportedContentType, apperror.KindResumeTooLarge:
		return true
	}
	return false
}
