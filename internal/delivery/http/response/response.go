package response

import (
	"resume-collector-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request gets
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail names the failure class and, for validation errors, every violation
type ErrorDetail struct {
	Kind    string   `json:"kind"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse acknowledges an operation that has no resource to return
type MessageResponse struct {
	Message string `json:"message" example:"Candidate deleted successfully"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// JSON sends a successful payload as-is
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a {"message": ...} acknowledgment
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, ErrorResponse{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id set by the request id middleware, or ""
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
