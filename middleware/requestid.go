package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id in and out
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an id, honoring one supplied by the
// client, and echoes it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID extracts the request id from the Gin context
func GetRequestID(c *gin.Context) (string, error) {
	id, exists := c.Get(requestIDKey)
	if !exists {
		return "", &RequestIDError{Code: "MISSING_REQUEST_ID", Message: "Request ID not found in context"}
	}

	idStr, ok := id.(string)
	if !ok {
		return "", &RequestIDError{Code: "INVALID_REQUEST_ID", Message: "Request ID is not a string"}
	}

	return idStr, nil
}

// RequestIDError represents a request id extraction error
type RequestIDError struct {
	Code    string
	Message string
}

func (e *RequestIDError) Error() string {
	return e.Message
}
