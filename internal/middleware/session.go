package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader is the HTTP header carrying the client's session id.
	SessionHeader = "X-Session-ID"
	// SessionIDKey is the context key for the session id.
	SessionIDKey ContextKey = "session_id"
)

// Session resolves the client's session id: the X-Session-ID header when
// present, a fresh UUID otherwise. The id is echoed back on the response
// so first-time clients learn the id they were assigned.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionID retrieves the session id from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionIDKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
