package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name:        "generates new session ID when not provided",
			headerValue: "",
			validate: func(t *testing.T, id string) {
				assert.NotEmpty(t, id)
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:        "uses provided session ID from header",
			headerValue: "returning-client-session",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "returning-client-session", id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Session())
			router.GET("/test", func(c *gin.Context) {
				id := GetSessionID(c)
				c.String(http.StatusOK, id)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(SessionHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			tt.validate(t, w.Body.String())

			// The resolved id is always echoed back to the client.
			assert.Equal(t, w.Body.String(), w.Header().Get(SessionHeader))
		})
	}
}

func TestGetSessionID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetSessionID(c))
}
