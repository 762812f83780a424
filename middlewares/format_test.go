package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The client sees the message only; the underlying cause stays in the log.
func TestHttpErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/somewhere", nil)

	HttpError(c, "Failed to list patients", 500, errors.New("dial tcp: connection refused"))

	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"error": "Failed to list patients"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")
}
