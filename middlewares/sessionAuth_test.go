package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T, roles ...string) *gin.Engine {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	guards := []gin.HandlerFunc{SessionAuth()}
	if len(roles) > 0 {
		guards = append(guards, RequireRoles(roles...))
	}

	group := router.Group("/", guards...)
	group.GET("/whoami", func(c *gin.Context) {
		userID, err := ExtractUserIDFromContext(c.Request.Context())
		require.NoError(t, err)
		role, err := ExtractUserRoleFromContext(c.Request.Context())
		require.NoError(t, err)
		c.JSON(200, gin.H{"userId": userID, "role": role})
	})
	return router
}

func sessionRequest(t *testing.T, role string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if role != "" {
		token, err := utils.GenerateAccessToken("42", role)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: token})
	}
	return req
}

func TestSessionAuthMissingCookie(t *testing.T) {
	router := newSessionRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthInvalidToken(t *testing.T) {
	router := newSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: "not-a-token"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthPopulatesContext(t *testing.T) {
	router := newSessionRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, sessionRequest(t, models.RoleDoctor))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"42"`)
	assert.Contains(t, w.Body.String(), `"role":"Doctor"`)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	router := newSessionRouter(t, models.RoleAdmin, models.RoleCanteen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, sessionRequest(t, models.RoleCanteen))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsOtherRoles(t *testing.T) {
	router := newSessionRouter(t, models.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, sessionRequest(t, models.RolePsychologist))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
