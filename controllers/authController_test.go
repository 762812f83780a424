package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/handlers"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
	"github.com/stretchr/testify/assert"
)

type mockUserService struct {
	validateAndCreateUser func(ctx context.Context, user *models.User) error
	authenticateUser      func(ctx context.Context, email, password string) (*models.User, error)
	updateUserPassword    func(ctx context.Context, userID int64, hashedPassword string) error
	getAllUsers           func(ctx context.Context) ([]models.User, error)
	getUserByID           func(ctx context.Context, userID int64) (*models.User, error)
	getUserByEmail        func(ctx context.Context, email string) (*models.User, error)
	deleteUser            func(ctx context.Context, userID int64) error
}

var _ services.UserService = (*mockUserService)(nil)

func (m *mockUserService) ValidateAndCreateUser(ctx context.Context, user *models.User) error {
	return m.validateAndCreateUser(ctx, user)
}

func (m *mockUserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	return m.authenticateUser(ctx, email, password)
}

func (m *mockUserService) UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	return m.updateUserPassword(ctx, userID, hashedPassword)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsers(ctx)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return m.getUserByID(ctx, userID)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getUserByEmail(ctx, email)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUser(ctx, userID)
}

func newAuthRouter(userService services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthController(handlers.NewAuthHandler(userService)).RegisterRoutes(router)
	return router
}

// The auth surface lives under /api/auth, like the rest of the API.
func TestAuthRoutesMountedUnderAPI(t *testing.T) {
	userService := &mockUserService{
		authenticateUser: func(ctx context.Context, email, password string) (*models.User, error) {
			return nil, errors.New("invalid email or password")
		},
	}
	router := newAuthRouter(userService)

	body := `{"email": "staff@example.com", "password": "wrong"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The bare /auth prefix is not served.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthSessionRequiresCookie(t *testing.T) {
	router := newAuthRouter(&mockUserService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAdminUsersRequiresSession(t *testing.T) {
	router := newAuthRouter(&mockUserService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/admin/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
