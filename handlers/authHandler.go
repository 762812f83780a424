package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/haniyashafiq/PRO-CRM/middlewares"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/haniyashafiq/PRO-CRM/services"
	"github.com/haniyashafiq/PRO-CRM/utils"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

// Register creates a staff account. Reachable only through the
// Admin-guarded route group.
func (h *AuthHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.ValidateAndCreateUser(ctx, &user); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
		return
	}

	c.Status(201)
}

// Login authenticates the staff member and starts a cookie session.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(strconv.FormatInt(user.ID, 10), user.Role.Name)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate tokens", 500, err)
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(200, gin.H{
		"message":  "Success",
		"username": user.Username,
		"role":     user.Role.Name,
	})
}

// Logout ends the session by clearing the auth cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// Session returns the identity behind the current session cookie so the
// frontend can restore its state after a reload.
func (h *AuthHandler) Session(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Missing session"})
		return
	}
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Missing session"})
		return
	}

	c.JSON(200, gin.H{
		"userId": userID,
		"role":   role,
	})
}

// RefreshToken mints a fresh access token from the refresh cookie.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := c.Cookie(utils.RefreshTokenCookie)
	if err != nil || token == "" {
		c.JSON(401, gin.H{"error": "Missing refresh token"})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid refresh token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate access token", 500, err)
		return
	}

	utils.SetAuthCookies(c, accessToken, token)
	c.Status(200)
}

// ListUsers returns every staff account for the admin user screen.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to retrieve users", 500, err)
		return
	}
	c.JSON(200, users)
}

// DeleteAccount removes a staff account.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		middlewares.HttpError(c, "Failed to delete user account", 500, err)
		return
	}

	c.Status(200)
}

// SendResetCode emails a password reset code to the given staff address.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.Email, code); err != nil {
		middlewares.HttpError(c, "Failed to set reset code", 500, err)
		return
	}

	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		middlewares.HttpError(c, "Failed to send reset code email", 500, err)
		return
	}

	c.Status(200)
}

// ChangePassword completes the reset flow: it checks the emailed code and
// replaces the password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := utils.ValidatePasswordReset(data.Code, data.NewPassword); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	storedCode, err := utils.GetResetCode(ctx, data.Email)
	if err != nil || storedCode == nil || *storedCode != data.Code {
		c.JSON(401, gin.H{"error": "Invalid reset code"})
		return
	}

	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	hashedPassword, err := utils.HashPassword(data.NewPassword)
	if err != nil {
		middlewares.HttpError(c, "Failed to hash password", 500, err)
		return
	}

	if err := h.UserService.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		middlewares.HttpError(c, "Failed to update password", 500, err)
		return
	}

	if err := utils.DeleteResetCode(ctx, data.Email); err != nil {
		log.Printf("Failed to delete reset code for %s: %v", data.Email, err)
	}
	c.Status(200)
}
