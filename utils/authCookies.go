package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Session cookie names. The frontend never reads these; they are HttpOnly.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	setCookie(c, AccessTokenCookie, accessToken, AccessTokenExpiry)
	setCookie(c, RefreshTokenCookie, refreshToken, RefreshTokenExpiry)
}

func setCookie(c *gin.Context, name, value string, expiry time.Duration) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}

func ClearAuthCookies(c *gin.Context) {
	clearCookie(c, AccessTokenCookie)
	clearCookie(c, RefreshTokenCookie)
}

func clearCookie(c *gin.Context, name string) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
