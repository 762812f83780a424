package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// HttpError writes an error response and logs the underlying cause, which is
// never sent to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		log.Printf("%s %s -> %d %s: %v", c.Request.Method, c.Request.URL.Path, status, message, err)
	}
	c.JSON(status, gin.H{"error": message})
}
