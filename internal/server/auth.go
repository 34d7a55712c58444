package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The identity provider lives outside this service; requests arrive
// with the stable opaque user id it issued.
const userIDHeader = "X-User-ID"

func (s *Server) requireUser(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader(userIDHeader))
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.Set("userID", userID)
	c.Next()
}

func currentUser(c *gin.Context) string {
	return c.GetString("userID")
}
