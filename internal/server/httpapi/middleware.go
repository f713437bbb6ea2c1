package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// requireToken rejects requests without a valid bearer session token and
// stores the token's user id in the gin context.
func (s *Server) requireToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	userID, err := s.tokens.UserID(strings.TrimSpace(token))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.Set(userIDKey, userID)
	c.Next()
}

// actingUser returns the token's user, aborting with 403 when the request
// names someone else.
func actingUser(c *gin.Context, requested string) (string, bool) {
	userID := c.GetString(userIDKey)
	if requested != "" && requested != userID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not belong to the requested user"})
		return "", false
	}
	return userID, true
}
