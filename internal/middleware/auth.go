package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/permissions"
)

// ContextUserID is the gin context key holding the authenticated
// user's id, set by RequireAuth.
const ContextUserID = "userID"

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, ok := sess.Get("user_id").(string)
		if !ok || uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, uid)
		c.Next()
	}
}

// RequirePermission gates a route on a permission string. The check is
// fail-closed and re-reads the role on every request, so role edits
// apply immediately.
func RequirePermission(checker *permissions.Checker, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, _ := c.Get(ContextUserID)
		userID, _ := uid.(string)
		if !checker.HasPermission(userID, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied: " + permission})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id for the request, or "".
func UserID(c *gin.Context) string {
	uid, _ := c.Get(ContextUserID)
	s, _ := uid.(string)
	return s
}
