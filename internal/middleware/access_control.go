package middleware

import (
	"net/http"
	"strconv"

	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Authorization policies. Each route composes an ordered chain of these after
// Authenticate; the first failing policy short-circuits with 401.

// RequireLogin rejects anonymous requests
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: You must be logged in to access this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthor rejects users without the author flag
func RequireAuthor() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAuthor {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: Must have Author privileges to access this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireReferencedUser rejects requests where the authenticated user is not the
// user referenced by the :userId path parameter
func RequireReferencedUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !matchesPathUser(c, user.ID) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: Cannot modify other users' info")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireReferencedUserOrAuthor allows the referenced user themselves, or any
// user with the author flag
func RequireReferencedUserOrAuthor() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || (!matchesPathUser(c, user.ID) && !user.IsAuthor) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: Cannot delete other users")
			c.Abort()
			return
		}
		c.Next()
	}
}

func matchesPathUser(c *gin.Context, userID uint) bool {
	pathID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return false
	}
	return uint(pathID) == userID
}
