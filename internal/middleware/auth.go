package middleware

import (
	"strings"

	"blog-api/internal/models"
	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// UserFinder is the storage lookup the authentication gate needs
type UserFinder interface {
	FindByID(id uint) (*models.User, error)
}

// Authenticate resolves the bearer access token, if any, into a user identity and
// attaches it to the request context. It never terminates the request: a missing,
// invalid, or expired token, an unknown user, or a revoked session all resolve to
// an anonymous identity, and the policy chain decides whether that is acceptable.
func Authenticate(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		// A nulled refresh token means the session was revoked; outstanding
		// access tokens stop resolving immediately rather than riding out
		// their remaining lifetime.
		if user.RefreshToken == nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Authenticate, or false for
// anonymous requests.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
