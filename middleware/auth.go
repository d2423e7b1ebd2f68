package middleware

import (
	"net/http"
	"strings"

	userRepo "handrest/database/repository/user"
	"handrest/models"
	"handrest/services/access"
	"handrest/services/user"
	"handrest/utils"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// JWTAuth validates the bearer token, checks it against the active session
// hash (cache first, then the user record), and restricts access to the
// given roles. The resolved actor is stored on the request context.
func JWTAuth(users userRepo.UserRepository, sessions user.SessionStore, roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		u, err := users.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// The session hash decides revocation: prefer the cache, fall
		// back to the stored hash when the cache has nothing.
		activeHash := ""
		if sessions != nil {
			activeHash, _ = sessions.GetToken(userID)
		}
		if activeHash == "" {
			activeHash = u.TokenHash
		}
		if activeHash == "" || utils.HashToken(tokenString) != activeHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		if len(allowed) > 0 && !allowed[u.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not permitted for this resource"})
			return
		}

		c.Set(actorKey, access.Actor{ID: u.ID, Role: u.Role, Permissions: u.Permissions})
		c.Next()
	}
}

// GetActor returns the actor resolved by JWTAuth for this request.
func GetActor(c *gin.Context) access.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return access.Actor{}
	}
	actor, _ := v.(access.Actor)
	return actor
}
