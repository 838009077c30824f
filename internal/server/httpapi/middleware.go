package httpapi

import (
	"net/http"
	"strings"

	"github.com/foundergrid/perkmarket/internal/server/auth"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/gin-gonic/gin"
)

// checkpointKey is where the session guard stores the verified claim set on
// the gin context for downstream handlers.
const checkpointKey = "user_checkpoint"

// ActiveSessionGuard requires a valid bearer token. A missing or non-Bearer
// Authorization header is a 401; a token that fails verification (bad
// signature, malformed, expired — indistinguishable past the verifier) is a
// 403. On success the decoded claims are attached to the context.
func ActiveSessionGuard(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawHeader := c.GetHeader("Authorization")
		if rawHeader == "" || !strings.HasPrefix(rawHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"signal": statusDenied, "reason": "missing authorization credential",
			})
			return
		}

		token := strings.TrimPrefix(rawHeader, "Bearer ")
		claims, err := auth.ParseAccessToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"signal": statusDenied, "reason": "invalid or expired credential",
			})
			return
		}

		c.Set(checkpointKey, claims)
		c.Next()
	}
}

// VerifiedFounderGuard requires the session's role to be founder or admin.
// It trusts the role claim as issued; a role change on the user record takes
// effect only after the current token expires. The perk's own lock flag is
// not consulted — the gate is global.
func VerifiedFounderGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"signal": statusDenied, "reason": "identification required",
			})
			return
		}

		if claims.Role != models.RoleFounder && claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"signal": statusBlocked, "reason": "asset locked, verification required",
			})
			return
		}

		c.Next()
	}
}

// sessionClaims returns the claims attached by ActiveSessionGuard, or nil.
func sessionClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(checkpointKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
