package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"okaziyo-api-io/api/internal/auth"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

const identityKey = "identity"

// Auth validates the bearer token and stashes the claims on the
// context for handlers and the role gate.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			util.HandleError(c, http.StatusUnauthorized, errors.New("request does not contain an access token"), "request does not contain an access token")
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, err.Error())
			c.Abort()
			return
		}

		if !auth.IsTokenValid(util.REDIS, tokenString) {
			util.HandleError(c, http.StatusUnauthorized, errors.New("token has been invalidated, please login again"), "token has been invalidated, please login again")
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the authenticated claims stored by Auth, or nil.
func Identity(c *gin.Context) *auth.JWTClaim {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}

	claims, ok := value.(*auth.JWTClaim)
	if !ok {
		return nil
	}

	return claims
}

// RequireRoles runs Auth's identity through the explicit role check
// and rejects the request with the gate's reason before the handler
// runs.
func RequireRoles(permitted ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := auth.Authorize(Identity(c), permitted...)
		if !decision.Allowed {
			util.HandleError(c, http.StatusForbidden, errors.New(decision.Reason), decision.Reason)
			c.Abort()
			return
		}

		c.Next()
	}
}
