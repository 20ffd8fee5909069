package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/application/token"
	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
)

const principalKey = "auth.principal"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Role   user.Role
}

// Authenticate verifies a bearer token when one is present and loads the
// principal into the request context. Requests without a token pass through
// unauthenticated; protected routes layer RequireAuth on top.
func Authenticate(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := issuer.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "JWT token has expired or is invalid, please login to obtain a new one",
			})
			return
		}

		c.Set(principalKey, Principal{UserID: claims.UserID, Role: user.Role(claims.Role)})
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose principal lacks one of the
// allowed roles.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// PrincipalFrom extracts the authenticated principal, if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
