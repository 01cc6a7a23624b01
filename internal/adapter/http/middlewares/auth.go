package middlewares

import (
	"net/http"
	"strings"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/token"
	"github.com/rezaesmaeili3562-spec/login.b/pkg"

	"github.com/gin-gonic/gin"
)

// ContextKeyClaims is where the middleware stores the verified claims.
const ContextKeyClaims = "claims"

var (
	errMissingToken = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
)

// RequireAdmin guards the admin routes with a bearer token carrying the
// admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := token.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if claims.Role != string(entities.UserRoleAdmin) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}
