package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempora.io/tempora/web/common"
)

// Scope and role names issued by the identity provider for this API.
// Scopes are delegated (user) permissions; roles are application
// permissions granted to daemons acting without a user.
const (
	ScopeRead        = "TimeSheetList.Read"
	ScopeReadWrite   = "TimeSheetList.ReadWrite"
	RoleReadAll      = "TimeSheetList.Read.All"
	RoleReadWriteAll = "TimeSheetList.ReadWrite.All"
)

// RequireRead admits callers holding any read or read-write permission.
func RequireRead() gin.HandlerFunc {
	return requirePermissions(
		[]string{ScopeRead, ScopeReadWrite},
		[]string{RoleReadAll, RoleReadWriteAll},
	)
}

// RequireWrite admits only callers holding a read-write permission.
func RequireWrite() gin.HandlerFunc {
	return requirePermissions(
		[]string{ScopeReadWrite},
		[]string{RoleReadWriteAll},
	)
}

func requirePermissions(scopes, roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if hasAny(identity.Scopes, scopes) || hasAny(identity.Roles, roles) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			common.NewErrorResponse("User or application does not have the required permissions"))
	}
}

func hasAny(held, wanted []string) bool {
	for _, h := range held {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
