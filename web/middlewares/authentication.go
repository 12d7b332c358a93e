package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tempora.io/tempora/web/common"
)

const identityKey = "identity"

// Identity carries the validated caller claims. ID is the stable subject id
// (the "oid" claim — the only claim safe to key records on); Email is the
// display identifier ("preferred_username") that approver and reviewer
// assignments are matched against.
type Identity struct {
	ID     string
	Email  string
	Scopes []string // delegated permissions, from "scp"
	Roles  []string // application permissions, from "roles"
}

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid Bearer token and stores the caller's
// Identity in the request context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		token, err := parseJwt(parts[1], jwtSecret)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid token claims"))
			return
		}
		if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token expired"))
			return
		}

		c.Set(identityKey, identityFromClaims(claims))
		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) Identity {
	id := Identity{}
	if oid, ok := claims["oid"].(string); ok {
		id.ID = oid
	}
	if email, ok := claims["preferred_username"].(string); ok {
		id.Email = email
	}
	// Delegated scopes arrive as a single space-separated string.
	if scp, ok := claims["scp"].(string); ok {
		id.Scopes = strings.Fields(scp)
	}
	// Application permissions arrive as an array of role values.
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range roles {
			if s, ok := r.(string); ok {
				id.Roles = append(id.Roles, s)
			}
		}
	}
	return id
}

// CurrentIdentity returns the Identity stored by Authentication.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// CreateJWT mints a token the Authentication middleware accepts. Used by the
// createtoken CLI for local development.
func CreateJWT(jwtSecret []byte, oid, email string, scopes []string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"oid":                oid,
		"preferred_username": email,
		"scp":                strings.Join(scopes, " "),
		"iat":                time.Now().Unix(),
		"exp":                time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
