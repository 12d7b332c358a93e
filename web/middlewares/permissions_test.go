package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPermissionRouter(identity Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(identityKey, identity)
	})
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/read", RequireRead(), ok)
	r.POST("/write", RequireWrite(), ok)
	return r
}

func TestRequirePermissions(t *testing.T) {
	tests := []struct {
		name         string
		identity     Identity
		method       string
		path         string
		expectedCode int
	}{
		{"read scope can read", Identity{Scopes: []string{ScopeRead}}, http.MethodGet, "/read", http.StatusOK},
		{"read scope cannot write", Identity{Scopes: []string{ScopeRead}}, http.MethodPost, "/write", http.StatusForbidden},
		{"readwrite scope can read", Identity{Scopes: []string{ScopeReadWrite}}, http.MethodGet, "/read", http.StatusOK},
		{"readwrite scope can write", Identity{Scopes: []string{ScopeReadWrite}}, http.MethodPost, "/write", http.StatusOK},
		{"application read role can read", Identity{Roles: []string{RoleReadAll}}, http.MethodGet, "/read", http.StatusOK},
		{"application read role cannot write", Identity{Roles: []string{RoleReadAll}}, http.MethodPost, "/write", http.StatusForbidden},
		{"application readwrite role can write", Identity{Roles: []string{RoleReadWriteAll}}, http.MethodPost, "/write", http.StatusOK},
		{"no permissions", Identity{}, http.MethodGet, "/read", http.StatusForbidden},
		{"unrelated scope", Identity{Scopes: []string{"Calendar.Read"}}, http.MethodGet, "/read", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPermissionRouter(tt.identity)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
