package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authentication(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"oid": identity.ID, "email": identity.Email})
	})
	return r
}

func TestAuthentication_ValidToken(t *testing.T) {
	r := newAuthRouter()

	token, err := CreateJWT(testSecret, "user-1", "user@x.com", []string{ScopeReadWrite}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "user@x.com")
}

func TestAuthentication_Rejections(t *testing.T) {
	r := newAuthRouter()

	expired, err := CreateJWT(testSecret, "user-1", "user@x.com", nil, -time.Hour)
	require.NoError(t, err)
	wrongKey, err := CreateJWT([]byte("other-secret"), "user-1", "user@x.com", nil, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestIdentityFromClaims_Scopes(t *testing.T) {
	identity := identityFromClaims(map[string]interface{}{
		"oid":                "user-1",
		"preferred_username": "user@x.com",
		"scp":                "TimeSheetList.Read TimeSheetList.ReadWrite",
		"roles":              []interface{}{"TimeSheetList.ReadWrite.All"},
	})

	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "user@x.com", identity.Email)
	assert.Equal(t, []string{ScopeRead, ScopeReadWrite}, identity.Scopes)
	assert.Equal(t, []string{RoleReadWriteAll}, identity.Roles)
}
