package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   float64(42),
		"email": "alice@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func serve(authHeader string, secret string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthRequired(secret)(c)
	return w, c
}

func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := serve(tt.authHeader, "test-secret")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted(), "request should be aborted")
		})
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	const secret = "test-secret"

	t.Run("garbage token", func(t *testing.T) {
		w, _ := serve("Bearer not.a.jwt", secret)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", validClaims())
		w, _ := serve("Bearer "+token, secret)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		token := signToken(t, secret, claims)
		w, _ := serve("Bearer "+token, secret)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token must not grant access", func(t *testing.T) {
		claims := validClaims()
		claims["scope"] = ScopeRefresh
		token := signToken(t, secret, claims)
		w, _ := serve("Bearer "+token, secret)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing sub claim", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "sub")
		token := signToken(t, secret, claims)
		w, _ := serve("Bearer "+token, secret)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthRequired_ValidToken(t *testing.T) {
	const secret = "test-secret"
	token := signToken(t, secret, validClaims())

	w, c := serve("Bearer "+token, secret)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())

	principal, ok := CurrentUser(c)
	require.True(t, ok, "principal should be resolved")
	assert.Equal(t, uint(42), principal.UserID)
	assert.Equal(t, "alice@example.com", principal.Email)
}

func TestCurrentUser_WithoutMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	_, ok := CurrentUser(c)
	assert.False(t, ok, "no principal without the middleware")
}
