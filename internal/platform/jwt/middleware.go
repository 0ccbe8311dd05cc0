package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys under which AuthRequired stores the resolved principal.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID uint
	Email  string
}

// AuthRequired returns a Gin middleware function that validates JWT
// bearer tokens and restricts access to authenticated users only.
// The signing secret is injected at construction instead of being read
// from the environment on every request.
func AuthRequired(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted; anything else is a forged header.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		// Refresh and email tokens must not grant API access.
		if scope, _ := claims["scope"].(string); scope != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok || sub <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		email, _ := claims["email"].(string)

		c.Set(ContextUserID, uint(sub))
		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// CurrentUser extracts the principal stored by AuthRequired.
// The boolean is false when the middleware did not run on this route.
func CurrentUser(c *gin.Context) (Principal, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return Principal{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return Principal{}, false
	}
	return Principal{UserID: userID, Email: c.GetString(ContextUserEmail)}, true
}
