package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token scopes carried in the "scope" claim. Access tokens carry no
// scope; refresh and email-confirmation tokens must never be accepted
// in each other's place.
const (
	ScopeRefresh = "refresh_token"
	ScopeEmail   = "email_token"
)

// Generator defines the interface for JWT token issuance and parsing.
type Generator interface {
	// GenerateAccessToken creates a signed short-lived access token.
	GenerateAccessToken(userID uint, email string) (string, error)
	// GenerateRefreshToken creates a signed refresh token with a unique jti.
	GenerateRefreshToken(userID uint, email string) (string, error)
	// GenerateEmailToken creates a signed email-confirmation token.
	GenerateEmailToken(email string) (string, error)
	// ParseRefreshToken validates a refresh token and returns the email claim.
	ParseRefreshToken(token string) (string, error)
	// ParseEmailToken validates an email-confirmation token and returns the email claim.
	ParseEmailToken(token string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	emailTTL   time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and
// per-scope expiration durations.
func NewGenerator(secret string, accessTTL, refreshTTL, emailTTL time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		emailTTL:   emailTTL,
	}
}

// GenerateAccessToken creates a signed JWT with standard claims.
func (g *generator) GenerateAccessToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(g.accessTTL).Unix(),
	}
	return g.sign(claims)
}

// GenerateRefreshToken creates a signed refresh token. A uuid jti claim
// makes every issued token distinct even within the same second, so
// rotation always produces a new stored value.
func (g *generator) GenerateRefreshToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"scope": ScopeRefresh,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(g.refreshTTL).Unix(),
	}
	return g.sign(claims)
}

// GenerateEmailToken creates a signed token embedded in the mailed
// confirmation link.
func (g *generator) GenerateEmailToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"scope": ScopeEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(g.emailTTL).Unix(),
	}
	return g.sign(claims)
}

// ParseRefreshToken validates signature, expiry and scope, returning
// the email claim of a valid refresh token.
func (g *generator) ParseRefreshToken(token string) (string, error) {
	return g.parseScoped(token, ScopeRefresh)
}

// ParseEmailToken validates signature, expiry and scope, returning the
// email claim of a valid email-confirmation token.
func (g *generator) ParseEmailToken(token string) (string, error) {
	return g.parseScoped(token, ScopeEmail)
}

func (g *generator) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (g *generator) parseScoped(tokenStr, wantScope string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	if scope, _ := claims["scope"].(string); scope != wantScope {
		return "", fmt.Errorf("invalid token scope")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("token has no email claim")
	}
	return email, nil
}
