// Package avatar generates default avatar image URLs for new users.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Gravatar builds avatar URLs from email addresses following the
// Gravatar convention: an md5 of the trimmed, lowercased address.
type Gravatar struct {
	size int
}

// NewGravatar creates a Gravatar generator producing images of the
// given pixel size. Size 0 falls back to 250.
func NewGravatar(size int) *Gravatar {
	if size <= 0 {
		size = 250
	}
	return &Gravatar{size: size}
}

// Generate returns the avatar URL for the email address. An empty
// email is an error so callers never persist a URL for nobody.
func (g *Gravatar) Generate(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("empty email")
	}
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=identicon",
		hex.EncodeToString(sum[:]), g.size), nil
}
