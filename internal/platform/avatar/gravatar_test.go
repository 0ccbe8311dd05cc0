package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravatar_Generate(t *testing.T) {
	g := NewGravatar(250)

	t.Run("builds the expected URL", func(t *testing.T) {
		// md5("alice@example.com")
		url, err := g.Generate("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=250&d=identicon", url)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		a, err := g.Generate("alice@example.com")
		require.NoError(t, err)
		b, err := g.Generate("  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, a, b, "address normalization must not change the hash")
	})

	t.Run("empty email is an error", func(t *testing.T) {
		_, err := g.Generate("   ")
		assert.Error(t, err)
	})

	t.Run("zero size falls back to default", func(t *testing.T) {
		url, err := NewGravatar(0).Generate("alice@example.com")
		require.NoError(t, err)
		assert.Contains(t, url, "s=250")
	})
}
