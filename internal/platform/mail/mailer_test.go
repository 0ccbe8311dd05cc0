package mail

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
		BaseURL:  "https://contacts.example.com/",
	}
}

func TestMailer_SendConfirmation(t *testing.T) {
	t.Run("builds the confirmation message", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte

		m := NewMailer(testConfig())
		m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		err := m.SendConfirmation("alice@example.com", "alice", "tok123")
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"alice@example.com"}, gotTo)
		assert.Contains(t, string(gotMsg), "Hi alice")
		assert.Contains(t, string(gotMsg), "https://contacts.example.com/api/auth/confirmed_email/tok123",
			"link must not carry a double slash from the trailing base URL slash")
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		m := NewMailer(testConfig())
		m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			return errors.New("connection refused")
		}

		err := m.SendConfirmation("alice@example.com", "alice", "tok123")
		assert.ErrorContains(t, err, "failed to send confirmation mail")
	})
}
