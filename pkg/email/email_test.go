package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appforge/webkit/pkg/email"
)

func TestSendParams_Validate(t *testing.T) {
	valid := email.SendParams{
		SendTo:   "user@example.com",
		Subject:  "Welcome",
		BodyHTML: "<p>hi</p>",
	}

	t.Run("valid params pass", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing recipient", func(t *testing.T) {
		p := valid
		p.SendTo = ""
		assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
	})

	t.Run("malformed recipient", func(t *testing.T) {
		p := valid
		p.SendTo = "not-an-email"
		assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
	})

	t.Run("missing subject", func(t *testing.T) {
		p := valid
		p.Subject = ""
		assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
	})

	t.Run("missing body", func(t *testing.T) {
		p := valid
		p.BodyHTML = ""
		assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
	})
}

func TestNewPostmarkSender(t *testing.T) {
	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		sender, err := email.NewPostmarkSender(valid)
		assert.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("missing tokens", func(t *testing.T) {
		cfg := valid
		cfg.PostmarkServerToken = ""
		_, err := email.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)

		cfg = valid
		cfg.PostmarkAccountToken = ""
		_, err = email.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("invalid sender identity", func(t *testing.T) {
		cfg := valid
		cfg.SenderEmail = "nope"
		_, err := email.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)

		cfg = valid
		cfg.SupportEmail = ""
		_, err = email.NewPostmarkSender(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("must variant panics on bad config", func(t *testing.T) {
		assert.Panics(t, func() {
			email.MustNewPostmarkSender(email.Config{})
		})
	})
}
