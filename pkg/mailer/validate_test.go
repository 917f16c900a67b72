package mailer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() *Message {
	return &Message{
		From:    "Team <team@example.com>",
		To:      []string{"a@x.com"},
		Subject: "Hi",
		Text:    "hello",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid message", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validMessage().Validate())
	})

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.To = nil
		assert.ErrorIs(t, msg.Validate(), ErrNoRecipient)
	})

	t.Run("too many recipients", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.To = nil
		for i := range MaxRecipients + 1 {
			msg.To = append(msg.To, fmt.Sprintf("user%d@example.com", i))
		}
		assert.ErrorIs(t, msg.Validate(), ErrTooManyRecipients)
	})

	t.Run("neither html nor text", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.HTML = ""
		msg.Text = ""
		assert.ErrorIs(t, msg.Validate(), ErrNoContent)
	})

	t.Run("html alone is enough", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.Text = ""
		msg.HTML = "<p>hello</p>"
		require.NoError(t, msg.Validate())
	})

	t.Run("malformed recipient", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.To = []string{"not-an-email"}
		assert.ErrorIs(t, msg.Validate(), ErrInvalidAddress)
	})

	t.Run("malformed cc address", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.CC = []string{"nope"}
		assert.ErrorIs(t, msg.Validate(), ErrInvalidAddress)
	})

	t.Run("malformed reply_to address", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.ReplyTo = StringList{"nope"}
		assert.ErrorIs(t, msg.Validate(), ErrInvalidAddress)
	})

	t.Run("from is not format checked", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.From = "Acme Notifications <noreply@acme.dev>"
		require.NoError(t, msg.Validate())
	})

	t.Run("tag too long", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.Tags = []Tag{{Name: "ok", Value: string(make([]byte, 257))}}
		assert.ErrorIs(t, msg.Validate(), ErrTagTooLong)
	})

	t.Run("tag at the limit", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		long := make([]byte, 256)
		for i := range long {
			long[i] = 'a'
		}
		msg.Tags = []Tag{{Name: string(long), Value: string(long)}}
		require.NoError(t, msg.Validate())
	})
}
