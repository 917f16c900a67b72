package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("frontmatter and body", func(t *testing.T) {
		t.Parallel()

		tpl, err := ParseTemplate([]byte("---\nSubject: Hello\n---\nBody text\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", tpl.Metadata["Subject"])
		assert.Equal(t, "Body text\n", tpl.Body)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		t.Parallel()

		tpl, err := ParseTemplate([]byte("Just a body"))
		require.NoError(t, err)
		assert.Empty(t, tpl.Metadata)
		assert.Equal(t, "Just a body", tpl.Body)
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\nSubject: Hello\n"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\n\t: broken\n---\nBody"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()

		tpl, err := ParseTemplate([]byte("---\n---\nBody"))
		require.NoError(t, err)
		assert.Empty(t, tpl.Metadata)
		assert.Equal(t, "Body", tpl.Body)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()

		tpl, err := ParseTemplate([]byte("---\r\nSubject: Hello\r\n---\r\nBody"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", tpl.Metadata["Subject"])
		assert.Equal(t, "Body", tpl.Body)
	})
}
