package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPollOptions(t *testing.T) {
	t.Run("trims and accepts distinct options", func(t *testing.T) {
		trimmed, ok := PollOptions([]string{" Tabs ", "Spaces"})
		assert.True(t, ok)
		assert.Equal(t, []string{"Tabs", "Spaces"}, trimmed)
	})

	t.Run("too few", func(t *testing.T) {
		_, ok := PollOptions([]string{"Only"})
		assert.False(t, ok)
	})

	t.Run("too many", func(t *testing.T) {
		_, ok := PollOptions([]string{"a", "b", "c", "d", "e", "f", "g"})
		assert.False(t, ok)
	})

	t.Run("blank option", func(t *testing.T) {
		_, ok := PollOptions([]string{"a", "   "})
		assert.False(t, ok)
	})

	t.Run("duplicates after trimming", func(t *testing.T) {
		_, ok := PollOptions([]string{"Same", " Same "})
		assert.False(t, ok)
	})
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("alex@example.com"))
	assert.True(t, Email("Alex.Rivera+club@example.co"))
	assert.False(t, Email("not-an-email"))
	assert.False(t, Email("missing@tld"))
}

func TestDisplayName(t *testing.T) {
	assert.True(t, DisplayName("Alex"))
	assert.False(t, DisplayName(" A "))
	assert.False(t, DisplayName(""))
}
