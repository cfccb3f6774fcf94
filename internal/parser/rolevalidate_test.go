package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCandidate() RoleCandidate {
	return RoleCandidate{
		Title:            "Joke Bot",
		Description:      "Tells jokes",
		SystemPromptText: "You are a joke bot.",
		Category:         "Creative",
		Tags:             []string{"fun"},
	}
}

func TestValidateStrict(t *testing.T) {
	t.Run("accepts a valid candidate", func(t *testing.T) {
		assert.NoError(t, ValidateStrict(validCandidate()))
	})

	t.Run("accepts empty tags", func(t *testing.T) {
		c := validCandidate()
		c.Tags = nil

		assert.NoError(t, ValidateStrict(c))
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		c := validCandidate()
		c.Title = strings.Repeat("x", 121)

		assert.Error(t, ValidateStrict(c))
	})

	t.Run("rejects overlong description", func(t *testing.T) {
		c := validCandidate()
		c.Description = strings.Repeat("x", 501)

		assert.Error(t, ValidateStrict(c))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		c := validCandidate()
		c.Category = "Mystery"

		assert.Error(t, ValidateStrict(c))
	})

	t.Run("rejects too many tags", func(t *testing.T) {
		c := validCandidate()
		c.Tags = make([]string, 11)
		for i := range c.Tags {
			c.Tags[i] = "t"
		}

		assert.Error(t, ValidateStrict(c))
	})

	t.Run("rejects empty system prompt", func(t *testing.T) {
		c := validCandidate()
		c.SystemPromptText = ""

		assert.Error(t, ValidateStrict(c))
	})
}

func TestMarkWarned(t *testing.T) {
	t.Run("prefixes the title", func(t *testing.T) {
		c := MarkWarned(validCandidate())

		assert.True(t, strings.HasPrefix(c.Title, WarnTitlePrefix))
	})

	t.Run("does not double-prefix", func(t *testing.T) {
		c := MarkWarned(MarkWarned(validCandidate()))

		assert.Equal(t, WarnTitlePrefix+"Joke Bot", c.Title)
	})
}
