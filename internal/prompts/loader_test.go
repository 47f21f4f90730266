package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"identify-sections", "extract-identity", "summarize-section"} {
		prompt, err := Get("extraction.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt, key)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("extraction.json", "does-not-exist") })
	assert.NotPanics(t, func() { MustGet("extraction.json", "identify-sections") })
}

func TestFormat(t *testing.T) {
	template := "Section name: {{.SectionName}}\n\nContent:\n{{.Content}}"

	result := Format(template, map[string]string{
		"SectionName": "skills",
		"Content":     "Python, Go",
	})

	assert.Equal(t, "Section name: skills\n\nContent:\nPython, Go", result)
}

func TestFormat_UnmatchedPlaceholdersLeftAlone(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "value"})
	assert.Equal(t, "value and {{.Unknown}}", result)
}

func TestPromptsCarryTextPlaceholder(t *testing.T) {
	for _, key := range []string{"identify-sections", "extract-identity"} {
		prompt := MustGet("extraction.json", key)
		assert.True(t, strings.Contains(prompt, "{{.Text}}"), key)
	}
}
