package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputNamer_UnnamedCandidates(t *testing.T) {
	namer := newOutputNamer()

	assert.Equal(t, "unknown 1", namer.next(""))
	assert.Equal(t, "unknown 2", namer.next("   "))
	assert.Equal(t, "unknown 3", namer.next(""))
}

func TestOutputNamer_DuplicateNames(t *testing.T) {
	namer := newOutputNamer()

	assert.Equal(t, "Jane Smith", namer.next("Jane Smith"))
	assert.Equal(t, "Jane Smith_2", namer.next("Jane Smith"))
	assert.Equal(t, "Jane Smith_3", namer.next("Jane Smith"))
	assert.Equal(t, "John Doe", namer.next("John Doe"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "A_B_C_", sanitizeFileName(`A/B:C?`))
	assert.Equal(t, "two words", sanitizeFileName("two\nwords"))
	assert.Len(t, sanitizeFileName(strings.Repeat("x", 200)), 50)
	assert.Equal(t, "plain", sanitizeFileName("plain"))
}
