package sections

import (
	"regexp"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/catalog"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// SliceRange returns the document text covered by the half-open line range
// [start, end), clamped to the document, with blank lines trimmed at both
// ends. The heading line itself is excluded by construction: deterministic
// boundaries start on the line after the heading.
func SliceRange(text string, start, end int) string {
	lines := strings.Split(text, "\n")
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// ExtractSection is the tighter alternative to raw boundary slicing: it
// captures from the first line matching one of the kind's heading patterns
// up to (and excluding) the next line matching any heading pattern of any
// other kind in the catalog. Captured lines are trimmed; blank lines are
// dropped. Returns empty content when the heading is never found.
func ExtractSection(cat *catalog.Catalog, text string, kind types.SectionKind) string {
	target := cat.PatternsFor(kind)
	all := cat.All()

	var content []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if matchesAny(target, trimmed) {
			capturing = true
			continue
		}
		if capturing && matchesCatalog(all, trimmed) {
			break
		}
		if capturing && trimmed != "" {
			content = append(content, trimmed)
		}
	}
	return strings.Join(content, "\n")
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func matchesCatalog(pairs []catalog.KindPattern, line string) bool {
	for _, kp := range pairs {
		if kp.Pattern.MatchString(line) {
			return true
		}
	}
	return false
}
