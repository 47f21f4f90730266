package batch

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// invalidFileChars are characters stripped from candidate-derived file
// names so output stays portable across filesystems.
var invalidFileChars = regexp.MustCompile(`[/*?:"<>|\\]`)

// maxNameLength caps output file stems.
const maxNameLength = 50

// outputNamer derives output file stems from candidate names, numbering
// duplicates. The counter is the only mutable state shared across
// concurrent document parses, so it carries its own lock.
type outputNamer struct {
	mu     sync.Mutex
	counts map[string]int
}

func newOutputNamer() *outputNamer {
	return &outputNamer{counts: make(map[string]int)}
}

// next returns the file stem for a candidate. Unnamed candidates become
// "unknown N"; repeated names gain a numeric suffix.
func (n *outputNamer) next(candidate string) string {
	key := strings.TrimSpace(candidate)
	if key == "" {
		key = "unknown"
	}

	n.mu.Lock()
	n.counts[key]++
	count := n.counts[key]
	n.mu.Unlock()

	stem := key
	switch {
	case key == "unknown":
		stem = fmt.Sprintf("unknown %d", count)
	case count > 1:
		stem = fmt.Sprintf("%s_%d", key, count)
	}
	return sanitizeFileName(stem)
}

// sanitizeFileName removes characters invalid in file names, flattens
// newlines, and limits length.
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.TrimSpace(name)
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return name
}
