// Package catalog holds the static registry of recognized section kinds and
// their heading-detection patterns.
package catalog

import (
	"regexp"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/types"
)

// KindPattern pairs a section kind with one of its heading patterns.
// Used for full-catalog scans where pattern order across kinds matters.
type KindPattern struct {
	Kind    types.SectionKind
	Pattern *regexp.Regexp
}

// Catalog maps section kinds to ordered heading patterns, most-specific
// first. It is read-only after construction and safe for concurrent use.
type Catalog struct {
	order    []types.SectionKind
	patterns map[types.SectionKind][]*regexp.Regexp
}

// New builds a catalog from ordered kinds and their pattern sources.
// Sources are compiled case-insensitive and anchored at the start of the
// line, matching how headings are detected against trimmed lines.
func New(kinds []types.SectionKind, sources map[types.SectionKind][]string) *Catalog {
	c := &Catalog{
		order:    kinds,
		patterns: make(map[types.SectionKind][]*regexp.Regexp, len(kinds)),
	}
	for _, kind := range kinds {
		for _, src := range sources[kind] {
			c.patterns[kind] = append(c.patterns[kind], regexp.MustCompile("(?i)^"+src))
		}
	}
	return c
}

// defaultCatalog is built once at init; heading vocabulary per kind.
var defaultCatalog = New(
	[]types.SectionKind{
		types.KindEducation,
		types.KindWork,
		types.KindProjects,
		types.KindSkills,
		types.KindLanguages,
		types.KindCertifications,
		types.KindAwards,
	},
	map[types.SectionKind][]string{
		types.KindEducation: {
			`education(?:al)?(?: background)?`,
			`academic (?:background|history|qualification)`,
			`qualification`,
			`degrees?`,
		},
		types.KindWork: {
			`work(?: experience| history)?`,
			`professional(?: experience| background)`,
			`employment(?: history)?`,
			`career(?: history)?`,
		},
		types.KindProjects: {
			`projects?(?:\s+completed)?`,
			`case studies`,
			`portfolio`,
			`implementations?`,
		},
		types.KindSkills: {
			`skills?(?: summary| set)?`,
			`technical(?: skills| proficiencies)?`,
			`core competencies`,
			`expertise`,
		},
		types.KindLanguages: {
			`languages?(?:\s+proficiency)?`,
			`linguistic abilities`,
		},
		types.KindCertifications: {
			`certifications?`,
			`professional certifications?`,
			`licenses?`,
			`accreditations?`,
		},
		types.KindAwards: {
			`awards?(?:\s+and achievements)?`,
			`achievements?`,
			`honors?`,
			`recognitions?`,
		},
	},
)

// Default returns the process-wide catalog of resume section kinds.
func Default() *Catalog {
	return defaultCatalog
}

// Kinds returns the section kinds in registration order.
func (c *Catalog) Kinds() []types.SectionKind {
	out := make([]types.SectionKind, len(c.order))
	copy(out, c.order)
	return out
}

// PatternsFor returns the ordered heading patterns for a kind. Unknown
// kinds return nil.
func (c *Catalog) PatternsFor(kind types.SectionKind) []*regexp.Regexp {
	return c.patterns[kind]
}

// All returns every (kind, pattern) pair in catalog order.
func (c *Catalog) All() []KindPattern {
	var out []KindPattern
	for _, kind := range c.order {
		for _, p := range c.patterns[kind] {
			out = append(out, KindPattern{Kind: kind, Pattern: p})
		}
	}
	return out
}

// Lookup resolves a free-form section label (as returned by the completion
// service) to a known kind. The label is trimmed and lower-cased before
// comparison.
func (c *Catalog) Lookup(label string) (types.SectionKind, bool) {
	kind := types.SectionKind(strings.ToLower(strings.TrimSpace(label)))
	_, ok := c.patterns[kind]
	return kind, ok
}
