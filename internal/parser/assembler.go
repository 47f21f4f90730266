// Package parser assembles one structured record per resume document,
// orchestrating boundary resolution, identity extraction, and per-section
// structuring.
package parser

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samay2504/GenAI-Resume/internal/catalog"
	"github.com/samay2504/GenAI-Resume/internal/entities"
	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/sections"
	"github.com/samay2504/GenAI-Resume/internal/structuring"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// ErrEmptyDocument is returned when a document yields no text to parse.
var ErrEmptyDocument = errors.New("document produced no text")

// Assembler runs the full extraction pipeline for a single document.
// Documents are processed start-to-finish; the only shared state between
// parses is the read-only section catalog, so one Assembler may be used
// from multiple goroutines.
type Assembler struct {
	catalog    *catalog.Catalog
	boundaries *sections.Resolver
	identity   *entities.Resolver
	structurer *structuring.Structurer
	tightSlice bool
	now        func() time.Time
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithTightSlicing makes the assembler slice section content with the
// heading-to-next-heading scan instead of the raw boundary line range.
// Raw deterministic boundaries always run to the end of the document;
// callers that need non-overlapping section text enable this.
func WithTightSlicing() Option {
	return func(a *Assembler) { a.tightSlice = true }
}

// WithoutSummarization keeps the assisted client for boundary and identity
// resolution but skips the per-section condensation pass.
func WithoutSummarization() Option {
	return func(a *Assembler) { a.structurer = structuring.New(nil) }
}

// WithClock substitutes the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// New creates an Assembler. A nil client disables every assisted path,
// yielding fully deterministic parses.
func New(client llm.Client, opts ...Option) *Assembler {
	a := &Assembler{
		catalog:    catalog.Default(),
		boundaries: sections.NewResolver(client),
		identity:   entities.NewResolver(client),
		structurer: structuring.New(client),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Parse produces the structured record for one document. fileName and
// fileType are carried into the metadata verbatim. The returned record is
// complete: basics always holds every identity field, and sections holds
// an entry for each detected boundary whose raw content was non-empty.
func (a *Assembler) Parse(ctx context.Context, text, fileName, fileType string) (*types.ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	boundaries, method := a.boundaries.Resolve(ctx, text)
	basics, _ := a.identity.Resolve(ctx, text)

	structured := make(map[types.SectionKind]any)
	for _, kind := range a.catalog.Kinds() {
		boundary, found := boundaries[kind]
		if !found {
			continue
		}

		var content string
		if a.tightSlice {
			content = sections.ExtractSection(a.catalog, text, kind)
		} else {
			content = sections.SliceRange(text, boundary.Start, boundary.End)
		}
		if content == "" {
			continue
		}

		structured[kind] = a.structurer.Structure(ctx, kind, content)
	}

	hash := sha256.Sum256([]byte(text))
	return &types.ParsedResume{
		Basics:   basics,
		Sections: structured,
		Metadata: types.Metadata{
			ResumeID:      uuid.NewString(),
			ParsedAt:      a.now().UTC().Format(time.RFC3339),
			FileName:      fileName,
			FileType:      fileType,
			ParsingMethod: method,
			ContentHash:   hex.EncodeToString(hash[:]),
		},
	}, nil
}
