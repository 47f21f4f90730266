// Package sections resolves section boundaries in linearized resume text,
// trying an assisted completion-service path first and falling back to a
// deterministic heading scan.
package sections

import (
	"context"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/catalog"
	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/prompts"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// fallbackConfidence is assigned to every boundary found by the
// deterministic heading scan.
const fallbackConfidence = 0.7

// Resolver maps full document text to section boundaries.
type Resolver struct {
	catalog *catalog.Catalog
	client  llm.Client
	tier    llm.ModelTier
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithCatalog substitutes the section catalog. Intended for tests.
func WithCatalog(c *catalog.Catalog) ResolverOption {
	return func(r *Resolver) { r.catalog = c }
}

// WithTier selects the model tier used for the assisted path.
func WithTier(tier llm.ModelTier) ResolverOption {
	return func(r *Resolver) { r.tier = tier }
}

// NewResolver creates a Resolver. A nil client disables the assisted path
// entirely; resolution is then deterministic and reproducible.
func NewResolver(client llm.Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		catalog: catalog.Default(),
		client:  client,
		tier:    llm.TierStandard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns at most one boundary per section kind, plus the method
// that actually produced them. The assisted path is tried first; any
// failure there (request error, malformed response, nothing parseable)
// silently selects the deterministic scan. Errors never escape.
func (r *Resolver) Resolve(ctx context.Context, text string) (map[types.SectionKind]types.SectionBoundary, types.Method) {
	if r.client != nil {
		if boundaries := r.assisted(ctx, text); len(boundaries) > 0 {
			return boundaries, types.MethodLLM
		}
	}
	return r.scan(text), types.MethodTraditional
}

// assisted submits the text to the completion service and parses the
// response defensively. An empty map signals that fallback is required.
func (r *Resolver) assisted(ctx context.Context, text string) map[types.SectionKind]types.SectionBoundary {
	template := prompts.MustGet("extraction.json", "identify-sections")
	prompt := prompts.Format(template, map[string]string{"Text": text})

	response, err := r.client.GenerateContent(ctx, prompt, r.tier)
	if err != nil {
		return nil
	}
	return parseBoundaryResponse(r.catalog, llm.CleanFences(response))
}

// scan is the deterministic fallback: each trimmed line is matched against
// every kind's heading patterns in catalog order. A match records a
// boundary from the line after the heading to the end of the document;
// later matches for the same kind overwrite earlier ones, so the last
// matching heading wins. Kinds are not deduplicated against the line:
// overlapping patterns may assign the same line to several kinds.
//
// The "to end of document" end bound is deliberate: stopping at the next
// heading would need lookahead across the whole catalog. Callers that need
// a tight range use ExtractSection instead of the raw boundary.
func (r *Resolver) scan(text string) map[types.SectionKind]types.SectionBoundary {
	lines := strings.Split(text, "\n")
	boundaries := make(map[types.SectionKind]types.SectionBoundary)

	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, kind := range r.catalog.Kinds() {
			for _, pattern := range r.catalog.PatternsFor(kind) {
				if pattern.MatchString(trimmed) {
					boundaries[kind] = types.SectionBoundary{
						Kind:       kind,
						Start:      idx + 1,
						End:        len(lines),
						Confidence: fallbackConfidence,
					}
					break
				}
			}
		}
	}
	return boundaries
}
