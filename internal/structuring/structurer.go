// Package structuring converts raw section text into its typed value,
// applying per-kind post-processing rules and an optional assisted
// summarization pass.
package structuring

import (
	"context"
	"regexp"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/prompts"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

var (
	// skillDelimiters splits free-form skill listings on commas, pipes,
	// and bullet characters.
	skillDelimiters = regexp.MustCompile(`[,|•]`)
	// degreePattern is the fixed vocabulary of degree tokens.
	degreePattern = regexp.MustCompile(`(?i)(B\.?S\.?|M\.?S\.?|Ph\.?D\.?|Bachelor|Master|Doctor|MBA)`)
	// yearPattern accepts 4-digit years from 1900 through 2099.
	yearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)
)

// Structurer applies per-kind structuring rules. With a non-nil client the
// raw content is first condensed by the completion service; a failed
// summarization never surfaces; the original content is used unchanged.
type Structurer struct {
	client llm.Client
	tier   llm.ModelTier
}

// Option customizes a Structurer.
type Option func(*Structurer)

// WithTier selects the model tier used for summarization.
func WithTier(tier llm.ModelTier) Option {
	return func(s *Structurer) { s.tier = tier }
}

// New creates a Structurer. A nil client disables summarization.
func New(client llm.Client, opts ...Option) *Structurer {
	s := &Structurer{
		client: client,
		tier:   llm.TierLite,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Structure converts one section's raw content into its structured value:
// an ordered []string for skills, []types.EducationEntry for education,
// and a plain string for every other kind. Empty content short-circuits to
// an empty string without invoking any external call.
func (s *Structurer) Structure(ctx context.Context, kind types.SectionKind, content string) any {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	content = s.summarize(ctx, kind, content)

	switch kind {
	case types.KindSkills:
		return splitSkills(content)
	case types.KindEducation:
		return structureEducation(content)
	default:
		return content
	}
}

// summarize runs the optional assisted condensation pass. Any failure
// returns the original content.
func (s *Structurer) summarize(ctx context.Context, kind types.SectionKind, content string) string {
	if s.client == nil {
		return content
	}

	template := prompts.MustGet("extraction.json", "summarize-section")
	prompt := prompts.Format(template, map[string]string{
		"SectionName": string(kind),
		"Content":     content,
	})

	summary, err := s.client.GenerateContent(ctx, prompt, s.tier)
	if err != nil {
		return content
	}
	summary = strings.TrimSpace(llm.CleanFences(summary))
	if summary == "" {
		return content
	}
	return summary
}

// splitSkills tokenizes on comma/pipe/bullet delimiters, trims each token,
// and drops empties. Order of appearance is kept; duplicates are not
// removed.
func splitSkills(content string) []string {
	var skills []string
	for _, token := range skillDelimiters.Split(content, -1) {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// structureEducation splits content into blank-line-separated paragraphs
// and pulls a degree token and a 4-digit year from each. A paragraph
// contributes an entry only when at least one of the two was found. When
// no paragraph contributes anything the raw trimmed content is returned as
// a plain string instead, so a detected section is never silently dropped.
func structureEducation(content string) any {
	var entries []types.EducationEntry
	for _, paragraph := range strings.Split(content, "\n\n") {
		entry := types.EducationEntry{
			Degree: degreePattern.FindString(paragraph),
			Year:   yearPattern.FindString(paragraph),
		}
		if entry != (types.EducationEntry{}) {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return strings.TrimSpace(content)
	}
	return entries
}
