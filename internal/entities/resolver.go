// Package entities extracts identity fields (name, email, phone, profile
// links) from resume text, following the same dual-path pattern as section
// boundary resolution: assisted completion-service parse first, regex/NER
// fallback otherwise.
package entities

import (
	"context"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/prompts"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// labelAliases normalizes free-form response labels onto the fixed
// identity fields. Labels are lower-cased and trimmed before lookup;
// anything that does not resolve is dropped, keeping the record's fixed
// key set intact.
var labelAliases = map[string]string{
	"name":             "name",
	"full name":        "name",
	"email":            "email",
	"email address":    "email",
	"phone":            "phone",
	"phone number":     "phone",
	"linkedin":         "linkedin",
	"linkedin profile": "linkedin",
	"github":           "github",
	"github profile":   "github",
	"location":         "location",
	"current position": "current_position",
	"position":         "current_position",
}

// Resolver maps full document text to an IdentityRecord.
type Resolver struct {
	client llm.Client
	tier   llm.ModelTier
	ner    NameRecognizer
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithTier selects the model tier used for the assisted path.
func WithTier(tier llm.ModelTier) ResolverOption {
	return func(r *Resolver) { r.tier = tier }
}

// WithNameRecognizer substitutes the named-entity recognizer used by the
// deterministic fallback. Intended for tests.
func WithNameRecognizer(ner NameRecognizer) ResolverOption {
	return func(r *Resolver) { r.ner = ner }
}

// NewResolver creates a Resolver. A nil client disables the assisted path.
func NewResolver(client llm.Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: client,
		tier:   llm.TierLite,
		ner:    proseRecognizer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the identity record and the method that produced it.
// Assisted-path failures of any kind degrade silently to the deterministic
// fallback. The fallback cannot populate location or current position;
// that asymmetry is intentional and preserved.
func (r *Resolver) Resolve(ctx context.Context, text string) (types.IdentityRecord, types.Method) {
	if r.client != nil {
		if record, ok := r.assisted(ctx, text); ok {
			return record, types.MethodLLM
		}
	}
	return r.fallback(text), types.MethodTraditional
}

// assisted submits the text to the completion service and parses
// "label: value" lines from the response. Returns ok=false when the call
// fails or nothing usable was parsed.
func (r *Resolver) assisted(ctx context.Context, text string) (types.IdentityRecord, bool) {
	template := prompts.MustGet("extraction.json", "extract-identity")
	prompt := prompts.Format(template, map[string]string{"Text": text})

	response, err := r.client.GenerateContent(ctx, prompt, r.tier)
	if err != nil {
		return types.IdentityRecord{}, false
	}

	record := parseIdentityResponse(llm.CleanFences(response))
	return record, !record.IsEmpty()
}

// parseIdentityResponse parses one "label: value" pair per line. Labels
// are normalized through the alias table; lines without a separator or
// with an unknown label are skipped. Later duplicates overwrite.
func parseIdentityResponse(response string) types.IdentityRecord {
	var record types.IdentityRecord
	for _, line := range strings.Split(response, "\n") {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		label = strings.ToLower(strings.TrimSpace(strings.TrimLeft(label, "-*• \t")))
		field, known := labelAliases[label]
		if !known {
			continue
		}
		setField(&record, field, strings.TrimSpace(value))
	}
	return record
}

func setField(record *types.IdentityRecord, field, value string) {
	switch field {
	case "name":
		record.Name = value
	case "email":
		record.Email = value
	case "phone":
		record.Phone = value
	case "linkedin":
		record.LinkedIn = value
	case "github":
		record.GitHub = value
	case "location":
		record.Location = value
	case "current_position":
		record.CurrentPosition = value
	}
}
