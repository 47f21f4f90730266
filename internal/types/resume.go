// Package types defines the shared data model for resume extraction.
package types

// SectionKind identifies a named category of resume content.
// The set of kinds is fixed at process start.
type SectionKind string

// Recognized section kinds.
const (
	KindEducation      SectionKind = "education"
	KindWork           SectionKind = "work"
	KindProjects       SectionKind = "projects"
	KindSkills         SectionKind = "skills"
	KindLanguages      SectionKind = "languages"
	KindCertifications SectionKind = "certifications"
	KindAwards         SectionKind = "awards"
)

// Method records which extraction path produced a result.
type Method string

// Extraction methods.
const (
	// MethodLLM means the assisted completion-service path produced the result.
	MethodLLM Method = "llm"
	// MethodTraditional means the deterministic regex/NER path produced it.
	MethodTraditional Method = "traditional"
)

// SectionBoundary locates one section's content in the source text as a
// half-open line range [Start, End), plus a confidence score in [0, 1].
// At most one boundary exists per kind per document.
type SectionBoundary struct {
	Kind       SectionKind `json:"kind"`
	Start      int         `json:"start"`
	End        int         `json:"end"`
	Confidence float64     `json:"confidence"`
}

// EducationEntry is one structured education record. Both fields are
// optional but at least one is always set; paragraphs yielding neither are
// not recorded.
type EducationEntry struct {
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
}

// IdentityRecord holds the fixed identity fields extracted from a resume.
// Every field is always serialized; a field the extractor could not fill is
// an empty string, never omitted.
type IdentityRecord struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	LinkedIn        string `json:"linkedin"`
	GitHub          string `json:"github"`
	Location        string `json:"location"`
	CurrentPosition string `json:"current_position"`
}

// IsEmpty reports whether no identity field was filled.
func (r IdentityRecord) IsEmpty() bool {
	return r == IdentityRecord{}
}

// Metadata describes how and when a resume was parsed.
type Metadata struct {
	ResumeID string `json:"resume_id"`
	ParsedAt string `json:"parsed_date"` // RFC3339
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	// ParsingMethod reflects the path that produced the section boundaries
	// actually used, not the path that was merely attempted.
	ParsingMethod Method `json:"parsing_method"`
	ContentHash   string `json:"content_hash"`
}

// ParsedResume is the single structured record produced per input document.
// It is immutable after assembly.
//
// Section values are polymorphic: []string for skills, []EducationEntry for
// education (or a plain string when no entry could be structured), and a
// plain string for every other kind. Kinds whose raw content was empty are
// omitted from Sections entirely.
type ParsedResume struct {
	Basics   IdentityRecord      `json:"basics"`
	Sections map[SectionKind]any `json:"sections"`
	Metadata Metadata            `json:"metadata"`
}
