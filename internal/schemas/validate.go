// Package schemas validates emitted resume records against the repository's
// JSON Schema definitions.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/samay2504/GenAI-Resume/internal/types"
)

// ParsedResumeSchema is the repository-relative path of the output record
// schema.
const ParsedResumeSchema = "schemas/parsed_resume.schema.json"

// ResolveSchemaPath finds a schema file by trying the path relative to the
// working directory, then one and two levels up. Commands and tests run
// from different directories; the first existing candidate wins. Returns
// "" when none exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidationError aggregates field-level schema violations.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateRecord checks an assembled record against the schema at
// schemaPath (resolved relative to the repository when not absolute).
func ValidateRecord(record *types.ParsedResume, schemaPath string) error {
	resolved := schemaPath
	if !filepath.IsAbs(resolved) {
		if found := ResolveSchemaPath(resolved); found != "" {
			resolved = found
		}
	}

	schemaData, err := os.ReadFile(resolved)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "cannot read schema file", Cause: err}
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "cannot marshal record", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(recordJSON),
	)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "schema validation failed to run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
