package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samay2504/GenAI-Resume/internal/types"
)

func validRecord() *types.ParsedResume {
	return &types.ParsedResume{
		Basics: types.IdentityRecord{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
		Sections: map[types.SectionKind]any{
			types.KindSkills: []string{"Python", "Go"},
			types.KindEducation: []types.EducationEntry{
				{Degree: "BS", Year: "2018"},
				{Year: "2021"},
			},
			types.KindWork: "Software engineer at Example Corp",
		},
		Metadata: types.Metadata{
			ResumeID:      "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			ParsedAt:      "2025-03-14T09:26:53Z",
			FileName:      "resume.txt",
			FileType:      ".txt",
			ParsingMethod: types.MethodTraditional,
			ContentHash:   strings.Repeat("ab", 32),
		},
	}
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ParsedResumeSchema)
	require.NotEmpty(t, path, "bundled schema should resolve from the package directory")

	assert.Empty(t, ResolveSchemaPath("schemas/no_such_schema.json"))
}

func TestValidateRecord_Valid(t *testing.T) {
	assert.NoError(t, ValidateRecord(validRecord(), ParsedResumeSchema))
}

func TestValidateRecord_EmptyIdentityFieldsAllowed(t *testing.T) {
	record := validRecord()
	record.Basics = types.IdentityRecord{}

	assert.NoError(t, ValidateRecord(record, ParsedResumeSchema))
}

func TestValidateRecord_EducationAsRawString(t *testing.T) {
	record := validRecord()
	record.Sections[types.KindEducation] = "Self-taught, no formal schooling"

	assert.NoError(t, ValidateRecord(record, ParsedResumeSchema))
}

func TestValidateRecord_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ParsedResume)
	}{
		{
			name:   "bad parsing method",
			mutate: func(r *types.ParsedResume) { r.Metadata.ParsingMethod = "guesswork" },
		},
		{
			name:   "bad content hash",
			mutate: func(r *types.ParsedResume) { r.Metadata.ContentHash = "not-a-hash" },
		},
		{
			name: "education entry without degree or year",
			mutate: func(r *types.ParsedResume) {
				r.Sections[types.KindEducation] = []types.EducationEntry{{}}
			},
		},
		{
			name: "unknown section kind",
			mutate: func(r *types.ParsedResume) {
				r.Sections["hobbies"] = "whittling"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			err := ValidateRecord(record, ParsedResumeSchema)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateRecord_MissingSchemaFile(t *testing.T) {
	err := ValidateRecord(validRecord(), "schemas/no_such_schema.json")

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}
