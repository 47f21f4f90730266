package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samay2504/GenAI-Resume/internal/catalog"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

func TestParseBoundaryLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want boundaryLine
		ok   bool
	}{
		{
			name: "well formed",
			line: "education: 5 12 90",
			want: boundaryLine{label: "education", start: 5, end: 12, confidence: 0.9},
			ok:   true,
		},
		{
			name: "prose around the numbers",
			line: "work experience: lines 14 to 30, confidence 85",
			want: boundaryLine{label: "work experience", start: 14, end: 30, confidence: 0.85},
			ok:   true,
		},
		{
			name: "extra integers ignored",
			line: "skills: 31 40 95 7",
			want: boundaryLine{label: "skills", start: 31, end: 40, confidence: 0.95},
			ok:   true,
		},
		{
			name: "confidence clamped to one",
			line: "skills: 1 2 250",
			want: boundaryLine{label: "skills", start: 1, end: 2, confidence: 1},
			ok:   true,
		},
		{name: "no colon", line: "education 5 12 90", ok: false},
		{name: "too few integers", line: "education: 5 12", ok: false},
		{name: "no integers", line: "education: not found", ok: false},
		{name: "empty", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBoundaryLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseBoundaryResponse(t *testing.T) {
	cat := catalog.Default()

	response := "education: 5 12 90\n" +
		"interpretive dance: 1 3 99\n" + // unknown label: skipped
		"garbage line without structure\n" +
		"skills: 20 28 80\n" +
		"skills: 30 40 70" // duplicate label overwrites

	boundaries := parseBoundaryResponse(cat, response)

	require.Len(t, boundaries, 2)
	assert.Equal(t, types.SectionBoundary{
		Kind: types.KindEducation, Start: 5, End: 12, Confidence: 0.9,
	}, boundaries[types.KindEducation])
	assert.Equal(t, types.SectionBoundary{
		Kind: types.KindSkills, Start: 30, End: 40, Confidence: 0.7,
	}, boundaries[types.KindSkills])
}

func TestParseBoundaryResponse_NothingUsable(t *testing.T) {
	cat := catalog.Default()

	assert.Empty(t, parseBoundaryResponse(cat, ""))
	assert.Empty(t, parseBoundaryResponse(cat, "I could not find any sections."))
	assert.Empty(t, parseBoundaryResponse(cat, "summary: 1 10 50"))
}
