package structuring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GetModelFunc        func(tier llm.ModelTier) string
	CloseFunc           func() error
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func TestStructure_EmptyContentSkipsExternalCall(t *testing.T) {
	called := false
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			called = true
			return "summary", nil
		},
	}

	s := New(mockClient)
	result := s.Structure(context.Background(), types.KindSkills, "   \n\t  ")

	assert.Equal(t, "", result)
	assert.False(t, called)
}

func TestStructure_Skills(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "mixed delimiters",
			content: "Python, Go | Rust•C++",
			want:    []string{"Python", "Go", "Rust", "C++"},
		},
		{
			name:    "empty tokens dropped",
			content: "Python,, , Go",
			want:    []string{"Python", "Go"},
		},
		{
			name:    "duplicates and order preserved",
			content: "Go, Python, Go",
			want:    []string{"Go", "Python", "Go"},
		},
		{
			name:    "no delimiters",
			content: "Python",
			want:    []string{"Python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Structure(context.Background(), types.KindSkills, tt.content))
		})
	}
}

func TestStructure_Education(t *testing.T) {
	s := New(nil)

	content := "BS Computer Science\nStanford University, 2018\n\n" +
		"Master of Data Science\nBerkeley, 2021"

	result := s.Structure(context.Background(), types.KindEducation, content)

	entries, ok := result.([]types.EducationEntry)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, types.EducationEntry{Degree: "BS", Year: "2018"}, entries[0])
	assert.Equal(t, types.EducationEntry{Degree: "Master", Year: "2021"}, entries[1])
}

func TestStructure_EducationDropsTokenlessParagraphs(t *testing.T) {
	s := New(nil)

	result := s.Structure(context.Background(), types.KindEducation,
		"BS Computer Science, 2018\n\nSome unrelated text")

	entries, ok := result.([]types.EducationEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, types.EducationEntry{Degree: "BS", Year: "2018"}, entries[0])
}

func TestStructure_EducationPartialEntries(t *testing.T) {
	s := New(nil)

	// A paragraph contributes an entry when either token is present.
	result := s.Structure(context.Background(), types.KindEducation,
		"Completed coursework in 2019\n\nPhD candidate")

	entries, ok := result.([]types.EducationEntry)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, types.EducationEntry{Year: "2019"}, entries[0])
	assert.Equal(t, types.EducationEntry{Degree: "PhD"}, entries[1])
}

func TestStructure_EducationFallsBackToRawString(t *testing.T) {
	s := New(nil)

	content := "Self-taught programmer\nNo formal schooling listed"
	result := s.Structure(context.Background(), types.KindEducation, content)

	assert.Equal(t, content, result)
}

func TestStructure_OtherKindsPassThrough(t *testing.T) {
	s := New(nil)

	content := "Built a distributed cache\nLed a team of four"
	assert.Equal(t, content, s.Structure(context.Background(), types.KindWork, content))
	assert.Equal(t, content, s.Structure(context.Background(), types.KindProjects, content))
}

func TestStructure_SummarizationApplied(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "Condensed work history.", nil
		},
	}

	s := New(mockClient)
	result := s.Structure(context.Background(), types.KindWork, "Long rambling work history text")

	assert.Equal(t, "Condensed work history.", result)
}

func TestStructure_SummarizationFailureKeepsOriginal(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{name: "request error", err: errors.New("service unavailable")},
		{name: "blank response", response: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockLLMClient{
				GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
					return tt.response, tt.err
				},
			}

			s := New(mockClient)
			content := "Original section content"
			assert.Equal(t, content, s.Structure(context.Background(), types.KindWork, content))
		})
	}
}
