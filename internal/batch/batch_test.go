package batch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samay2504/GenAI-Resume/internal/parser"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

const resumeA = "Alice Example\n" +
	"alice@example.com\n" +
	"\n" +
	"Skills\n" +
	"Python, Go"

const resumeB = "Bob Example\n" +
	"bob@example.com\n" +
	"\n" +
	"Education\n" +
	"BS Mathematics, 2019"

func writeInputDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func resultFor(t *testing.T, results []FileResult, name string) FileResult {
	t.Helper()
	for _, r := range results {
		if r.FileName == name {
			return r
		}
	}
	t.Fatalf("no result for %s", name)
	return FileResult{}
}

func TestProcessDirectory(t *testing.T) {
	inputDir := writeInputDir(t, map[string]string{
		"a.txt":     resumeA,
		"b.txt":     resumeB,
		"empty.txt": "   \n\n ",
		"photo.png": "not a resume",
	})
	outputDir := filepath.Join(t.TempDir(), "parsed")

	processor := NewProcessor(parser.New(nil))
	results, err := processor.ProcessDirectory(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	// The unsupported .png is skipped without a result entry.
	require.Len(t, results, 3)

	a := resultFor(t, results, "a.txt")
	assert.Equal(t, StatusSuccess, a.Status)
	assert.Equal(t, types.MethodTraditional, a.ParsingMethod)
	assert.FileExists(t, a.OutputPath)

	b := resultFor(t, results, "b.txt")
	assert.Equal(t, StatusSuccess, b.Status)
	assert.FileExists(t, b.OutputPath)

	empty := resultFor(t, results, "empty.txt")
	assert.Equal(t, StatusFailed, empty.Status)
	assert.Equal(t, "no data extracted", empty.Error)
	assert.Empty(t, empty.OutputPath)

	// Written records round-trip as the documented shape.
	data, err := os.ReadFile(a.OutputPath)
	require.NoError(t, err)
	var record types.ParsedResume
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "alice@example.com", record.Basics.Email)

	// The report sits next to the output files and mirrors the results.
	reportData, err := os.ReadFile(filepath.Join(outputDir, ReportFileName))
	require.NoError(t, err)
	var report []FileResult
	require.NoError(t, json.Unmarshal(reportData, &report))
	assert.Equal(t, results, report)
}

func TestProcessDirectory_ValidatorDowngradesToFailed(t *testing.T) {
	inputDir := writeInputDir(t, map[string]string{"a.txt": resumeA})
	outputDir := filepath.Join(t.TempDir(), "parsed")

	processor := NewProcessor(parser.New(nil), WithValidator(func(*types.ParsedResume) error {
		return errors.New("record rejected")
	}))
	results, err := processor.ProcessDirectory(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Equal(t, "record rejected", results[0].Error)
	assert.Empty(t, results[0].OutputPath)
}

func TestProcessDirectory_MissingInputDir(t *testing.T) {
	processor := NewProcessor(parser.New(nil))

	_, err := processor.ProcessDirectory(context.Background(),
		filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(t, err)
}

func TestProcessDirectory_EmptyDir(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "parsed")

	processor := NewProcessor(parser.New(nil))
	results, err := processor.ProcessDirectory(context.Background(), t.TempDir(), outputDir)
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.FileExists(t, filepath.Join(outputDir, ReportFileName))
}
