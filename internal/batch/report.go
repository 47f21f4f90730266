package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samay2504/GenAI-Resume/internal/types"
)

// Status classifies the outcome of processing one input file.
type Status string

// Per-file outcomes.
const (
	// StatusSuccess means a structured record was written.
	StatusSuccess Status = "success"
	// StatusFailed means the file was readable but yielded no usable data.
	StatusFailed Status = "failed"
	// StatusError means processing hit an unexpected fault.
	StatusError Status = "error"
)

// FileResult is one entry of the batch processing report.
type FileResult struct {
	FileName      string       `json:"file_name"`
	Status        Status       `json:"status"`
	ParsingMethod types.Method `json:"parsing_method,omitempty"`
	OutputPath    string       `json:"output_path,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// WriteReport serializes the per-file results to path as indented JSON.
func WriteReport(path string, results []FileResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
