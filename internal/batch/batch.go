// Package batch processes directories of resume documents, writing one
// structured record per input file plus a per-file processing report.
// A fault in one document never aborts the rest of the run.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/samay2504/GenAI-Resume/internal/ingestion"
	"github.com/samay2504/GenAI-Resume/internal/parser"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// ReportFileName is the summary record written next to the output files.
const ReportFileName = "processing_report.json"

// defaultWorkers bounds concurrent document parses. Parses share only the
// read-only catalog, so parallelizing across documents is safe.
const defaultWorkers = 4

// Validator checks an assembled record before it is written. A non-nil
// error downgrades the file to StatusFailed.
type Validator func(*types.ParsedResume) error

// Processor runs the extraction pipeline over a directory.
type Processor struct {
	assembler *parser.Assembler
	workers   int
	validate  Validator
}

// Option customizes a Processor.
type Option func(*Processor)

// WithWorkers sets the number of concurrent document parses.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithValidator adds a record validator applied before output is written.
func WithValidator(v Validator) Option {
	return func(p *Processor) { p.validate = v }
}

// NewProcessor creates a Processor around an assembler.
func NewProcessor(assembler *parser.Assembler, opts ...Option) *Processor {
	p := &Processor{
		assembler: assembler,
		workers:   defaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessDirectory parses every supported document in inputDir, writes one
// JSON record per document into outputDir, and writes the processing
// report. Files with unsupported extensions are skipped silently. The
// returned results follow directory listing order. Only directory-level
// I/O failures produce an error; per-file faults are captured in results.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) ([]FileResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !ingestion.SupportedExt(strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		files = append(files, entry.Name())
	}

	results := make([]FileResult, len(files))
	namer := newOutputNamer()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			results[i] = p.processFile(gctx, inputDir, outputDir, name, namer)
			return nil
		})
	}
	_ = g.Wait() // workers record faults in results, never return them

	if err := WriteReport(filepath.Join(outputDir, ReportFileName), results); err != nil {
		return results, err
	}
	return results, nil
}

// processFile runs one document through extraction, assembly, validation,
// and output. Every fault is converted into a FileResult; nothing escapes.
func (p *Processor) processFile(ctx context.Context, inputDir, outputDir, name string, namer *outputNamer) FileResult {
	path := filepath.Join(inputDir, name)

	text, fileType, err := ingestion.ExtractText(path)
	if err != nil {
		return FileResult{FileName: name, Status: StatusError, Error: err.Error()}
	}

	record, err := p.assembler.Parse(ctx, text, name, fileType)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyDocument) {
			return FileResult{FileName: name, Status: StatusFailed, Error: "no data extracted"}
		}
		return FileResult{FileName: name, Status: StatusError, Error: err.Error()}
	}

	if p.validate != nil {
		if err := p.validate(record); err != nil {
			return FileResult{FileName: name, Status: StatusFailed, Error: err.Error()}
		}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return FileResult{FileName: name, Status: StatusError, Error: err.Error()}
	}

	outPath := filepath.Join(outputDir, namer.next(record.Basics.Name)+".json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return FileResult{FileName: name, Status: StatusError, Error: err.Error()}
	}

	return FileResult{
		FileName:      name,
		Status:        StatusSuccess,
		ParsingMethod: record.Metadata.ParsingMethod,
		OutputPath:    outPath,
	}
}
