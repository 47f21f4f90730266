package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samay2504/GenAI-Resume/internal/config"
	"github.com/samay2504/GenAI-Resume/internal/llm"
	"github.com/samay2504/GenAI-Resume/internal/parser"
	"github.com/samay2504/GenAI-Resume/internal/schemas"
	"github.com/samay2504/GenAI-Resume/internal/types"
)

// buildAssembler constructs the parsing pipeline from merged configuration.
// When no API key is available the client is nil and every assisted path
// silently falls back to deterministic extraction.
func buildAssembler(ctx context.Context, cfg config.Config) (*parser.Assembler, func(), error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	cleanup := func() {}
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		cleanup = func() { _ = client.Close() }
	}

	var opts []parser.Option
	if cfg.Tight {
		opts = append(opts, parser.WithTightSlicing())
	}
	if !cfg.Summarize {
		opts = append(opts, parser.WithoutSummarization())
	}

	return parser.New(client, opts...), cleanup, nil
}

// schemaValidator returns a validator bound to the given schema path, or to
// the bundled schema when the path is empty.
func schemaValidator(schemaPath string) func(*types.ParsedResume) error {
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ParsedResumeSchema)
	}
	return func(record *types.ParsedResume) error {
		return schemas.ValidateRecord(record, schemaPath)
	}
}
