package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samay2504/GenAI-Resume/internal/config"
	"github.com/samay2504/GenAI-Resume/internal/ingestion"
	"github.com/samay2504/GenAI-Resume/internal/observability"
)

var parseCommand = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a single resume file into a structured JSON record",
	Long: `Extracts text from a PDF, DOCX, DOC, or TXT resume and produces one structured JSON record.

With a Gemini API key (flag or GEMINI_API_KEY), section boundaries, identity fields, and summaries are model-assisted; without one the parser runs fully deterministic pattern extraction.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

var (
	parseConfigPath string
	parseInput      string
	parseOutput     string
	parseSchema     string
	parseAPIKey     string
	parseSummarize  bool
	parseTight      bool
	parseValidate   bool
	parseVerbose    bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	parseCommand.Flags().StringVarP(&parseInput, "input", "i", "", "Path to resume file (may also be given as a positional argument)")
	parseCommand.Flags().StringVarP(&parseOutput, "output", "o", "", "Output path for the JSON record (default: <input>.json)")
	parseCommand.Flags().StringVar(&parseSchema, "schema", "", "Path to the parsed-resume JSON schema (used with --validate)")
	parseCommand.Flags().BoolVar(&parseSummarize, "summarize", false, "Generate model-assisted section summaries")
	parseCommand.Flags().BoolVar(&parseTight, "tight", false, "Slice each section from its heading to the next heading")
	parseCommand.Flags().BoolVar(&parseValidate, "validate", false, "Validate the record against the JSON schema before writing")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed record")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	parseCommand.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if parseConfigPath != "" {
		loadedCfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if parseVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", parseConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = parseInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = parseOutput
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = parseSchema
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = parseAPIKey
	}
	if cmd.Flags().Changed("summarize") {
		cfg.Summarize = parseSummarize
	}
	if cmd.Flags().Changed("tight") {
		cfg.Tight = parseTight
	}
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = parseValidate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}

	// Step 3: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("a resume file must be provided (positional argument, --input, or config)")
	}
	if cfg.Output == "" {
		cfg.Output = strings.TrimSuffix(cfg.Input, filepath.Ext(cfg.Input)) + ".json"
	}

	assembler, cleanup, err := buildAssembler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	text, fileType, err := ingestion.ExtractText(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", cfg.Input, err)
	}

	record, err := assembler.Parse(ctx, text, filepath.Base(cfg.Input), fileType)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cfg.Input, err)
	}

	if cfg.ValidateOutput {
		if err := schemaValidator(cfg.Schema)(record); err != nil {
			return fmt.Errorf("record failed schema validation: %w", err)
		}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintParsedResume(record)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", cfg.Output)
	return nil
}
