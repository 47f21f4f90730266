package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samay2504/GenAI-Resume/internal/batch"
	"github.com/samay2504/GenAI-Resume/internal/config"
	"github.com/samay2504/GenAI-Resume/internal/observability"
)

var batchCommand = &cobra.Command{
	Use:   "batch [directory]",
	Short: "Parse every supported resume in a directory",
	Long: `Walks a directory of resumes, parses each supported file concurrently, writes one JSON record per resume into the output directory, and finishes with a processing_report.json describing every file's outcome.

Unsupported file types are skipped silently. A failure in one file never aborts the rest of the batch.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchConfigPath string
	batchInput      string
	batchOutput     string
	batchSchema     string
	batchAPIKey     string
	batchWorkers    int
	batchSummarize  bool
	batchTight      bool
	batchValidate   bool
	batchVerbose    bool
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCommand.Flags().StringVarP(&batchInput, "input", "i", "", "Directory of resume files (may also be given as a positional argument)")
	batchCommand.Flags().StringVarP(&batchOutput, "output", "o", "", "Output directory for JSON records (default: <input>/parsed)")
	batchCommand.Flags().StringVar(&batchSchema, "schema", "", "Path to the parsed-resume JSON schema (used with --validate)")
	batchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent workers (default 4)")
	batchCommand.Flags().BoolVar(&batchSummarize, "summarize", false, "Generate model-assisted section summaries")
	batchCommand.Flags().BoolVar(&batchTight, "tight", false, "Slice each section from its heading to the next heading")
	batchCommand.Flags().BoolVar(&batchValidate, "validate", false, "Validate each record against the JSON schema; failures are reported, not written")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a per-file summary after the run")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if batchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", batchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = batchInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = batchOutput
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = batchSchema
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("summarize") {
		cfg.Summarize = batchSummarize
	}
	if cmd.Flags().Changed("tight") {
		cfg.Tight = batchTight
	}
	if cmd.Flags().Changed("validate") {
		cfg.ValidateOutput = batchValidate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Workers: 4,
	})

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("an input directory must be provided (positional argument, --input, or config)")
	}
	info, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("cannot access input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory; use the parse command for single files", cfg.Input)
	}
	if cfg.Output == "" {
		cfg.Output = filepath.Join(cfg.Input, "parsed")
	}

	assembler, cleanup, err := buildAssembler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var procOpts []batch.Option
	if cfg.Workers > 0 {
		procOpts = append(procOpts, batch.WithWorkers(cfg.Workers))
	}
	if cfg.ValidateOutput {
		procOpts = append(procOpts, batch.WithValidator(schemaValidator(cfg.Schema)))
	}

	processor := batch.NewProcessor(assembler, procOpts...)
	results, err := processor.ProcessDirectory(ctx, cfg.Input, cfg.Output)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintBatchSummary(results)
	}

	var succeeded int
	for _, r := range results {
		if r.Status == batch.StatusSuccess {
			succeeded++
		}
	}
	_, _ = fmt.Fprintf(os.Stdout, "Parsed %d/%d files into %s\n", succeeded, len(results), cfg.Output)
	return nil
}
