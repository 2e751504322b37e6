package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lexlens/internal/analyze"
	"lexlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple documents from a list file in parallel",
	Long: `Batch analyzes multiple documents concurrently:
- Read document paths from the input file (one per line, # for comments)
- Analyze documents in parallel with a configurable worker count
- Each analysis is independent; workers share only the read-only rule catalog
- Write one JSON and one Markdown report per document

Example:
  lexlens batch documents.txt
  lexlens batch documents.txt --concurrency 8 --output-dir ./reports
  lexlens batch documents.txt --rules my-rules.yaml --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./lexlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&rulesPath, "rules", "", "rule catalog YAML (default: built-in catalog)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable plain-language LLM summaries")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  LexLens Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "  Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Catalog:    %s\n", cat.Version)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer := analyze.New(cfg, cat)
	processor := worker.NewBatchProcessor(analyzer, cfg.Concurrency.Workers)

	start := time.Now()
	results, err := processor.ProcessListFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}
		succeeded++

		base := reportBaseName(result.Path)
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s -> %s (%s)\n", result.Path, jsonPath, result.Report.Analysis.RiskAssessment.OverallLevel)
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d documents in %v: %d succeeded, %d failed\n",
		len(results), time.Since(start).Round(time.Millisecond), succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// reportBaseName derives an output file base name from a document path.
func reportBaseName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
