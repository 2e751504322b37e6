package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lexlens/internal/analyze"
	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

var (
	outJSON     string
	outMD       string
	rulesPath   string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	minConf     float64
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one document for legal clauses and risk",
	Long: `Analyze scans one document (extracted plain text or HTML) to:
- Detect legally significant clauses (obligations, penalties, renewals, ...)
- Score risk across financial, operational, legal, commercial, and regulatory categories
- Suggest mitigations for the risks it flags
- Emit highlight metadata for rendering the document

Example:
  lexlens analyze lease.txt
  lexlens analyze lease.txt --json report.json --md report.md
  lexlens analyze terms.html --rules my-rules.yaml
  lexlens analyze lease.txt --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Engine flags
	analyzeCmd.Flags().StringVar(&rulesPath, "rules", "", "rule catalog YAML (default: built-in catalog)")
	analyzeCmd.Flags().Float64Var(&minConf, "min-confidence", 0, "highlight display threshold (clauses below it still count toward risk)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout (matters only with --llm)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable plain-language LLM summary")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the runtime configuration from defaults and
// flags shared by analyze and batch.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Catalog.Path = rulesPath
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		default:
			return nil, fmt.Errorf("unsupported LLM provider: %s", llmProvider)
		}
	}

	return cfg, nil
}

// loadCatalog loads the configured rule catalog, falling back to the
// built-in one.
func loadCatalog(cfg *model.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return cat, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if minConf > 0 {
		cat.MinDisplayConfidence = minConf
		if err := cat.Validate(); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Catalog:   %s\n", cat.Version)
		fmt.Fprintln(os.Stderr)
	}

	analyzer := analyze.New(cfg, cat)
	report, err := analyzer.AnalyzeFile(ctx, file)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Detected %d clauses\n", report.Summary.Total)
		fmt.Fprintf(os.Stderr, "✓ Overall risk: %s (%.1f/100)\n", report.Analysis.RiskAssessment.OverallLevel, report.Analysis.RiskAssessment.OverallScore)
		fmt.Fprintf(os.Stderr, "✓ Generated %d highlights\n", len(report.Analysis.Highlights))
		fmt.Fprintln(os.Stderr)
	}

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderSummary(report)

	return nil
}
