// Package llm generates optional plain-language summaries of an
// analysis. Summaries are produced after detection, scoring, and
// highlighting and never feed back into them: a summarizer failure
// degrades to a warning, never to a failed analysis.
package llm

import (
	"context"
	"fmt"
	"strings"

	"lexlens/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a plain-language summary of the report.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest carries the report to summarize.
type SummarizeRequest struct {
	Report model.Report

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model is the provider-specific model name.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse is the provider output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds summarizer configuration.
type Config struct {
	Provider          string // "openai" or "" (disabled)
	Model             string
	APIKey            string
	BaseURL           string
	TimeoutSeconds    int
	MaxTokens         int
	RequestsPerSecond float64
}

// ConfigFromModel adapts the runtime LLM configuration.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:          cfg.Provider,
		Model:             cfg.Model,
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		TimeoutSeconds:    cfg.TimeoutSeconds,
		MaxTokens:         cfg.MaxTokens,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}
}

// BuildPrompt constructs the default summarization prompt. The model
// only ever restates what the rule engine already found; it is told
// not to invent clauses or risks of its own.
func BuildPrompt(report model.Report) string {
	a := &report.Analysis
	ra := &a.RiskAssessment

	var b strings.Builder
	b.WriteString(`You are explaining a rule-based legal document analysis to a non-lawyer.

RULES:
1. Only describe clauses and risks listed below. Do not invent findings.
2. Do not give legal advice; describe what the document says and what was flagged.
3. Keep it to 4-6 plain sentences.

`)
	fmt.Fprintf(&b, "Document: %s\nOverall risk: %s (%.1f/100)\n\nFlagged clauses:\n", report.Source, ra.OverallLevel, ra.OverallScore)
	for i, c := range a.Clauses {
		if i >= 10 {
			fmt.Fprintf(&b, "- ...and %d more\n", len(a.Clauses)-i)
			break
		}
		fmt.Fprintf(&b, "- %s (confidence %.2f): %s\n", c.Category, c.Confidence, c.Text)
	}
	if len(ra.Recommendations) > 0 {
		b.WriteString("\nSuggested mitigations:\n")
		for _, rec := range ra.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}
	return b.String()
}
