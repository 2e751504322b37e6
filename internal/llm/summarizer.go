package llm

import (
	"context"
	"fmt"

	"lexlens/internal/model"
)

// Summarizer wraps a provider and produces the PlainSummary attached
// to reports.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider.
// Returns an error for unknown providers; an empty provider name means
// summarization is disabled and callers should not construct one.
func NewSummarizer(config Config) (*Summarizer, error) {
	switch config.Provider {
	case "openai":
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		return &Summarizer{provider: p, config: config}, nil
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}

// GenerateSummary produces the plain-language summary for a report.
// Errors are returned to the caller, which treats them as warnings;
// the analysis itself is already complete and unaffected.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.PlainSummary, error) {
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.PlainSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Summary,
	}, nil
}
