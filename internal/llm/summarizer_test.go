package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeProvider struct {
	resp *SummarizeResponse
	err  error
	last SummarizeRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	f.last = req
	return f.resp, f.err
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Fatal("Expected an error for an unknown provider")
	}
}

func TestNewSummarizer_EmptyProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{}); err == nil {
		t.Fatal("Expected an error when no provider is configured")
	}
}

func TestNewSummarizer_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "openai"}); err == nil {
		t.Fatal("Expected an error without an API key")
	}
}

func TestGenerateSummary(t *testing.T) {
	fake := &fakeProvider{resp: &SummarizeResponse{
		Summary: "Plain words about the lease.",
		Model:   "fake-1",
	}}
	s := &Summarizer{provider: fake, config: Config{Model: "fake-1", MaxTokens: 200}}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !summary.Enabled {
		t.Error("Summary not marked enabled")
	}
	if summary.Provider != "fake" {
		t.Errorf("Provider %q", summary.Provider)
	}
	if !strings.Contains(summary.Text, "lease") {
		t.Errorf("Text %q", summary.Text)
	}
	if fake.last.MaxTokens != 200 {
		t.Errorf("MaxTokens %d not forwarded", fake.last.MaxTokens)
	}
}

func TestGenerateSummary_ProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("backend down")}
	s := &Summarizer{provider: fake}

	if _, err := s.GenerateSummary(context.Background(), sampleReport()); err == nil {
		t.Fatal("Expected the provider error to surface")
	}
}
