package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

const leaseText = "The Tenant shall pay a penalty of $500 for late rent and this agreement shall automatically renew annually."

func newAnalyzer(t *testing.T, mutate func(*model.Config)) *Analyzer {
	t.Helper()
	cfg := model.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	return New(cfg, catalog.Default())
}

func TestAnalyze_LeaseScenario(t *testing.T) {
	a := newAnalyzer(t, nil)

	analysis, err := a.Analyze(leaseText, model.PageMap{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(analysis.Clauses) == 0 {
		t.Fatal("Expected clauses for the lease sentence")
	}
	categories := make(map[model.ClauseCategory]bool)
	for _, c := range analysis.Clauses {
		categories[c.Category] = true
	}
	if !categories[model.CategoryPenalty] || !categories[model.CategoryAutoRenewal] {
		t.Errorf("Expected penalty and auto_renewal among %v", categories)
	}

	if analysis.RiskAssessment.OverallLevel == model.LevelMinimal {
		t.Errorf("Overall level %s, want above minimal for penalty text", analysis.RiskAssessment.OverallLevel)
	}
	if analysis.RiskAssessment.CategoryScores[model.RiskFinancial] == 0 {
		t.Error("Expected a non-zero financial score")
	}
	if len(analysis.Highlights) == 0 {
		t.Error("Expected highlights for detected clauses")
	}
}

func TestAnalyze_DocumentLevelRiskWithoutClauses(t *testing.T) {
	a := newAnalyzer(t, nil)

	// Waiver language that no clause rule matches still raises risk
	// through the document-level scan.
	analysis, err := a.Analyze("The customer waives all claims against the provider.", model.PageMap{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(analysis.Clauses) != 0 {
		t.Fatalf("Expected no clauses, got %+v", analysis.Clauses)
	}
	if len(analysis.RiskAssessment.Indicators) == 0 {
		t.Fatal("Expected document-level indicators for waiver language")
	}
	for _, ind := range analysis.RiskAssessment.Indicators {
		if ind.SourceClauseID != "" {
			t.Errorf("Indicator carries clause id %q with no clauses detected", ind.SourceClauseID)
		}
	}
	if analysis.RiskAssessment.OverallScore == 0 {
		t.Error("Expected a non-zero overall score")
	}
	if len(analysis.Highlights) != 0 {
		t.Errorf("Document-level risk must not fabricate highlights, got %+v", analysis.Highlights)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := newAnalyzer(t, nil)

	analysis, err := a.Analyze("", model.PageMap{})
	if err != nil {
		t.Fatalf("Expected empty input to succeed, got %v", err)
	}
	if analysis.Clauses == nil || len(analysis.Clauses) != 0 {
		t.Errorf("Expected empty, non-nil clauses, got %v", analysis.Clauses)
	}
	if analysis.Highlights == nil || len(analysis.Highlights) != 0 {
		t.Errorf("Expected empty, non-nil highlights, got %v", analysis.Highlights)
	}
	if analysis.RiskAssessment.OverallScore != 0 {
		t.Errorf("Overall score %v, want 0", analysis.RiskAssessment.OverallScore)
	}
	if analysis.RiskAssessment.OverallLevel != model.LevelMinimal {
		t.Errorf("Overall level %s, want minimal", analysis.RiskAssessment.OverallLevel)
	}
}

func TestAnalyze_IdempotentBytes(t *testing.T) {
	a := newAnalyzer(t, nil)

	first, err := a.Analyze(leaseText, model.PageMap{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := a.Analyze(leaseText, model.PageMap{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	b1, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal first: %v", err)
	}
	b2, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal second: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Errorf("Repeated analysis differs:\n%s\n%s", b1, b2)
	}
}

func TestAnalyze_CacheDisabledStillIdempotent(t *testing.T) {
	a := newAnalyzer(t, func(cfg *model.Config) { cfg.Cache.Enabled = false })

	first, _ := a.Analyze(leaseText, model.PageMap{})
	second, _ := a.Analyze(leaseText, model.PageMap{})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Uncached analysis differs (-first +second):\n%s", diff)
	}
}

func TestAnalyze_ChunkedMatchesUnchunked(t *testing.T) {
	lines := []string{
		"The Supplier shall pay a penalty of $1,000 upon any breach of this clause.",
		"This agreement shall automatically renew for successive one year terms.",
		"All confidential information disclosed remains the property of the Discloser.",
		"Either party may terminate this agreement with 30 days written notice.",
		"The Client shall pay all invoices within 45 days of receipt.",
	}
	text := strings.Join(lines, "\n")

	whole := newAnalyzer(t, func(cfg *model.Config) {
		cfg.Analysis.ChunkBytes = 0
		cfg.Cache.Enabled = false
	})
	chunked := newAnalyzer(t, func(cfg *model.Config) {
		cfg.Analysis.ChunkBytes = 80 // Forces several chunks
		cfg.Cache.Enabled = false
	})

	a1, err := whole.Analyze(text, model.PageMap{})
	if err != nil {
		t.Fatalf("Unchunked analysis: %v", err)
	}
	a2, err := chunked.Analyze(text, model.PageMap{})
	if err != nil {
		t.Fatalf("Chunked analysis: %v", err)
	}

	if diff := cmp.Diff(a1, a2); diff != "" {
		t.Errorf("Chunked analysis differs from unchunked (-whole +chunked):\n%s", diff)
	}
}

func TestAnalyze_ChunkedPropagatesBadPageMap(t *testing.T) {
	a := newAnalyzer(t, func(cfg *model.Config) {
		cfg.Analysis.ChunkBytes = 40
		cfg.Cache.Enabled = false
	})
	text := strings.Repeat("The Tenant shall pay a penalty of $500.\n", 4)
	bad := model.PageMap{Ranges: []model.PageRange{{Start: 0, End: len(text) + 50, Page: 1}}}

	_, err := a.Analyze(text, bad)
	if err == nil {
		t.Fatal("Expected an error for an out-of-bounds page map")
	}
}

func TestAnalyze_SequentialClauseIDs(t *testing.T) {
	a := newAnalyzer(t, func(cfg *model.Config) {
		cfg.Analysis.ChunkBytes = 60
		cfg.Cache.Enabled = false
	})
	text := "The Tenant shall pay a penalty of $500.\nThis agreement shall automatically renew.\nThe Supplier shall indemnify the Client."

	analysis, err := a.Analyze(text, model.PageMap{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(analysis.Clauses) < 2 {
		t.Fatalf("Expected several clauses, got %d", len(analysis.Clauses))
	}
	for i, c := range analysis.Clauses {
		want := fmt.Sprintf("clause-%03d", i+1)
		if c.ID != want {
			t.Errorf("Clause %d has id %q, want %q", i, c.ID, want)
		}
	}
}

func TestAnalyzeFile_Report(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(path, []byte(leaseText), 0o644); err != nil {
		t.Fatalf("Write fixture: %v", err)
	}

	a := newAnalyzer(t, nil)
	report, err := a.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.ID == "" {
		t.Error("Report id is empty")
	}
	if report.Source != path {
		t.Errorf("Report source %q, want %q", report.Source, path)
	}
	if report.Catalog != a.Catalog().Version {
		t.Errorf("Report catalog %q, want %q", report.Catalog, a.Catalog().Version)
	}
	if report.AnalyzedAt.IsZero() {
		t.Error("Report timestamp is zero")
	}
	if report.Summary.Total != len(report.Analysis.Clauses) {
		t.Errorf("Summary total %d, clauses %d", report.Summary.Total, len(report.Analysis.Clauses))
	}
	if report.LLM != nil {
		t.Error("LLM summary present without a configured provider")
	}
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	a := newAnalyzer(t, nil)

	_, err := a.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
