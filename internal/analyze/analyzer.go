package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"lexlens/internal/cache"
	"lexlens/internal/catalog"
	"lexlens/internal/detect"
	"lexlens/internal/highlight"
	"lexlens/internal/ingest"
	"lexlens/internal/llm"
	"lexlens/internal/model"
	"lexlens/internal/risk"
)

// Analyzer sequences detection, risk classification, and highlighting
// over one text unit. Each call is independent: no mutable state is
// shared between invocations, so analyzers are safe to use from
// concurrent workers. The catalog is read-only at request time.
type Analyzer struct {
	catalog     *catalog.Catalog
	detector    *detect.Detector
	classifier  *risk.Classifier
	highlighter *highlight.Highlighter
	chunkBytes  int
	store       cache.Cache
	summarizer  *llm.Summarizer // nil when disabled
}

// New creates an analyzer from the runtime configuration and a
// validated catalog.
func New(cfg *model.Config, cat *catalog.Catalog) *Analyzer {
	a := &Analyzer{
		catalog:     cat,
		detector:    detect.New(cat),
		classifier:  risk.New(cat),
		highlighter: highlight.New(cat),
		chunkBytes:  cfg.Analysis.ChunkBytes,
	}
	if cfg.Cache.Enabled {
		a.store = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			a.summarizer = s
		}
	}
	return a
}

// Catalog exposes the catalog the analyzer runs on.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Analyze runs the full detect -> assess -> highlight sequence. Either
// the whole analysis succeeds or the call fails; there is no partial
// output. Empty input is the all-empty, zero-risk success case.
func (a *Analyzer) Analyze(text string, pages model.PageMap) (*model.Analysis, error) {
	if a.store != nil {
		if data, ok := a.store.Get(cache.Key(a.catalog.Version, text)); ok {
			var cached model.Analysis
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt entry: fall through and recompute.
		}
	}

	clauses, err := a.detectAll(text, pages)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	assessment := a.classifier.Assess(clauses, text)
	highlights := a.highlighter.Highlight(clauses, assessment)

	analysis := &model.Analysis{
		Clauses:        clauses,
		RiskAssessment: assessment,
		Highlights:     highlights,
	}

	if a.store != nil {
		if data, err := json.Marshal(analysis); err == nil {
			_ = a.store.Set(cache.Key(a.catalog.Version, text), data, 0)
		}
	}

	return analysis, nil
}

// AnalyzeFile loads one document, analyzes it, and wraps the result in
// a report envelope. The optional LLM summary is generated last, after
// the analysis is final, and its failure only produces a warning.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	doc, err := ingest.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}

	analysis, err := a.Analyze(doc.Text, doc.Pages)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	report := &model.Report{
		ID:         uuid.NewString(),
		Source:     path,
		AnalyzedAt: time.Now().UTC(),
		Catalog:    a.catalog.Version,
		Summary:    analysis.Summarize(),
		Analysis:   *analysis,
	}

	if a.summarizer != nil {
		summary, err := a.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else {
			report.LLM = summary
		}
	}

	return report, nil
}

// detectAll runs detection, chunking very large documents at line
// breaks so no clause is split mid-token. Chunks never overlap, so the
// merged clause list counts every span exactly once, and because chunk
// boundaries fall on unit boundaries the result is identical to an
// unchunked pass.
func (a *Analyzer) detectAll(text string, pages model.PageMap) ([]model.LegalClause, error) {
	if a.chunkBytes <= 0 || len(text) <= a.chunkBytes {
		return a.detector.Detect(text, pages)
	}

	// Validate the full map up front so a bad range past the first
	// chunk still fails before any clause is emitted.
	if err := pages.Validate(len(text)); err != nil {
		return nil, err
	}

	merged := []model.LegalClause{}
	for base := 0; base < len(text); {
		end := base + detect.SplitAtLineBreak(text[base:], a.chunkBytes)
		if end <= base {
			end = len(text)
		}

		chunkClauses, err := a.detector.Detect(text[base:end], pages.Slice(base, end))
		if err != nil {
			return nil, err
		}
		for _, c := range chunkClauses {
			c.StartOffset += base
			c.EndOffset += base
			c.ID = fmt.Sprintf("clause-%03d", len(merged)+1)
			merged = append(merged, c)
		}
		base = end
	}
	return merged, nil
}
