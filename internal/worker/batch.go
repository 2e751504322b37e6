package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"lexlens/internal/model"
)

// DocumentAnalyzer analyzes one document file into a report.
type DocumentAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob analyzes a single document file.
type AnalyzeJob struct {
	Path     string
	Analyzer DocumentAnalyzer
}

// Execute runs the analysis.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{Path: j.Path, Report: report, Error: err}
}

// AnalyzeResult is the outcome of one document analysis.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many documents in parallel. Concurrency
// lives entirely at this orchestration boundary; each invocation gets
// its own input and output.
type BatchProcessor struct {
	analyzer    DocumentAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer DocumentAnalyzer, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessPaths analyzes the given document files.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	go func() {
		for _, path := range paths {
			pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
		}
		pool.Close()
	}()

	raw := pool.Wait()
	results := make([]*AnalyzeResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*AnalyzeResult))
	}
	return results
}

// ProcessListFile reads document paths from a file (one per line,
// blank lines and #-comments skipped) and analyzes them.
func (b *BatchProcessor) ProcessListFile(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}
