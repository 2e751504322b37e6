package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"lexlens/internal/model"
)

type fakeAnalyzer struct {
	failSuffix string
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	if f.failSuffix != "" && strings.HasSuffix(path, f.failSuffix) {
		return nil, fmt.Errorf("cannot analyze %s", path)
	}
	return &model.Report{ID: "run", Source: path}, nil
}

func TestBatch_ProcessPaths(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 4)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	results := b.ProcessPaths(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}

	var got []string
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Unexpected error for %s: %v", r.Path, r.Error)
		}
		if r.Report == nil || r.Report.Source != r.Path {
			t.Errorf("Result for %s carries report %+v", r.Path, r.Report)
		}
		got = append(got, r.Path)
	}
	sort.Strings(got)
	if strings.Join(got, ",") != "a.txt,b.txt,c.txt" {
		t.Errorf("Result paths %v", got)
	}
}

func TestBatch_PartialFailure(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{failSuffix: "bad.txt"}, 2)

	results := b.ProcessPaths(context.Background(), []string{"ok.txt", "bad.txt", "fine.txt"})
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			if r.Path != "bad.txt" {
				t.Errorf("Wrong document failed: %s", r.Path)
			}
			if r.Report != nil {
				t.Errorf("Failed result carries a report: %+v", r.Report)
			}
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure, got %d", failed)
	}
}

func TestBatch_ManyDocuments(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 3)

	var paths []string
	for i := 0; i < 200; i++ {
		paths = append(paths, fmt.Sprintf("doc-%03d.txt", i))
	}
	results := b.ProcessPaths(context.Background(), paths)
	if len(results) != len(paths) {
		t.Errorf("Expected %d results, got %d", len(paths), len(results))
	}
}

func TestBatch_ProcessListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "docs.txt")
	content := "# contract set\none.txt\n\ntwo.txt\n  three.txt  \n"
	if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
		t.Fatalf("Write list: %v", err)
	}

	b := NewBatchProcessor(&fakeAnalyzer{}, 2)
	results, err := b.ProcessListFile(context.Background(), list)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 documents from the list, got %d", len(results))
	}
}

func TestBatch_ProcessListFileMissing(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 1)
	if _, err := b.ProcessListFile(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("Expected an error for a missing list file")
	}
}
