package highlight

import (
	"strings"
	"testing"

	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

func TestHighlight_CarriesClauseLevelAndStyle(t *testing.T) {
	h := New(catalog.Default())
	clauses := []model.LegalClause{
		{ID: "clause-001", Category: model.CategoryPenalty, StartOffset: 10, EndOffset: 40, Confidence: 0.8, Importance: model.ImportanceMedium, Text: "penalty of $500"},
	}
	assessment := model.RiskAssessment{
		ClauseLevels: map[string]model.RiskLevel{"clause-001": model.LevelHigh},
	}

	highlights := h.Highlight(clauses, assessment)
	if len(highlights) != 1 {
		t.Fatalf("Expected 1 highlight, got %d", len(highlights))
	}

	hl := highlights[0]
	if hl.RiskLevel != model.LevelHigh {
		t.Errorf("Risk level %s, want high", hl.RiskLevel)
	}
	if hl.StyleToken != model.StyleHigh {
		t.Errorf("Style token %s, want %s", hl.StyleToken, model.StyleHigh)
	}
	if hl.StartOffset != 10 || hl.EndOffset != 40 {
		t.Errorf("Highlight span [%d,%d), want [10,40)", hl.StartOffset, hl.EndOffset)
	}
	if hl.Category != model.CategoryPenalty {
		t.Errorf("Category %s, want penalty", hl.Category)
	}
}

func TestHighlight_TooltipContent(t *testing.T) {
	h := New(catalog.Default())
	clauses := []model.LegalClause{
		{ID: "clause-001", Category: model.CategoryAutoRenewal, EndOffset: 20, Confidence: 1.0, Importance: model.ImportanceHigh},
	}
	assessment := model.RiskAssessment{
		ClauseLevels: map[string]model.RiskLevel{"clause-001": model.LevelMedium},
	}

	highlights := h.Highlight(clauses, assessment)
	if len(highlights) != 1 {
		t.Fatalf("Expected 1 highlight, got %d", len(highlights))
	}

	tip := highlights[0].TooltipText
	for _, want := range []string{"auto renewal", "medium", "high", "100%"} {
		if !strings.Contains(tip, want) {
			t.Errorf("Tooltip %q missing %q", tip, want)
		}
	}
}

func TestHighlight_SkipsLowConfidence(t *testing.T) {
	cat := catalog.Default()
	cat.MinDisplayConfidence = 0.5
	h := New(cat)

	clauses := []model.LegalClause{
		{ID: "clause-001", Category: model.CategoryPenalty, EndOffset: 10, Confidence: 0.3, Importance: model.ImportanceLow},
		{ID: "clause-002", Category: model.CategoryPenalty, StartOffset: 10, EndOffset: 20, Confidence: 0.9, Importance: model.ImportanceLow},
	}
	assessment := model.RiskAssessment{
		ClauseLevels: map[string]model.RiskLevel{
			"clause-001": model.LevelLow,
			"clause-002": model.LevelHigh,
		},
	}

	highlights := h.Highlight(clauses, assessment)
	if len(highlights) != 1 {
		t.Fatalf("Expected only the confident clause, got %d highlights", len(highlights))
	}
	if highlights[0].StartOffset != 10 {
		t.Errorf("Wrong clause survived the threshold: %+v", highlights[0])
	}
}

func TestHighlight_MissingLevelFallsBackToMinimal(t *testing.T) {
	h := New(catalog.Default())
	clauses := []model.LegalClause{
		{ID: "clause-009", Category: model.CategoryObligation, EndOffset: 10, Confidence: 0.7, Importance: model.ImportanceMedium},
	}

	highlights := h.Highlight(clauses, model.RiskAssessment{})
	if len(highlights) != 1 {
		t.Fatalf("Expected 1 highlight, got %d", len(highlights))
	}
	if highlights[0].RiskLevel != model.LevelMinimal {
		t.Errorf("Risk level %s, want minimal fallback", highlights[0].RiskLevel)
	}
	if highlights[0].StyleToken != model.StyleMinimal {
		t.Errorf("Style token %s, want %s", highlights[0].StyleToken, model.StyleMinimal)
	}
}

func TestHighlight_NoClauses(t *testing.T) {
	h := New(catalog.Default())

	highlights := h.Highlight(nil, model.RiskAssessment{})
	if highlights == nil || len(highlights) != 0 {
		t.Errorf("Expected empty, non-nil highlight slice, got %v", highlights)
	}
}
