package model

import (
	"errors"
	"testing"
)

func TestPageMap_Validate(t *testing.T) {
	good := PageMap{Ranges: []PageRange{
		{Start: 0, End: 10, Page: 1},
		{Start: 12, End: 20, Page: 2}, // Gap at [10,12) is allowed
	}}
	if err := good.Validate(20); err != nil {
		t.Errorf("Valid map rejected: %v", err)
	}

	bad := []PageMap{
		{Ranges: []PageRange{{Start: 0, End: 30, Page: 1}}},                                 // past end of text
		{Ranges: []PageRange{{Start: 8, End: 8, Page: 1}}},                                  // empty
		{Ranges: []PageRange{{Start: 5, End: 3, Page: 1}}},                                  // inverted
		{Ranges: []PageRange{{Start: 0, End: 10, Page: 1}, {Start: 8, End: 15, Page: 2}}},   // overlap
		{Ranges: []PageRange{{Start: 10, End: 15, Page: 2}, {Start: 0, End: 5, Page: 1}}},   // unordered
	}
	for i, m := range bad {
		err := m.Validate(20)
		var inputErr *InvalidInputError
		if !errors.As(err, &inputErr) {
			t.Errorf("Case %d: expected InvalidInputError, got %v", i, err)
		}
	}
}

func TestPageMap_PageFor(t *testing.T) {
	m := PageMap{Ranges: []PageRange{
		{Start: 0, End: 10, Page: 1},
		{Start: 12, End: 20, Page: 2},
	}}

	if p := m.PageFor(5); p == nil || *p != 1 {
		t.Errorf("PageFor(5) = %v, want 1", p)
	}
	if p := m.PageFor(12); p == nil || *p != 2 {
		t.Errorf("PageFor(12) = %v, want 2", p)
	}
	if p := m.PageFor(11); p != nil {
		t.Errorf("PageFor(11) = %d in a gap, want nil", *p)
	}
	if p := m.PageFor(25); p != nil {
		t.Errorf("PageFor(25) = %d past the end, want nil", *p)
	}
}

func TestPageMap_Slice(t *testing.T) {
	m := PageMap{Ranges: []PageRange{
		{Start: 0, End: 10, Page: 1},
		{Start: 10, End: 30, Page: 2},
		{Start: 30, End: 40, Page: 3},
	}}

	s := m.Slice(5, 35)
	if len(s.Ranges) != 3 {
		t.Fatalf("Expected 3 ranges, got %+v", s.Ranges)
	}
	// Offsets re-based to the slice start; pages preserved.
	want := []PageRange{
		{Start: 0, End: 5, Page: 1},
		{Start: 5, End: 25, Page: 2},
		{Start: 25, End: 30, Page: 3},
	}
	for i, r := range s.Ranges {
		if r != want[i] {
			t.Errorf("Range %d = %+v, want %+v", i, r, want[i])
		}
	}

	if out := m.Slice(100, 200); len(out.Ranges) != 0 {
		t.Errorf("Slice outside the map should be empty, got %+v", out.Ranges)
	}
}

func TestSummarize(t *testing.T) {
	a := Analysis{
		Clauses: []LegalClause{
			{ID: "clause-001", Category: CategoryPenalty, Importance: ImportanceHigh},
			{ID: "clause-002", Category: CategoryPenalty, Importance: ImportanceMedium},
			{ID: "clause-003", Category: CategoryObligation, Importance: ImportanceLow},
		},
		RiskAssessment: RiskAssessment{
			ClauseLevels: map[string]RiskLevel{
				"clause-001": LevelCritical,
				"clause-002": LevelHigh,
				"clause-003": LevelLow,
			},
		},
	}

	s := a.Summarize()
	if s.Total != 3 {
		t.Errorf("Total %d, want 3", s.Total)
	}
	if s.ByCategory[CategoryPenalty] != 2 {
		t.Errorf("Penalty count %d, want 2", s.ByCategory[CategoryPenalty])
	}
	if s.ByImportance[ImportanceHigh] != 1 {
		t.Errorf("High importance count %d, want 1", s.ByImportance[ImportanceHigh])
	}
	// clause-001 (high importance + critical) and clause-002 (high level).
	if s.HighPriority != 2 {
		t.Errorf("HighPriority %d, want 2", s.HighPriority)
	}
}

func TestSummarize_Empty(t *testing.T) {
	var a Analysis
	s := a.Summarize()
	if s.Total != 0 || s.HighPriority != 0 {
		t.Errorf("Expected zero summary, got %+v", s)
	}
}

func TestStyleForLevel_Total(t *testing.T) {
	cases := map[RiskLevel]StyleToken{
		LevelCritical: StyleCritical,
		LevelHigh:     StyleHigh,
		LevelMedium:   StyleMedium,
		LevelLow:      StyleLow,
		LevelMinimal:  StyleMinimal,
	}
	for level, want := range cases {
		if got := StyleForLevel(level); got != want {
			t.Errorf("StyleForLevel(%s) = %s, want %s", level, got, want)
		}
	}
	// Unknown input still resolves to a token.
	if got := StyleForLevel("garbage"); got != StyleMinimal {
		t.Errorf("StyleForLevel(garbage) = %s, want minimal fallback", got)
	}
}
