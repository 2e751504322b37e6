package model

import "time"

// Analysis is the complete result of one analysis pass over one text
// unit. It is fully determined by the input text, the page map, and
// the rule catalog: the same inputs always produce a byte-identical
// Analysis.
type Analysis struct {
	Clauses        []LegalClause       `json:"clauses"`
	RiskAssessment RiskAssessment      `json:"risk_assessment"`
	Highlights     []DocumentHighlight `json:"highlights"`
}

// ClauseSummary tallies the clause list for reporting.
type ClauseSummary struct {
	Total        int                    `json:"total"`
	ByCategory   map[ClauseCategory]int `json:"by_category,omitempty"`
	ByImportance map[Importance]int     `json:"by_importance,omitempty"`
	HighPriority int                    `json:"high_priority"` // High importance or high/critical level
}

// Summarize builds the clause tallies for an analysis.
func (a *Analysis) Summarize() ClauseSummary {
	s := ClauseSummary{}
	if len(a.Clauses) == 0 {
		return s
	}
	s.ByCategory = make(map[ClauseCategory]int)
	s.ByImportance = make(map[Importance]int)
	for _, c := range a.Clauses {
		s.Total++
		s.ByCategory[c.Category]++
		s.ByImportance[c.Importance]++
		level := a.RiskAssessment.ClauseLevels[c.ID]
		if c.Importance == ImportanceHigh || level == LevelHigh || level == LevelCritical {
			s.HighPriority++
		}
	}
	return s
}

// Report is the envelope written by the CLI around one analysis. The
// envelope carries run metadata and the optional LLM summary; the
// embedded Analysis stays deterministic.
type Report struct {
	ID         string        `json:"id"`     // Run id, not part of the deterministic core
	Source     string        `json:"source"` // File path or caller-supplied label
	AnalyzedAt time.Time     `json:"analyzed_at"`
	Catalog    string        `json:"catalog"` // Catalog version that produced the analysis
	Summary    ClauseSummary `json:"summary"`

	Analysis Analysis `json:"analysis"`

	LLM *PlainSummary `json:"llm,omitempty"` // Optional, never affects the analysis
}

// PlainSummary is an optional LLM-generated plain-language explanation
// of the risk profile. It is produced after scoring and never feeds
// back into detection, scoring, or highlighting.
type PlainSummary struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
