package model

// RiskCategory is one of the five fixed domains risk is aggregated into.
type RiskCategory string

const (
	RiskFinancial   RiskCategory = "financial"
	RiskOperational RiskCategory = "operational"
	RiskLegal       RiskCategory = "legal"
	RiskCommercial  RiskCategory = "commercial"
	RiskRegulatory  RiskCategory = "regulatory"
)

// RiskCategories lists the categories in a fixed order. Every
// RiskAssessment carries a score for each of them, even when zero.
var RiskCategories = []RiskCategory{
	RiskFinancial,
	RiskOperational,
	RiskLegal,
	RiskCommercial,
	RiskRegulatory,
}

// RiskLevel is the ordinal severity scale shared by indicators,
// highlights, and the document-wide level.
type RiskLevel string

const (
	LevelCritical RiskLevel = "critical"
	LevelHigh     RiskLevel = "high"
	LevelMedium   RiskLevel = "medium"
	LevelLow      RiskLevel = "low"
	LevelMinimal  RiskLevel = "minimal"
)

// RiskIndicator is a single risk trigger traced back to the clause
// that produced it.
type RiskIndicator struct {
	Category       RiskCategory `json:"category"`
	Severity       RiskLevel    `json:"severity"`
	Description    string       `json:"description"`
	SourceClauseID string       `json:"source_clause_id,omitempty"` // Empty for document-level indicators
	Mitigation     string       `json:"mitigation"`                 // May be empty, always present
}

// RiskAssessment is the document-wide risk profile built from the
// clause list. Immutable once returned.
type RiskAssessment struct {
	OverallScore    float64                  `json:"overall_score"` // [0,100]
	OverallLevel    RiskLevel                `json:"overall_level"`
	CategoryScores  map[RiskCategory]float64 `json:"category_scores"` // All five keys always present
	Indicators      []RiskIndicator          `json:"indicators"`      // Detection order, not severity order
	Recommendations []string                 `json:"recommendations"` // Deduplicated, first-occurrence order
	ClauseLevels    map[string]RiskLevel     `json:"clause_levels"`   // Clause id -> severity of its strongest contribution
}
