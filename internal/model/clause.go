package model

// ClauseCategory tags the legal nature of a detected clause.
// The set is closed for a given deployment; the rule catalog decides
// which categories are active.
type ClauseCategory string

const (
	CategoryObligation      ClauseCategory = "obligation"
	CategoryPenalty         ClauseCategory = "penalty"
	CategoryAutoRenewal     ClauseCategory = "auto_renewal"
	CategoryTermination     ClauseCategory = "termination"
	CategoryPaymentTerms    ClauseCategory = "payment_terms"
	CategoryLiability       ClauseCategory = "liability"
	CategoryConfidentiality ClauseCategory = "confidentiality"
	CategoryRightsResponsib ClauseCategory = "rights_responsibilities"
)

// ClauseCategories lists the known categories in a fixed order so that
// detection output is deterministic across runs.
var ClauseCategories = []ClauseCategory{
	CategoryObligation,
	CategoryPenalty,
	CategoryAutoRenewal,
	CategoryTermination,
	CategoryPaymentTerms,
	CategoryLiability,
	CategoryConfidentiality,
	CategoryRightsResponsib,
}

// Importance ranks how operative a clause is, independent of detection
// confidence.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Weight returns the multiplier used when a clause contributes to a
// risk category score.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceHigh:
		return 1.2
	case ImportanceLow:
		return 0.8
	default:
		return 1.0
	}
}

// LegalClause is one detected, legally significant passage. Instances
// are immutable once emitted by the detector.
type LegalClause struct {
	ID          string         `json:"id"`                   // Stable within one analysis run
	Category    ClauseCategory `json:"category"`
	StartOffset int            `json:"start_offset"`         // Byte offset into the source text
	EndOffset   int            `json:"end_offset"`           // Exclusive; always > StartOffset
	Page        *int           `json:"page,omitempty"`       // From the ingestion page map, nil when unknown
	Confidence  float64        `json:"confidence"`           // [0,1], from keyword/pattern density
	Importance  Importance     `json:"importance"`
	Rationale   string         `json:"rationale"`            // Which keywords/patterns fired
	Text        string         `json:"text"`                 // The matched unit, trimmed
}
