package risk

import (
	"fmt"
	"strings"

	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

// Classifier aggregates detected clauses into a document-wide risk
// profile. Aggregation is monotonic: adding a clause never lowers a
// category score, and scores saturate at 100.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier over a validated catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{catalog: cat}
}

// Assess builds the risk assessment for one clause list and its source
// text. Scores combine per-clause contributions with a document-level
// pattern scan over the raw text, so one-sided or waiver language
// raises risk even when no clause rule matched the same passage. Zero
// clauses over neutral text is the all-zero minimal profile, never an
// error.
func (c *Classifier) Assess(clauses []model.LegalClause, text string) model.RiskAssessment {
	raw := make(map[model.RiskCategory]float64, len(model.RiskCategories))
	indicators := []model.RiskIndicator{}
	clauseLevels := map[string]model.RiskLevel{}

	for _, clause := range clauses {
		maxContribution := 0.0
		for _, contrib := range c.catalog.RiskMapping[clause.Category] {
			amount := c.contribution(clause, contrib.BaseScore)
			raw[contrib.Risk] += amount
			if amount > maxContribution {
				maxContribution = amount
			}

			if amount >= c.catalog.IndicatorThreshold {
				indicators = append(indicators, model.RiskIndicator{
					Category:       contrib.Risk,
					Severity:       c.catalog.SeverityThresholds.Level(amount),
					Description:    fmt.Sprintf("%s clause raises %s risk", categoryLabel(clause.Category), contrib.Risk),
					SourceClauseID: clause.ID,
					Mitigation:     contrib.Mitigation,
				})
			}
		}
		clauseLevels[clause.ID] = c.catalog.SeverityThresholds.Level(maxContribution)
	}

	// Document-level scan: each matching rule contributes once,
	// regardless of how often its pattern occurs. Indicators from
	// here carry no source clause id. Empty text is never scanned,
	// keeping the empty-input result all-zero for any rule set.
	lower := strings.ToLower(text)
	for i := range c.catalog.DocumentRules {
		rule := &c.catalog.DocumentRules[i]
		if lower == "" || !rule.Match(lower) {
			continue
		}
		raw[rule.Risk] += rule.BaseScore

		if rule.BaseScore >= c.catalog.IndicatorThreshold {
			indicators = append(indicators, model.RiskIndicator{
				Category:    rule.Risk,
				Severity:    c.catalog.SeverityThresholds.Level(rule.BaseScore),
				Description: rule.Description,
				Mitigation:  rule.Mitigation,
			})
		}
	}

	scores := make(map[model.RiskCategory]float64, len(model.RiskCategories))
	overall := 0.0
	for _, rc := range model.RiskCategories {
		score := raw[rc] * c.catalog.ContributionScale
		if score > 100 {
			score = 100
		}
		scores[rc] = score
		overall += score * c.catalog.Weights[rc]
	}

	return model.RiskAssessment{
		OverallScore:    overall,
		OverallLevel:    c.catalog.OverallThresholds.Level(overall),
		CategoryScores:  scores,
		Indicators:      indicators,
		Recommendations: recommendations(indicators),
		ClauseLevels:    clauseLevels,
	}
}

// contribution computes one clause's contribution on the 0-10 scale:
// the configured base, weighted by importance, damped by confidence,
// capped so keyword repetition cannot overflow a single clause.
func (c *Classifier) contribution(clause model.LegalClause, base float64) float64 {
	amount := base * clause.Importance.Weight() * (0.5 + 0.5*clause.Confidence)
	if amount > c.catalog.ContributionCap {
		amount = c.catalog.ContributionCap
	}
	return amount
}

// recommendations collects indicator mitigations, deduplicated in
// first-occurrence order so advice stays traceable to document order.
func recommendations(indicators []model.RiskIndicator) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, ind := range indicators {
		if ind.Mitigation == "" || seen[ind.Mitigation] {
			continue
		}
		seen[ind.Mitigation] = true
		out = append(out, ind.Mitigation)
	}
	return out
}

func categoryLabel(cat model.ClauseCategory) string {
	label := strings.ReplaceAll(string(cat), "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
