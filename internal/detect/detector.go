package detect

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

// Detector scans text for legally significant passages using the rule
// catalog. It holds no mutable state: the same text and catalog always
// produce the identical clause sequence.
type Detector struct {
	catalog *catalog.Catalog
}

// New creates a detector over a validated catalog.
func New(cat *catalog.Catalog) *Detector {
	return &Detector{catalog: cat}
}

// Detect scans the text unit by unit and emits one clause per category
// match. A unit matching several categories yields several clauses;
// downstream consumers reconcile overlaps. Empty text is a valid,
// empty result.
func (d *Detector) Detect(text string, pages model.PageMap) ([]model.LegalClause, error) {
	if !utf8.ValidString(text) {
		return nil, &model.InvalidInputError{Reason: "text is not valid UTF-8"}
	}
	if err := pages.Validate(len(text)); err != nil {
		return nil, err
	}

	clauses := []model.LegalClause{}
	if text == "" {
		return clauses, nil
	}

	units := Segment(text)
	for _, unit := range units {
		lower := strings.ToLower(unit.Text)
		indicators := d.catalog.Importance.IndicatorCount(lower)
		importance := d.catalog.Importance.Importance(indicators)

		for _, category := range d.catalog.ActiveCategories() {
			rules := d.catalog.Categories[category]
			confidence, rationale := d.match(rules, lower)
			if confidence <= 0 {
				continue
			}

			clauses = append(clauses, model.LegalClause{
				ID:          fmt.Sprintf("clause-%03d", len(clauses)+1),
				Category:    category,
				StartOffset: unit.Start,
				EndOffset:   unit.End,
				Page:        pages.PageFor(unit.Start),
				Confidence:  confidence,
				Importance:  importance,
				Rationale:   rationale,
				Text:        unit.Text,
			})
		}
	}

	return clauses, nil
}

// match evaluates one category's rules against a lowercased unit.
// Keyword density and pattern weights combine by max, never by sum, so
// repeated vocabulary cannot inflate confidence past its strongest
// signal. The rationale names whichever signal won.
func (d *Detector) match(rules catalog.CategoryRules, lower string) (float64, string) {
	var matched []string
	for _, kw := range rules.Keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}

	keywordConf := 0.0
	if len(matched) > 0 {
		keywordConf = d.catalog.KeywordGain * float64(len(matched)) / float64(len(rules.Keywords))
		if keywordConf > 1 {
			keywordConf = 1
		}
	}

	bestPattern := ""
	bestWeight := 0.0
	for i := range rules.Patterns {
		p := &rules.Patterns[i]
		if p.Weight > bestWeight && p.Match(lower) {
			bestWeight = p.Weight
			bestPattern = p.ID
		}
	}

	if bestWeight >= keywordConf && bestPattern != "" {
		return bestWeight, "pattern:" + bestPattern
	}
	if keywordConf > 0 {
		return keywordConf, "keyword:" + strings.Join(matched, ",")
	}
	return 0, ""
}
