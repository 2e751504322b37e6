package highlight

import (
	"fmt"
	"strings"

	"lexlens/internal/catalog"
	"lexlens/internal/model"
)

// Highlighter turns clauses and their risk assessment into renderable
// highlight records. Clauses at or below the display threshold are
// omitted here but have already influenced the aggregate risk; the
// separation keeps low-confidence matches out of the rendered view
// without losing their signal.
type Highlighter struct {
	catalog *catalog.Catalog
}

// New creates a highlighter over a validated catalog.
func New(cat *catalog.Catalog) *Highlighter {
	return &Highlighter{catalog: cat}
}

// Highlight produces one highlight per clause above the display
// threshold. Each highlight carries the clause's own severity from the
// assessment, not the document-wide level.
func (h *Highlighter) Highlight(clauses []model.LegalClause, assessment model.RiskAssessment) []model.DocumentHighlight {
	highlights := []model.DocumentHighlight{}
	for _, clause := range clauses {
		if clause.Confidence <= h.catalog.MinDisplayConfidence {
			continue
		}

		level, ok := assessment.ClauseLevels[clause.ID]
		if !ok {
			level = model.LevelMinimal
		}

		highlights = append(highlights, model.DocumentHighlight{
			StartOffset: clause.StartOffset,
			EndOffset:   clause.EndOffset,
			RiskLevel:   level,
			Category:    clause.Category,
			TooltipText: tooltip(clause, level),
			StyleToken:  model.StyleForLevel(level),
		})
	}
	return highlights
}

// tooltip builds the short explanation shown on hover.
func tooltip(clause model.LegalClause, level model.RiskLevel) string {
	label := strings.ReplaceAll(string(clause.Category), "_", " ")
	return fmt.Sprintf("Type: %s | Risk: %s | Importance: %s | Confidence: %d%%",
		label, level, clause.Importance, int(clause.Confidence*100))
}
