package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"lexlens/internal/model"
)

// Renderer writes reports as JSON and Markdown and prints the stdout
// summary. Rendering consumes the analysis verbatim; it never reaches
// back into the engine.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder
	a := &report.Analysis
	ra := &a.RiskAssessment

	fmt.Fprintf(&b, "# Legal Clause Analysis: %s\n\n", report.Source)
	fmt.Fprintf(&b, "- Analyzed: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Rule catalog: %s\n", report.Catalog)
	fmt.Fprintf(&b, "- Overall risk: **%s** (%.1f/100)\n\n", ra.OverallLevel, ra.OverallScore)

	b.WriteString("## Risk by Category\n\n")
	b.WriteString("| Category | Score |\n|---|---|\n")
	for _, rc := range model.RiskCategories {
		fmt.Fprintf(&b, "| %s | %.1f |\n", rc, ra.CategoryScores[rc])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Clauses (%d)\n\n", len(a.Clauses))
	for _, c := range a.Clauses {
		page := "?"
		if c.Page != nil {
			page = fmt.Sprintf("%d", *c.Page)
		}
		fmt.Fprintf(&b, "- `%s` **%s** (p.%s, confidence %.2f, importance %s): %s\n",
			c.ID, c.Category, page, c.Confidence, c.Importance, truncate(c.Text, 120))
	}
	b.WriteString("\n")

	if len(ra.Indicators) > 0 {
		fmt.Fprintf(&b, "## Risk Indicators (%d)\n\n", len(ra.Indicators))
		for _, ind := range ra.Indicators {
			src := ind.SourceClauseID
			if src == "" {
				src = "document"
			}
			fmt.Fprintf(&b, "- [%s/%s] %s (%s)\n", ind.Category, ind.Severity, ind.Description, src)
		}
		b.WriteString("\n")
	}

	if len(ra.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range ra.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.Text != "" {
		b.WriteString("## Plain-Language Summary (LLM, informational only)\n\n")
		b.WriteString(report.LLM.Text)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by lexlens. Rule-driven analysis, not legal advice.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the one-screen stdout summary.
func (r *Renderer) RenderSummary(report *model.Report) {
	ra := &report.Analysis.RiskAssessment
	fmt.Printf("\n%s\n", report.Source)
	fmt.Printf("  Overall risk:   %s (%.1f/100)\n", ra.OverallLevel, ra.OverallScore)
	fmt.Printf("  Clauses:        %d (%d high priority)\n", report.Summary.Total, report.Summary.HighPriority)
	fmt.Printf("  Indicators:     %d\n", len(ra.Indicators))
	fmt.Printf("  Highlights:     %d\n", len(report.Analysis.Highlights))
	if len(ra.Recommendations) > 0 {
		fmt.Printf("  Top suggestion: %s\n", ra.Recommendations[0])
	}
}

// truncate shortens s to at most max bytes, backing up to a rune
// boundary so multibyte text is never cut mid-rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
