package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"lexlens/internal/model"
)

// weightEpsilon is the tolerance when checking that risk category
// weights sum to 1.0.
const weightEpsilon = 1e-9

// PatternRule is one structural detection pattern. Weight is the
// confidence assigned when the pattern matches; within a category the
// highest-weight match wins, weights never sum.
type PatternRule struct {
	ID     string  `yaml:"id"`
	Expr   string  `yaml:"expr"`
	Weight float64 `yaml:"weight"`

	re *regexp.Regexp
}

// Match reports whether the compiled pattern matches the unit.
func (p *PatternRule) Match(lower string) bool {
	return p.re.MatchString(lower)
}

// CategoryRules holds the detection rules for one clause category.
type CategoryRules struct {
	Keywords []string      `yaml:"keywords"`
	Patterns []PatternRule `yaml:"patterns"`
}

// Contribution maps a clause category onto one risk category with a
// base score on the 0-10 indicator scale and a suggested mitigation.
type Contribution struct {
	Risk       model.RiskCategory `yaml:"risk"`
	BaseScore  float64            `yaml:"base_score"`
	Mitigation string             `yaml:"mitigation"`
}

// DocumentRule is one document-level risk pattern, matched against the
// whole text independent of clause detection. Matches feed the risk
// assessment directly: one-sided or waiver language raises risk even
// when no clause rule fires on the same passage. Indicators from these
// rules carry no source clause id.
type DocumentRule struct {
	ID          string             `yaml:"id"`
	Expr        string             `yaml:"expr"`
	Risk        model.RiskCategory `yaml:"risk"`
	BaseScore   float64            `yaml:"base_score"`
	Description string             `yaml:"description"`
	Mitigation  string             `yaml:"mitigation"`

	re *regexp.Regexp
}

// Match reports whether the compiled rule matches the document text.
func (r *DocumentRule) Match(lower string) bool {
	return r.re.MatchString(lower)
}

// ImportanceRules derives clause importance from a secondary indicator
// count: monetary amounts, absolute deadlines, one-sided language.
// Independent of detection confidence.
type ImportanceRules struct {
	Signals     []string `yaml:"signals"`
	Patterns    []string `yaml:"patterns"`
	HighCount   int      `yaml:"high_count"`
	MediumCount int      `yaml:"medium_count"`

	res []*regexp.Regexp
}

// LevelThresholds maps the overall score onto the ordinal risk scale.
type LevelThresholds struct {
	Critical float64 `yaml:"critical"`
	High     float64 `yaml:"high"`
	Medium   float64 `yaml:"medium"`
	Low      float64 `yaml:"low"`
}

// Level resolves a 0-100 score to its risk level.
func (t LevelThresholds) Level(score float64) model.RiskLevel {
	switch {
	case score >= t.Critical:
		return model.LevelCritical
	case score >= t.High:
		return model.LevelHigh
	case score >= t.Medium:
		return model.LevelMedium
	case score >= t.Low:
		return model.LevelLow
	default:
		return model.LevelMinimal
	}
}

// Catalog is the versioned rule configuration the whole engine runs
// on. It is validated once at load time and read-only afterwards, so
// one catalog may be shared across concurrent analyses.
type Catalog struct {
	Version string `yaml:"version"`

	// KeywordGain scales distinct-keyword density into confidence:
	// min(1, gain * matches / catalog size).
	KeywordGain float64 `yaml:"keyword_gain"`

	// MinDisplayConfidence is the highlight display threshold.
	// Clauses at or below it still count toward risk.
	MinDisplayConfidence float64 `yaml:"min_display_confidence"`

	// ContributionScale stretches summed per-clause contributions
	// into the 0-100 category score range, saturating at 100.
	ContributionScale float64 `yaml:"contribution_scale"`

	// ContributionCap bounds a single clause's contribution.
	ContributionCap float64 `yaml:"contribution_cap"`

	// IndicatorThreshold is the minimum contribution that emits a
	// RiskIndicator for a clause.
	IndicatorThreshold float64 `yaml:"indicator_threshold"`

	Importance ImportanceRules `yaml:"importance"`

	// SeverityThresholds grade a single contribution (0-10 scale)
	// into an indicator severity.
	SeverityThresholds LevelThresholds `yaml:"severity_thresholds"`

	// OverallThresholds grade the 0-100 overall score.
	OverallThresholds LevelThresholds `yaml:"overall_thresholds"`

	Weights map[model.RiskCategory]float64 `yaml:"weights"`

	Categories map[model.ClauseCategory]CategoryRules `yaml:"categories"`

	RiskMapping map[model.ClauseCategory][]Contribution `yaml:"risk_mapping"`

	// DocumentRules are scanned once over the full text per
	// assessment, independent of the clause list. Optional.
	DocumentRules []DocumentRule `yaml:"document_rules"`
}

// ActiveCategories returns the clause categories that have rules, in
// the fixed declaration order so detection output is deterministic.
func (c *Catalog) ActiveCategories() []model.ClauseCategory {
	var out []model.ClauseCategory
	for _, cat := range model.ClauseCategories {
		if _, ok := c.Categories[cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

// Importance maps an indicator count onto the ordinal scale.
func (r ImportanceRules) Importance(count int) model.Importance {
	switch {
	case count >= r.HighCount:
		return model.ImportanceHigh
	case count >= r.MediumCount:
		return model.ImportanceMedium
	default:
		return model.ImportanceLow
	}
}

// IndicatorCount counts importance signals in an already-lowercased
// unit.
func (r ImportanceRules) IndicatorCount(lower string) int {
	count := 0
	for _, s := range r.Signals {
		if strings.Contains(lower, s) {
			count++
		}
	}
	for _, re := range r.res {
		if re.MatchString(lower) {
			count++
		}
	}
	return count
}

// compile compiles every pattern in the catalog. Returns
// ConfigurationError on the first invalid expression.
func (c *Catalog) compile() error {
	for cat, rules := range c.Categories {
		for i := range rules.Patterns {
			p := &rules.Patterns[i]
			re, err := regexp.Compile("(?i)" + p.Expr)
			if err != nil {
				return &model.ConfigurationError{
					Reason: fmt.Sprintf("category %s pattern %q: %v", cat, p.ID, err),
				}
			}
			p.re = re
		}
		c.Categories[cat] = rules
	}
	c.Importance.res = c.Importance.res[:0]
	for _, expr := range c.Importance.Patterns {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return &model.ConfigurationError{
				Reason: fmt.Sprintf("importance pattern %q: %v", expr, err),
			}
		}
		c.Importance.res = append(c.Importance.res, re)
	}
	for i := range c.DocumentRules {
		r := &c.DocumentRules[i]
		re, err := regexp.Compile("(?i)" + r.Expr)
		if err != nil {
			return &model.ConfigurationError{
				Reason: fmt.Sprintf("document rule %q: %v", r.ID, err),
			}
		}
		r.re = re
	}
	return nil
}

// Validate checks the catalog and compiles its patterns. Every rule
// problem is reported here, before any document is processed; the
// engine never raises ConfigurationError mid-analysis.
func (c *Catalog) Validate() error {
	if c.Version == "" {
		return &model.ConfigurationError{Reason: "missing catalog version"}
	}
	if c.KeywordGain <= 0 {
		return &model.ConfigurationError{Reason: "keyword_gain must be positive"}
	}
	if c.ContributionScale <= 0 || c.ContributionCap <= 0 {
		return &model.ConfigurationError{Reason: "contribution scale and cap must be positive"}
	}
	if c.MinDisplayConfidence < 0 || c.MinDisplayConfidence >= 1 {
		return &model.ConfigurationError{Reason: "min_display_confidence must be in [0,1)"}
	}
	if c.Importance.HighCount < c.Importance.MediumCount {
		return &model.ConfigurationError{Reason: "importance high_count must be >= medium_count"}
	}

	// Weights: all five risk categories present, summing to 1.0.
	sum := 0.0
	for _, rc := range model.RiskCategories {
		w, ok := c.Weights[rc]
		if !ok {
			return &model.ConfigurationError{Reason: fmt.Sprintf("missing weight for risk category %q", rc)}
		}
		if w < 0 {
			return &model.ConfigurationError{Reason: fmt.Sprintf("negative weight for risk category %q", rc)}
		}
		sum += w
	}
	if len(c.Weights) != len(model.RiskCategories) {
		return &model.ConfigurationError{Reason: "unknown risk category in weights"}
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return &model.ConfigurationError{Reason: fmt.Sprintf("risk category weights sum to %v, want 1.0", sum)}
	}

	if len(c.Categories) == 0 {
		return &model.ConfigurationError{Reason: "no clause categories configured"}
	}
	seenPatterns := make(map[string]bool)
	for cat, rules := range c.Categories {
		if !knownClauseCategory(cat) {
			return &model.ConfigurationError{Reason: fmt.Sprintf("unknown clause category %q", cat)}
		}
		if len(rules.Keywords) == 0 && len(rules.Patterns) == 0 {
			return &model.ConfigurationError{Reason: fmt.Sprintf("category %q has no keywords or patterns", cat)}
		}
		for _, p := range rules.Patterns {
			if p.ID == "" {
				return &model.ConfigurationError{Reason: fmt.Sprintf("category %q has a pattern without an id", cat)}
			}
			if seenPatterns[p.ID] {
				return &model.ConfigurationError{Reason: fmt.Sprintf("duplicate pattern id %q", p.ID)}
			}
			seenPatterns[p.ID] = true
			if p.Weight <= 0 || p.Weight > 1 {
				return &model.ConfigurationError{Reason: fmt.Sprintf("pattern %q weight %v outside (0,1]", p.ID, p.Weight)}
			}
		}

		// Every detectable category must map to at least one risk
		// category, or its clauses would silently carry no risk.
		contribs, ok := c.RiskMapping[cat]
		if !ok || len(contribs) == 0 {
			return &model.ConfigurationError{Reason: fmt.Sprintf("category %q has no risk mapping", cat)}
		}
		for _, contrib := range contribs {
			if !knownRiskCategory(contrib.Risk) {
				return &model.ConfigurationError{Reason: fmt.Sprintf("category %q maps to unknown risk category %q", cat, contrib.Risk)}
			}
			if contrib.BaseScore <= 0 || contrib.BaseScore > c.ContributionCap {
				return &model.ConfigurationError{Reason: fmt.Sprintf("category %q base score %v outside (0,%v]", cat, contrib.BaseScore, c.ContributionCap)}
			}
		}
	}

	for _, r := range c.DocumentRules {
		if r.ID == "" {
			return &model.ConfigurationError{Reason: "document rule without an id"}
		}
		if seenPatterns[r.ID] {
			return &model.ConfigurationError{Reason: fmt.Sprintf("duplicate pattern id %q", r.ID)}
		}
		seenPatterns[r.ID] = true
		if !knownRiskCategory(r.Risk) {
			return &model.ConfigurationError{Reason: fmt.Sprintf("document rule %q maps to unknown risk category %q", r.ID, r.Risk)}
		}
		if r.BaseScore <= 0 || r.BaseScore > c.ContributionCap {
			return &model.ConfigurationError{Reason: fmt.Sprintf("document rule %q base score %v outside (0,%v]", r.ID, r.BaseScore, c.ContributionCap)}
		}
		if r.Description == "" {
			return &model.ConfigurationError{Reason: fmt.Sprintf("document rule %q has no description", r.ID)}
		}
	}

	if err := validateThresholds("severity_thresholds", c.SeverityThresholds); err != nil {
		return err
	}
	if err := validateThresholds("overall_thresholds", c.OverallThresholds); err != nil {
		return err
	}

	return c.compile()
}

func validateThresholds(name string, t LevelThresholds) error {
	if !(t.Critical > t.High && t.High > t.Medium && t.Medium > t.Low && t.Low > 0) {
		return &model.ConfigurationError{
			Reason: fmt.Sprintf("%s must be strictly decreasing and positive", name),
		}
	}
	return nil
}

func knownClauseCategory(cat model.ClauseCategory) bool {
	for _, c := range model.ClauseCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func knownRiskCategory(rc model.RiskCategory) bool {
	for _, c := range model.RiskCategories {
		if c == rc {
			return true
		}
	}
	return false
}
