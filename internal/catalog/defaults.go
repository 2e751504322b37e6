package catalog

import "lexlens/internal/model"

// Default returns the built-in rule catalog, already validated and
// compiled. The rule data mirrors the vocabulary of consumer-facing
// contracts (leases, service agreements, terms of service).
func Default() *Catalog {
	c := &Catalog{
		Version:              "builtin-1",
		KeywordGain:          3.0,
		MinDisplayConfidence: 0,
		ContributionScale:    5.0,
		ContributionCap:      10.0,
		IndicatorThreshold:   3.0,

		Importance: ImportanceRules{
			Signals: []string{
				"sole discretion", "unilateral", "non-negotiable",
				"waive", "irrevocabl", "immediately", "without notice",
				"no later than", "time is of the essence",
			},
			Patterns: []string{
				`\$\s?[\d,]+`,                          // monetary amounts
				`\d+(?:\.\d+)?\s?%`,                    // rates
				`within\s+\d+\s+(?:business\s+)?days?`, // absolute deadlines
			},
			HighCount:   2,
			MediumCount: 1,
		},

		SeverityThresholds: LevelThresholds{Critical: 8.5, High: 7.0, Medium: 5.0, Low: 3.0},
		OverallThresholds:  LevelThresholds{Critical: 80, High: 60, Medium: 40, Low: 20},

		Weights: map[model.RiskCategory]float64{
			model.RiskLegal:       0.30,
			model.RiskFinancial:   0.25,
			model.RiskOperational: 0.20,
			model.RiskCommercial:  0.15,
			model.RiskRegulatory:  0.10,
		},

		Categories: map[model.ClauseCategory]CategoryRules{
			model.CategoryObligation: {
				Keywords: []string{
					"shall", "must", "agree to", "obligated to",
					"required to", "undertake to", "duty to",
				},
				Patterns: []PatternRule{
					{ID: "obligation-bound", Expr: `(?:shall|must|will)\s+(?:be\s+)?(?:required|obligated|bound)\s+to`, Weight: 0.75},
					{ID: "obligation-duty", Expr: `(?:duty|obligation|responsibility)\s+to`, Weight: 0.6},
				},
			},
			model.CategoryPenalty: {
				Keywords: []string{
					"penalty", "fine", "damages", "liquidated damages",
					"breach", "default", "forfeit",
				},
				Patterns: []PatternRule{
					{ID: "penalty-amount", Expr: `(?:penalty|fine|damages?)\s+(?:of|for|in\s+the\s+amount\s+of)`, Weight: 0.8},
					{ID: "penalty-liquidated", Expr: `(?:liquidated|consequential)\s+damages`, Weight: 0.85},
					{ID: "penalty-breach", Expr: `(?:in\s+the\s+event\s+of|upon)\s+(?:any\s+)?(?:breach|default)`, Weight: 0.7},
				},
			},
			model.CategoryAutoRenewal: {
				Keywords: []string{
					"renew", "renewal", "automatically", "rollover",
					"evergreen", "successive term",
				},
				Patterns: []PatternRule{
					{ID: "renewal-auto", Expr: `automatic(?:ally)?\s+renew(?:s|al|ed)?`, Weight: 0.85},
					{ID: "renewal-rollover", Expr: `(?:rollover|evergreen)\s+(?:term|clause|provision)`, Weight: 0.8},
					{ID: "renewal-notice", Expr: `renew(?:s|al)?\s+(?:unless|without)\s+(?:notice|notification)`, Weight: 0.8},
				},
			},
			model.CategoryTermination: {
				Keywords: []string{
					"terminate", "termination", "cancel", "cancellation",
					"expire", "cease",
				},
				Patterns: []PatternRule{
					{ID: "termination-right", Expr: `(?:right|option)\s+to\s+(?:terminate|cancel)`, Weight: 0.8},
					{ID: "termination-notice", Expr: `notice\s+of\s+(?:termination|cancellation)`, Weight: 0.75},
				},
			},
			model.CategoryPaymentTerms: {
				Keywords: []string{
					"payment", "pay", "fee", "invoice", "due date",
					"billing", "interest", "late charge",
				},
				Patterns: []PatternRule{
					{ID: "payment-due", Expr: `(?:due|payable)\s+(?:within|no\s+later\s+than|on\s+or\s+before)`, Weight: 0.8},
					{ID: "payment-shall-pay", Expr: `(?:shall|must|agrees?\s+to)\s+pay`, Weight: 0.7},
					{ID: "payment-interest", Expr: `interest\s+(?:rate\s+)?of\s+[\d.]+\s?%`, Weight: 0.8},
				},
			},
			model.CategoryLiability: {
				Keywords: []string{
					"liability", "liable", "indemnify", "indemnification",
					"hold harmless", "losses",
				},
				Patterns: []PatternRule{
					{ID: "liability-indemnify", Expr: `(?:indemnify|hold\s+harmless|defend)\s+(?:and\s+)?`, Weight: 0.8},
					{ID: "liability-limit", Expr: `(?:limitation|exclusion)\s+of\s+liability`, Weight: 0.8},
					{ID: "liability-disclaimer", Expr: `(?:no|without\s+any)\s+liability`, Weight: 0.7},
				},
			},
			model.CategoryConfidentiality: {
				Keywords: []string{
					"confidential", "non-disclosure", "proprietary",
					"trade secret", "secrecy",
				},
				Patterns: []PatternRule{
					{ID: "confidentiality-nda", Expr: `non.?disclosure`, Weight: 0.8},
					{ID: "confidentiality-secret", Expr: `(?:trade\s+secret|proprietary\s+information)`, Weight: 0.75},
				},
			},
			model.CategoryRightsResponsib: {
				Keywords: []string{
					"entitled to", "right to", "responsible for",
					"at its discretion", "reserves the right",
				},
				Patterns: []PatternRule{
					{ID: "rights-reserve", Expr: `reserves?\s+the\s+right\s+to`, Weight: 0.8},
					{ID: "rights-entitled", Expr: `(?:is|are|shall\s+be)\s+entitled\s+to`, Weight: 0.7},
				},
			},
		},

		RiskMapping: map[model.ClauseCategory][]Contribution{
			model.CategoryObligation: {
				{Risk: model.RiskOperational, BaseScore: 5.0, Mitigation: "Define clear, achievable performance standards"},
				{Risk: model.RiskLegal, BaseScore: 4.0, Mitigation: "Confirm obligations are mutual and proportionate"},
			},
			model.CategoryPenalty: {
				{Risk: model.RiskFinancial, BaseScore: 8.0, Mitigation: "Negotiate penalty caps and grace periods"},
				{Risk: model.RiskLegal, BaseScore: 6.0, Mitigation: "Limit damages to actual losses"},
			},
			model.CategoryAutoRenewal: {
				{Risk: model.RiskCommercial, BaseScore: 6.0, Mitigation: "Add explicit renewal notification requirements"},
				{Risk: model.RiskLegal, BaseScore: 5.0, Mitigation: "Ensure renewal can be declined without cause"},
			},
			model.CategoryTermination: {
				{Risk: model.RiskLegal, BaseScore: 8.0, Mitigation: "Ensure mutual termination rights"},
				{Risk: model.RiskOperational, BaseScore: 5.0, Mitigation: "Plan for transition on early termination"},
			},
			model.CategoryPaymentTerms: {
				{Risk: model.RiskFinancial, BaseScore: 5.0, Mitigation: "Clarify due dates, late fees, and billing disputes"},
			},
			model.CategoryLiability: {
				{Risk: model.RiskLegal, BaseScore: 9.0, Mitigation: "Limit indemnification scope and duration"},
				{Risk: model.RiskFinancial, BaseScore: 7.0, Mitigation: "Cap liability at reasonable amounts"},
			},
			model.CategoryConfidentiality: {
				{Risk: model.RiskCommercial, BaseScore: 5.0, Mitigation: "Scope confidentiality to genuinely sensitive information"},
				{Risk: model.RiskRegulatory, BaseScore: 4.0, Mitigation: "Align disclosure duties with data protection law"},
			},
			model.CategoryRightsResponsib: {
				{Risk: model.RiskOperational, BaseScore: 4.0, Mitigation: "Document each party's responsibilities explicitly"},
				{Risk: model.RiskCommercial, BaseScore: 3.0, Mitigation: "Balance one-sided discretion with objective criteria"},
			},
		},

		DocumentRules: []DocumentRule{
			{
				ID:          "doc-one-sided",
				Expr:        `(?:sole\s+discretion|unilateral(?:ly)?|non-negotiable)`,
				Risk:        model.RiskLegal,
				BaseScore:   7.0,
				Description: "One-sided decision making language",
				Mitigation:  "Require mutual consent for discretionary decisions",
			},
			{
				ID:          "doc-rights-waiver",
				Expr:        `(?:waives?|waiver|releases?)\s+(?:of\s+)?(?:any\s+|all\s+)?(?:rights?|claims?|recourse|liability)`,
				Risk:        model.RiskLegal,
				BaseScore:   8.0,
				Description: "Broad waiver of rights or recourse",
				Mitigation:  "Narrow waivers to specific, named claims",
			},
			{
				ID:          "doc-hold-harmless",
				Expr:        `hold\s+harmless|indemnif(?:y|ies|ication)`,
				Risk:        model.RiskLegal,
				BaseScore:   7.0,
				Description: "Indemnification or hold harmless obligation",
				Mitigation:  "Cap indemnification and exclude the other party's negligence",
			},
			{
				ID:          "doc-punitive-rate",
				Expr:        `(?:penalty|interest|punitive)\s+rate|late\s+(?:fees?|charges?)|overdue\s+charges?`,
				Risk:        model.RiskFinancial,
				BaseScore:   7.0,
				Description: "Punitive rate or late charge terms",
				Mitigation:  "Benchmark rates and fees against market norms",
			},
			{
				ID:          "doc-perpetual",
				Expr:        `evergreen|perpetual|continues\s+until|renewal\s+without\s+notice`,
				Risk:        model.RiskCommercial,
				BaseScore:   6.0,
				Description: "Evergreen or perpetual commitment",
				Mitigation:  "Add a fixed end date or a renewal notice requirement",
			},
			{
				ID:          "doc-compliance",
				Expr:        `non-?compliance|violation\s+(?:of|with)|regulatory\s+(?:requirement|approval)s?`,
				Risk:        model.RiskRegulatory,
				BaseScore:   5.0,
				Description: "Compliance and violation exposure",
				Mitigation:  "Assign an owner and review cadence for each compliance duty",
			},
			{
				ID:          "doc-cure-period",
				Expr:        `(?:notice|grace|cure)\s+period`,
				Risk:        model.RiskOperational,
				BaseScore:   3.0,
				Description: "Deadline-driven notice or cure periods",
				Mitigation:  "Calendar all notice and cure deadlines",
			},
			{
				ID:          "doc-deposit",
				Expr:        `security\s+deposit|escrow|collateral`,
				Risk:        model.RiskFinancial,
				BaseScore:   2.0,
				Description: "Funds held as deposit, escrow, or collateral",
				Mitigation:  "Document the return conditions for held funds",
			},
		},
	}

	if err := c.Validate(); err != nil {
		// The built-in catalog is covered by tests; an invalid default
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}
