package model

// StyleToken is an abstract style identifier resolved to visual
// styling by the presentation layer. The core never emits literal
// colors.
type StyleToken string

const (
	StyleCritical StyleToken = "hl-critical"
	StyleHigh     StyleToken = "hl-high"
	StyleMedium   StyleToken = "hl-medium"
	StyleLow      StyleToken = "hl-low"
	StyleMinimal  StyleToken = "hl-minimal"
)

// StyleForLevel maps a risk level to its style token. Total: every
// level has a token, unknown levels fall back to minimal.
func StyleForLevel(level RiskLevel) StyleToken {
	switch level {
	case LevelCritical:
		return StyleCritical
	case LevelHigh:
		return StyleHigh
	case LevelMedium:
		return StyleMedium
	case LevelLow:
		return StyleLow
	default:
		return StyleMinimal
	}
}

// DocumentHighlight is one renderable highlight derived from a clause
// above the display threshold.
type DocumentHighlight struct {
	StartOffset int            `json:"start_offset"` // Same coordinate space as LegalClause
	EndOffset   int            `json:"end_offset"`
	RiskLevel   RiskLevel      `json:"risk_level"`
	Category    ClauseCategory `json:"category"`
	TooltipText string         `json:"tooltip_text"`
	StyleToken  StyleToken     `json:"style_token"`
}
