package detect

import "strings"

// Unit is one contiguous text unit (sentence or line) with its byte
// offsets into the source text. Offsets cover the trimmed text.
type Unit struct {
	Start int
	End   int
	Text  string
}

// Segment splits text into detection units, breaking at sentence
// terminators and at line breaks. Offsets are preserved so clauses can
// be traced back to their exact position in the source.
func Segment(text string) []Unit {
	var units []Unit
	start := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := strings.Index(raw, trimmed)
			units = append(units, Unit{
				Start: start + lead,
				End:   start + lead + len(trimmed),
				Text:  trimmed,
			})
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			flush(i)
			start = i + 1
		case '.', '!', '?':
			// Split only when followed by whitespace, to avoid
			// breaking on abbreviations and decimals.
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n' {
				flush(i + 1)
			}
		}
	}
	if start < len(text) {
		flush(len(text))
	}

	return units
}

// SplitAtLineBreak returns the largest offset <= limit that falls just
// after a line break, so chunk boundaries never cut a unit mid-token.
// When no break exists before the limit the chunk extends to the next
// one instead of cutting a line in half.
func SplitAtLineBreak(text string, limit int) int {
	if limit >= len(text) {
		return len(text)
	}
	for i := limit; i > 0; i-- {
		if text[i-1] == '\n' {
			return i
		}
	}
	for i := limit; i < len(text); i++ {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return len(text)
}
