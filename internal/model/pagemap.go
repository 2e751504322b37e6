package model

import "fmt"

// PageRange maps one contiguous byte range of the source text to a
// page number. Ranges are half-open: [Start, End).
type PageRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
	Page  int `json:"page" yaml:"page"`
}

// PageMap is the ingestion-provided mapping from text offsets to page
// numbers. Ranges must be ordered and non-overlapping; gaps are
// permitted and resolve to "page unknown".
type PageMap struct {
	Ranges []PageRange `json:"ranges" yaml:"ranges"`
}

// Validate checks the map against the text it describes. Out-of-bounds,
// inverted, unordered, or overlapping ranges fail fast with
// InvalidInputError rather than being clamped.
func (m PageMap) Validate(textLen int) error {
	prevEnd := 0
	for i, r := range m.Ranges {
		if r.Start < 0 || r.End > textLen {
			return &InvalidInputError{
				Reason: fmt.Sprintf("page map range %d [%d,%d) outside text bounds [0,%d)", i, r.Start, r.End, textLen),
			}
		}
		if r.Start >= r.End {
			return &InvalidInputError{
				Reason: fmt.Sprintf("page map range %d [%d,%d) is empty or inverted", i, r.Start, r.End),
			}
		}
		if r.Start < prevEnd {
			return &InvalidInputError{
				Reason: fmt.Sprintf("page map range %d [%d,%d) overlaps or precedes previous range", i, r.Start, r.End),
			}
		}
		prevEnd = r.End
	}
	return nil
}

// PageFor resolves an offset to a page number, or nil when the offset
// falls into a gap. Pages are never fabricated.
func (m PageMap) PageFor(offset int) *int {
	for _, r := range m.Ranges {
		if offset >= r.Start && offset < r.End {
			page := r.Page
			return &page
		}
	}
	return nil
}

// Slice returns the portion of the map covering [start, end), with
// offsets re-based to start. Used when a large document is chunked.
func (m PageMap) Slice(start, end int) PageMap {
	var out PageMap
	for _, r := range m.Ranges {
		if r.End <= start || r.Start >= end {
			continue
		}
		s, e := r.Start, r.End
		if s < start {
			s = start
		}
		if e > end {
			e = end
		}
		out.Ranges = append(out.Ranges, PageRange{Start: s - start, End: e - start, Page: r.Page})
	}
	return out
}
