package jump

// HighlightKind tags a highlight span.
type HighlightKind int

const (
	// MatchSpan marks a matched character of any match.
	MatchSpan HighlightKind = iota
	// CursorSpan marks a character of the selected match.
	CursorSpan
)

func (k HighlightKind) String() string {
	switch k {
	case MatchSpan:
		return "match"
	case CursorSpan:
		return "cursor"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k HighlightKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Highlight is a single character span ready for rendering. Line and the
// column range are 0-based; End is exclusive.
type Highlight struct {
	Kind  HighlightKind `json:"kind"`
	Line  int           `json:"line"`
	Start int           `json:"start"`
	End   int           `json:"end"`
}

// ComputeHighlights returns a MatchSpan for every matched character of every
// filtered line, followed by a CursorSpan for every character of the match
// at (filterIndex, matchIndex). Renderers paint in order so cursor spans end
// up on top.
func ComputeHighlights(filtered []FilteredLine, filterIndex, matchIndex int) []Highlight {
	if len(filtered) == 0 {
		return nil
	}

	var highlights []Highlight
	for _, l := range filtered {
		for _, m := range l.Matches {
			highlights = appendSpans(highlights, MatchSpan, l.Number, m.Positions)
		}
	}

	selected := filtered[filterIndex]
	return appendSpans(highlights, CursorSpan, selected.Number, selected.Matches[matchIndex].Positions)
}

func appendSpans(dst []Highlight, kind HighlightKind, number int, positions []int) []Highlight {
	for _, p := range positions {
		dst = append(dst, Highlight{
			Kind:  kind,
			Line:  number - 1,
			Start: p - 1,
			End:   p,
		})
	}
	return dst
}
