package jump

// Viewport is the visible window of the host display.
type Viewport struct {
	Top    int // first visible line number
	Height int // number of visible lines
}

// Contains reports whether line number n falls inside the viewport. The
// bottom bound is inclusive, so Height+1 line numbers qualify.
func (v Viewport) Contains(n int) bool {
	return n >= v.Top && n <= v.Top+v.Height
}

// SelectInitial picks the filtered line and match the cursor starts on.
//
// Lines inside the viewport are preferred when there are any. Among the
// candidates the line whose best match scores highest wins; equal scores go
// to the line closest to cursorLine, and remaining ties keep the earliest
// line.
func SelectInitial(filtered []FilteredLine, cursorLine int, vp Viewport) (int, int, error) {
	if len(filtered) == 0 {
		return 0, 0, ErrNoMatches
	}

	candidates := make([]FilteredLine, 0, len(filtered))
	for _, l := range filtered {
		if vp.Contains(l.Number) {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		candidates = filtered
	}

	best := candidates[0]
	bestMatch := best.BestMatch()
	bestScore := best.Matches[bestMatch].Score

	for _, l := range candidates[1:] {
		m := l.BestMatch()
		score := l.Matches[m].Score

		closer := distance(l.Number, cursorLine) < distance(best.Number, cursorLine)
		if score > bestScore || (score == bestScore && closer) {
			best, bestMatch, bestScore = l, m, score
		}
	}

	return best.FilterIndex, bestMatch, nil
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
