package jump

// Navigator holds the selected filtered line and match. All transitions
// clamp at the first and last filtered line.
type Navigator struct {
	counts      []int // match count per filtered line
	filterIndex int
	matchIndex  int
}

// NewNavigator returns a navigator over filtered positioned at
// (filterIndex, matchIndex). Out of range indices are clamped.
func NewNavigator(filtered []FilteredLine, filterIndex, matchIndex int) Navigator {
	counts := make([]int, len(filtered))
	for i, l := range filtered {
		counts[i] = len(l.Matches)
	}

	n := Navigator{counts: counts}
	if len(counts) == 0 {
		return n
	}

	n.filterIndex = clamp(filterIndex, 0, len(counts)-1)
	n.matchIndex = clamp(matchIndex, 0, counts[n.filterIndex]-1)
	return n
}

// Empty reports whether there is nothing to navigate.
func (n Navigator) Empty() bool {
	return len(n.counts) == 0
}

// Position returns the selected filter index and match index.
func (n Navigator) Position() (int, int) {
	return n.filterIndex, n.matchIndex
}

// LineUp moves to the first match of the previous filtered line.
func (n *Navigator) LineUp() error {
	if n.Empty() {
		return ErrNoMatches
	}
	n.filterIndex = max(n.filterIndex-1, 0)
	n.matchIndex = 0
	return nil
}

// LineDown moves to the first match of the next filtered line.
func (n *Navigator) LineDown() error {
	if n.Empty() {
		return ErrNoMatches
	}
	n.filterIndex = min(n.filterIndex+1, len(n.counts)-1)
	n.matchIndex = 0
	return nil
}

// MatchNext moves to the next match, continuing on the next filtered line
// after the last match of the current one. On the last line this wraps to
// that line's first match.
func (n *Navigator) MatchNext() error {
	if n.Empty() {
		return ErrNoMatches
	}
	n.matchIndex++
	if n.matchIndex >= n.counts[n.filterIndex] {
		return n.LineDown()
	}
	return nil
}

// MatchPrev moves to the previous match, continuing on the last match of the
// previous filtered line. On the first line this lands on its own last match.
func (n *Navigator) MatchPrev() error {
	if n.Empty() {
		return ErrNoMatches
	}
	n.matchIndex--
	if n.matchIndex < 0 {
		if err := n.LineUp(); err != nil {
			return err
		}
		n.matchIndex = n.counts[n.filterIndex] - 1
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
