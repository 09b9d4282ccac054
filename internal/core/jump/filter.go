package jump

import "unicode/utf8"

// Match is one subsequence occurrence of the query within a line.
type Match struct {
	Positions []int   `json:"positions"` // 1-based, strictly increasing
	Score     float64 `json:"score"`
}

// FilteredLine is a line with at least one match for the current query.
type FilteredLine struct {
	Line
	Matches     []Match
	FilterIndex int // dense 0-based position among filtered lines
}

// ComputeMatches returns a fresh set of scored matches of query in line.
func ComputeMatches(line Line, query string) []Match {
	found := FindMatches(line, query)
	if len(found) == 0 {
		return nil
	}

	queryLen := utf8.RuneCountInString(query)
	matches := make([]Match, len(found))
	for i, positions := range found {
		matches[i] = Match{
			Positions: positions,
			Score:     Score(positions, queryLen),
		}
	}
	return matches
}

// Filter matches query against every line and returns the lines with at
// least one match, in document order. An empty query yields no lines.
func Filter(lines []Line, query string) []FilteredLine {
	if query == "" {
		return nil
	}

	var filtered []FilteredLine
	for _, l := range lines {
		matches := ComputeMatches(l, query)
		if len(matches) == 0 {
			continue
		}
		filtered = append(filtered, FilteredLine{
			Line:        l,
			Matches:     matches,
			FilterIndex: len(filtered),
		})
	}
	return filtered
}

// BestMatch returns the index of the highest scoring match. Ties keep the
// lowest index.
func (f FilteredLine) BestMatch() int {
	best := 0
	for i := range f.Matches {
		if f.Matches[i].Score > f.Matches[best].Score {
			best = i
		}
	}
	return best
}
