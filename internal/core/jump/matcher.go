package jump

// FindMatches returns the character positions of every subsequence
// occurrence of query in line.Lower. Positions are 1-based rune indices.
//
// Every index whose character equals the first query character starts one
// greedy walk. The walk takes the first occurrence of each following query
// character and never backtracks, so one start index yields at most one
// match and a more contiguous alternative from the same start can be missed.
// This trades match quality for a predictable per-keystroke cost.
//
// The query is compared as given. Callers that want case-insensitive matching
// must lowercase it first.
func FindMatches(line Line, query string) [][]int {
	q := []rune(query)
	if len(q) == 0 {
		return nil
	}

	text := line.runes()
	var out [][]int
	for start, r := range text {
		if r != q[0] {
			continue
		}
		if positions, ok := walk(text, q, start); ok {
			out = append(out, positions)
		}
	}
	return out
}

// walk consumes q left to right starting at text[start]. It fails when the
// text runs out before the query does.
func walk(text, q []rune, start int) ([]int, bool) {
	positions := make([]int, 0, len(q))
	cursor := start

	for _, want := range q {
		found := -1
		for i := cursor; i < len(text); i++ {
			if text[i] == want {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		positions = append(positions, found+1)
		cursor = found + 1
	}

	return positions, true
}
