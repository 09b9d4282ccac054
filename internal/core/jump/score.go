package jump

// Score returns the contiguity score of a match.
//
// The total starts at 1 and grows by 1 for every pair of neighbouring
// positions that are exactly one character apart. It is a single counter for
// the whole match and is not reset between runs. The result is the total
// divided by queryLen, so a fully contiguous match scores exactly 1 and every
// gap lowers the score towards 1/queryLen.
//
// The arithmetic is relied upon by best match selection and must not be
// changed to a per-run measure.
func Score(positions []int, queryLen int) float64 {
	if queryLen <= 0 || len(positions) == 0 {
		return 0
	}

	total := 1
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] == 1 {
			total++
		}
	}

	return float64(total) / float64(queryLen)
}
