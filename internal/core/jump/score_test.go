package jump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
		queryLen  int
		want      float64
	}{
		{name: "fully contiguous", positions: []int{1, 2, 3}, queryLen: 3, want: 1},
		{name: "single character", positions: []int{5}, queryLen: 1, want: 1},
		{name: "fully fragmented", positions: []int{1, 3, 5}, queryLen: 3, want: 1.0 / 3},
		{name: "two runs", positions: []int{1, 2, 4, 5}, queryLen: 4, want: 0.75},
		{name: "counter is not reset between runs", positions: []int{1, 2, 3, 7, 8, 9}, queryLen: 6, want: 5.0 / 6},
		{name: "no positions", positions: nil, queryLen: 3, want: 0},
		{name: "zero query length", positions: []int{1}, queryLen: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.positions, tt.queryLen), 1e-9)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	lines := []string{"fbo", "f-b-o", "fb-o", "ffbboo", "xfxbxox", "fbofbo"}

	for _, raw := range lines {
		for _, m := range ComputeMatches(NewLine(raw, 1), "fbo") {
			assert.Greater(t, m.Score, 0.0, raw)
			assert.LessOrEqual(t, m.Score, 1.0, raw)

			contiguous := m.Positions[2]-m.Positions[0] == 2
			assert.Equal(t, contiguous, m.Score == 1.0, "line %q positions %v", raw, m.Positions)
		}
	}
}
