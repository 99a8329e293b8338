package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMatch(t *testing.T) {
	percent, missing := ComputeMatch([]uint{1, 2, 3}, []uint{1, 2})
	assert.InDelta(t, 2.0/3.0, percent, 1e-9)
	assert.Equal(t, []uint{3}, missing)
}

func TestComputeMatchFull(t *testing.T) {
	percent, missing := ComputeMatch([]uint{1, 2}, []uint{2, 1, 5})
	assert.Equal(t, 1.0, percent)
	assert.Empty(t, missing)
}

func TestComputeMatchEmptyAvailable(t *testing.T) {
	// A supplied-but-empty set scores 0.0; "not supplied" is handled by the
	// pipeline and never reaches this function.
	percent, missing := ComputeMatch([]uint{4, 2}, nil)
	assert.Equal(t, 0.0, percent)
	assert.Equal(t, []uint{2, 4}, missing)
}

func TestComputeMatchDegenerateRecipe(t *testing.T) {
	percent, missing := ComputeMatch(nil, []uint{1, 2})
	assert.Equal(t, 0.0, percent)
	assert.Empty(t, missing)
}

func TestComputeMatchBounds(t *testing.T) {
	cases := [][2][]uint{
		{{1}, {}},
		{{1, 2, 3, 4}, {4}},
		{{5, 6}, {5, 6, 7, 8}},
	}
	for _, c := range cases {
		percent, _ := ComputeMatch(c[0], c[1])
		assert.GreaterOrEqual(t, percent, 0.0)
		assert.LessOrEqual(t, percent, 1.0)
	}
}
