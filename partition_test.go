package minhash

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestBlocks(t *testing.T) {
	testCases := []struct {
		n, b         int
		expectResult []block
	}{
		{1, 1, []block{{0, 1}}},
		{10, 1, []block{{0, 10}}},
		{10, 10, []block{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}, {8, 1}, {9, 1}}},
		{10, 3, []block{{0, 4}, {4, 3}, {7, 3}}},
		{11, 3, []block{{0, 4}, {4, 4}, {8, 3}}},
		{12, 4, []block{{0, 3}, {3, 3}, {6, 3}, {9, 3}}},
	}

	for i, testCase := range testCases {
		actualResult := blocks(testCase.n, testCase.b)
		assert.Equalf(t, testCase.expectResult, actualResult, "case %d", i)
	}
}

// Blocks must tile [0, n) in order, differ in size by at most one, and put the larger blocks first.
func TestBlocksCover(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for b := 1; b <= n; b++ {
			parts := blocks(n, b)
			assert.Equal(t, b, len(parts))

			next := 0
			for id, part := range parts {
				assert.Equal(t, next, part.start)
				if id < n%b {
					assert.Equal(t, n/b+1, part.len)
				} else {
					assert.Equal(t, n/b, part.len)
				}
				next = part.end()
			}
			assert.Equal(t, n, next)
		}
	}
}
