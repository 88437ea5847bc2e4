package motifs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairCounts_AddNormalizesOrder(t *testing.T) {
	pc := newPairCounts()
	pc.add(3, 1)
	pc.add(1, 3)
	pc.add(1, 3)

	assert.Equal(t, 1, pc.len())
	assert.Equal(t, int64(3), pc.m[pairKey{a: 1, b: 3}])
}

func TestPairCounts_DuplicatesSum(t *testing.T) {
	pc := newPairCounts()
	pc.add(0, 1)
	pc.add(0, 2)
	pc.add(1, 2)
	pc.add(0, 1)

	assert.Equal(t, 3, pc.len())
	assert.Equal(t, int64(2), pc.m[pairKey{a: 0, b: 1}])
	assert.Equal(t, int64(1), pc.m[pairKey{a: 0, b: 2}])
	assert.Equal(t, int64(1), pc.m[pairKey{a: 1, b: 2}])
}
