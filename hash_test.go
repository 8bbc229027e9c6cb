package probemap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStringRange(t *testing.T) {
	for _, m := range []int{53, 107, 211} {
		for i := 0; i < 200; i++ {
			h := hashString(fmt.Sprintf("key-%d", i), hashPrimeA, m)
			assert.GreaterOrEqual(t, h, 0)
			assert.Less(t, h, m)
		}
	}
}

func TestHashStringDeterministic(t *testing.T) {
	assert.Equal(t, hashString("alpha", hashPrimeA, 53), hashString("alpha", hashPrimeA, 53))
	assert.Equal(t, 0, hashString("", hashPrimeA, 53))
}

func TestHashStringLongKeyNoOverflow(t *testing.T) {
	// Without incremental modulo reduction a key this long would overflow
	// any fixed-width accumulator. The hash must stay in range and agree
	// with itself across calls.
	long := strings.Repeat("abcdefgh", 100_000)
	h := hashString(long, hashPrimeA, 53)
	assert.GreaterOrEqual(t, h, 0)
	assert.Less(t, h, 53)
	assert.Equal(t, h, hashString(long, hashPrimeA, 53))
}

func TestProbeSeqStrideNeverZero(t *testing.T) {
	for _, m := range []int{2, 53, 107} {
		for i := 0; i < 500; i++ {
			seq := newProbeSeq(fmt.Sprintf("key-%d", i), m)
			assert.GreaterOrEqual(t, seq.stride, 1)
			assert.Less(t, seq.stride, m, "stride must be a nonzero residue mod %d", m)
		}
	}
}

func TestProbeSeqCoversAllSlots(t *testing.T) {
	// With a prime bucket count and a stride in [1, m-1], the sequence
	// must visit every slot exactly once per cycle.
	const m = 53
	seq := newProbeSeq("coverage", m)

	seen := make(map[int]bool, m)
	for i := 0; i < m; i++ {
		require.False(t, seen[seq.idx], "slot %d visited twice", seq.idx)
		seen[seq.idx] = true
		seq.next()
	}
	assert.Len(t, seen, m)
}
