package memory

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeRejectsEmptyLog(t *testing.T) {
	_, err := Canonicalize(nil)
	assert.ErrorIs(t, err, ErrEmptyLog)
}

func TestCanonicalizeRejectsUnwrittenRead(t *testing.T) {
	ops := []Op{
		{Timestamp: 0, IsRead: true, Addr: Address{Context: 1}},
	}

	_, err := Canonicalize(ops)
	assert.ErrorIs(t, err, ErrUnwrittenRead)
}

func TestCanonicalizeSortsByAddressThenTime(t *testing.T) {
	ops := []Op{
		{Timestamp: 0, Addr: Address{Context: 1, Segment: 0, Virtual: 0}},
		{Timestamp: 1, Addr: Address{Context: 0, Segment: 1, Virtual: 5}},
		{Timestamp: 2, Addr: Address{Context: 0, Segment: 1, Virtual: 2}},
		{Timestamp: 3, IsRead: true, Addr: Address{Context: 0, Segment: 1, Virtual: 2}},
	}

	sorted, err := Canonicalize(ops)
	require.NoError(t, err)
	//
	expected := []uint64{2, 3, 1, 0}
	for i, timestamp := range expected {
		assert.Equal(t, timestamp, sorted[i].Timestamp, "row %d", i)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for i := 0; i < 50; i++ {
		n := 2 + rng.IntN(200)
		ops := RandomOps(n, rng)

		sorted, err := Canonicalize(ops)
		require.NoError(t, err)

		resorted, err := Canonicalize(sorted)
		require.NoError(t, err)
		assert.Equal(t, sorted, resorted)
	}
}

// Exactly one of the four flag states must hold per transition, respecting
// the priority context > segment > virtual > unchanged.
func TestFirstChangeFlagPriority(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 50; i++ {
		n := 2 + rng.IntN(200)
		ops := RandomOps(n, rng)

		sorted, err := Canonicalize(ops)
		require.NoError(t, err)

		contextFC, segmentFC, virtualFC := firstChangeFlags(sorted)

		for row := 0; row < n-1; row++ {
			cur, next := sorted[row].Addr, sorted[row+1].Addr
			ctx, seg, virt := !contextFC[row].IsZero(), !segmentFC[row].IsZero(), !virtualFC[row].IsZero()

			switch {
			case cur.Context != next.Context:
				assert.True(t, ctx && !seg && !virt, "row %d: context must take priority", row)
			case cur.Segment != next.Segment:
				assert.True(t, !ctx && seg && !virt, "row %d: segment must take priority", row)
			case cur.Virtual != next.Virtual:
				assert.True(t, !ctx && !seg && virt, "row %d: virtual change expected", row)
			default:
				assert.True(t, !ctx && !seg && !virt, "row %d: address unchanged", row)
			}
		}
		// Last row has no successor
		assert.True(t, contextFC[n-1].IsZero())
		assert.True(t, segmentFC[n-1].IsZero())
		assert.True(t, virtualFC[n-1].IsZero())
	}
}

func TestReplayReturnsFinalContents(t *testing.T) {
	var first, second Word

	first[0].SetUint64(5)
	second[0].SetUint64(9)

	addr := Address{Context: 1, Segment: 2, Virtual: 3}
	ops := []Op{
		{Timestamp: 0, Addr: addr, Value: first},
		{Timestamp: 1, IsRead: true, Addr: addr, Value: first},
		{Timestamp: 2, Addr: addr, Value: second},
	}

	contents, err := Replay(ops)
	require.NoError(t, err)
	assert.Equal(t, second, contents[addr])
}
