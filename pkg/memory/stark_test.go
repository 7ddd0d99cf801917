package memory

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ed255/plonky2/pkg/stark"
	"github.com/ed255/plonky2/pkg/trace"
)

func TestStarkDeclaration(t *testing.T) {
	var system Stark

	assert.Equal(t, NumColumns, system.Columns())
	assert.Equal(t, 0, system.PublicInputs())
	assert.Equal(t, uint(3), system.ConstraintDegree())
}

// The declared degree bound must be tight: the read-consistency constraints
// reach degree three and nothing exceeds it.
func TestStarkDegree(t *testing.T) {
	var system Stark

	observed, err := stark.CheckDegree(system)
	require.NoError(t, err)
	assert.Equal(t, uint(3), observed)
}

func TestScenarioValidLog(t *testing.T) {
	var system Stark

	tr, err := system.GenerateTrace(scenarioOps(5))
	require.NoError(t, err)

	assert.NoError(t, stark.Check(system, tr))
	assert.NoError(t, stark.CheckCircuit(system, tr))
}

func TestScenarioLyingRead(t *testing.T) {
	var system Stark

	tr, err := system.GenerateTrace(scenarioOps(6))
	require.NoError(t, err)
	// Both evaluators must reject, identifying the limb-0 read consistency
	// constraint.
	for _, err := range []error{stark.Check(system, tr), stark.CheckCircuit(system, tr)} {
		var violation *stark.Violation

		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "memory:read_consistency:0", violation.Handle)
		assert.Equal(t, 0, violation.Row)
	}
}

func TestSingleOperationLog(t *testing.T) {
	var (
		system Stark
		value  Word
	)

	value[0].SetUint64(100)
	ops := []Op{{Timestamp: 0, Addr: Address{Context: 3}, Value: value}}

	tr, err := system.GenerateTrace(ops)
	require.NoError(t, err)

	assert.NoError(t, stark.Check(system, tr))
	assert.NoError(t, stark.CheckCircuit(system, tr))
}

// Both evaluators must accept every honestly generated log.  Log sizes span
// the full 2..1000 range of the acceptance criteria.
func TestRandomLogsAccepted(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))

	var system Stark

	for i := 0; i < 100; i++ {
		n := 2 + rng.IntN(999)
		ops := RandomOps(n, rng)

		tr, err := system.GenerateTrace(ops)
		require.NoError(t, err, "log %d (n=%d)", i, n)

		assert.NoError(t, stark.Check(system, tr), "packed, log %d (n=%d)", i, n)
		assert.NoError(t, stark.CheckCircuit(system, tr), "circuit, log %d (n=%d)", i, n)
	}
}

// Injecting exactly one fault into an honest trace must be rejected by both
// evaluators for the same reason.
func TestRandomLogsSingleFaultRejected(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 13))

	var system Stark

	for i := 0; i < 100; i++ {
		n := 2 + rng.IntN(200)
		ops := RandomOps(n, rng)

		tr, err := system.GenerateTrace(ops)
		require.NoError(t, err)
		//
		faulty := tr.Clone()
		switch i % 3 {
		case 0:
			injectFlagFlip(faulty, rng)
		case 1:
			if !injectValueSwap(faulty) {
				injectFlagFlip(faulty, rng)
			}
		default:
			if !injectTimestampShift(faulty) {
				injectFlagFlip(faulty, rng)
			}
		}
		//
		packedErr := stark.Check(system, faulty)
		circuitErr := stark.CheckCircuit(system, faulty)

		require.Error(t, packedErr, "packed, log %d (n=%d)", i, n)
		require.Error(t, circuitErr, "circuit, log %d (n=%d)", i, n)
		// Same violation from both evaluators
		var packed, circ *stark.Violation

		require.ErrorAs(t, packedErr, &packed)
		require.ErrorAs(t, circuitErr, &circ)
		assert.Equal(t, packed.Handle, circ.Handle)
		assert.Equal(t, packed.Row, circ.Row)
	}
}

// injectFlagFlip flips one first-change flag on a transition row.  Clearing a
// fired flag turns a genuine address change into a claimed-unchanged one;
// setting an unfired flag either breaks booleanity of the derived
// address-unchanged value or mismatches the committed range check.
func injectFlagFlip(tr *trace.ArrayTrace, rng *rand.Rand) {
	one := goldilocks.One()
	flags := []int{ContextFirstChange, SegmentFirstChange, VirtualFirstChange}
	row := rng.IntN(tr.Height() - 1)
	col := flags[rng.IntN(len(flags))]
	//
	flipped := tr.Get(col, row)
	flipped.Sub(&one, &flipped)
	tr.Set(col, row, flipped)
}

// injectValueSwap perturbs the limb-0 value of a read row whose address is
// unchanged from its predecessor, returning false when the trace has no such
// row.
func injectValueSwap(tr *trace.ArrayTrace) bool {
	one := goldilocks.One()

	for row := 1; row < tr.Height(); row++ {
		isRead := tr.Get(SortedIsRead, row)
		ctxFC := tr.Get(ContextFirstChange, row-1)
		segFC := tr.Get(SegmentFirstChange, row-1)
		virtFC := tr.Get(VirtualFirstChange, row-1)

		if isRead.IsZero() || !ctxFC.IsZero() || !segFC.IsZero() || !virtFC.IsZero() {
			continue
		}
		//
		value := tr.Get(SortedValueLimb(0), row)
		value.Add(&value, &one)
		tr.Set(SortedValueLimb(0), row, value)

		return true
	}
	//
	return false
}

// injectTimestampShift advances the sorted timestamp of the successor of an
// address-unchanged transition, desynchronising the committed range check.
func injectTimestampShift(tr *trace.ArrayTrace) bool {
	one := goldilocks.One()

	for row := 0; row < tr.Height()-1; row++ {
		ctxFC := tr.Get(ContextFirstChange, row)
		segFC := tr.Get(SegmentFirstChange, row)
		virtFC := tr.Get(VirtualFirstChange, row)

		if !ctxFC.IsZero() || !segFC.IsZero() || !virtFC.IsZero() {
			continue
		}
		//
		timestamp := tr.Get(SortedTimestamp, row+1)
		timestamp.Add(&timestamp, &one)
		tr.Set(SortedTimestamp, row+1, timestamp)

		return true
	}
	//
	return false
}

// Both drivers reject traces whose width disagrees with the declaration.
func TestWidthMismatchRejected(t *testing.T) {
	var system Stark

	column := trace.NewColumn("lonely", make([]goldilocks.Element, 4))
	tr, err := trace.NewArrayTrace([]trace.ArrayTraceColumn{column})
	require.NoError(t, err)

	err = stark.Check(system, tr)
	require.Error(t, err)

	var violation *stark.Violation

	assert.False(t, errors.As(err, &violation), "width mismatch is not a constraint violation")
}
