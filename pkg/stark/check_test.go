package stark

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ed255/plonky2/pkg/circuit"
	"github.com/ed255/plonky2/pkg/field"
	"github.com/ed255/plonky2/pkg/trace"
)

// counterSystem is a minimal constraint system used to exercise the checking
// drivers: a single column which starts at zero and increments by one on
// every transition.
type counterSystem struct{}

func (s counterSystem) Columns() int           { return 1 }
func (s counterSystem) PublicInputs() int      { return 0 }
func (s counterSystem) ConstraintDegree() uint { return 2 }

func (s counterSystem) EvalPacked(vars Vars[field.Packed], yield *Consumer[field.Packed]) {
	evalCounter(vars, yield)
}

func (s counterSystem) EvalCircuit(builder *circuit.Builder, vars Vars[circuit.Variable], yield *Consumer[circuit.Variable]) {
	evalCounter(vars, yield)
}

func evalCounter[E field.Element[E]](vars Vars[E], yield *Consumer[E]) {
	one := vars.Local[0].One()

	yield.ConstraintTransition("counter:step",
		vars.Next[0].Sub(vars.Local[0]).Sub(one))
	// On the wrap-around pair the next row is the first row.
	yield.ConstraintLastRow("counter:boundary", vars.Next[0])
}

func counterTrace(t *testing.T, values ...uint64) *trace.ArrayTrace {
	data := make([]goldilocks.Element, len(values))
	for i, v := range values {
		data[i].SetUint64(v)
	}

	tr, err := trace.NewArrayTrace([]trace.ArrayTraceColumn{trace.NewColumn("counter", data)})
	require.NoError(t, err)

	return tr
}

func TestCheckAcceptsCounter(t *testing.T) {
	tr := counterTrace(t, 0, 1, 2, 3, 4, 5)

	assert.NoError(t, Check(counterSystem{}, tr))
	assert.NoError(t, CheckCircuit(counterSystem{}, tr))
}

// The counter wraps at an arbitrary height, in particular one not divisible
// by the packed width.
func TestCheckAcceptsUnevenHeight(t *testing.T) {
	tr := counterTrace(t, 0, 1, 2, 3, 4, 5, 6)

	assert.NoError(t, Check(counterSystem{}, tr))
	assert.NoError(t, CheckCircuit(counterSystem{}, tr))
}

func TestCheckRejectsBrokenStep(t *testing.T) {
	tr := counterTrace(t, 0, 1, 2, 9, 4, 5)

	for _, err := range []error{Check(counterSystem{}, tr), CheckCircuit(counterSystem{}, tr)} {
		var violation *Violation

		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "counter:step", violation.Handle)
		assert.Equal(t, 2, violation.Row)
	}
}

func TestCheckRejectsBrokenBoundary(t *testing.T) {
	tr := counterTrace(t, 1, 2, 3, 4)

	for _, err := range []error{Check(counterSystem{}, tr), CheckCircuit(counterSystem{}, tr)} {
		var violation *Violation

		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "counter:boundary", violation.Handle)
		assert.Equal(t, 3, violation.Row)
	}
}

// The step constraint must not be evaluated on the wrap-around pair, and the
// boundary constraint only there.
func TestCheckSingleRowTrace(t *testing.T) {
	tr := counterTrace(t, 0)

	assert.NoError(t, Check(counterSystem{}, tr))
	assert.NoError(t, CheckCircuit(counterSystem{}, tr))
}

func TestCheckRejectsWidthMismatch(t *testing.T) {
	tr, err := trace.NewArrayTrace([]trace.ArrayTraceColumn{
		trace.NewColumn("a", make([]goldilocks.Element, 2)),
		trace.NewColumn("b", make([]goldilocks.Element, 2)),
	})
	require.NoError(t, err)

	assert.Error(t, Check(counterSystem{}, tr))
	assert.Error(t, CheckCircuit(counterSystem{}, tr))
}

func TestCheckDegreeCounter(t *testing.T) {
	observed, err := CheckDegree(counterSystem{})
	require.NoError(t, err)
	assert.Equal(t, uint(1), observed)
}

// cubicSystem declares a degree bound its only constraint exceeds.
type cubicSystem struct{}

func (s cubicSystem) Columns() int           { return 1 }
func (s cubicSystem) PublicInputs() int      { return 0 }
func (s cubicSystem) ConstraintDegree() uint { return 2 }

func (s cubicSystem) EvalPacked(vars Vars[field.Packed], yield *Consumer[field.Packed]) {
	yield.Constraint("cubic", vars.Local[0].Mul(vars.Local[0]).Mul(vars.Local[0]))
}

func (s cubicSystem) EvalCircuit(builder *circuit.Builder, vars Vars[circuit.Variable], yield *Consumer[circuit.Variable]) {
	yield.Constraint("cubic", vars.Local[0].Mul(vars.Local[0]).Mul(vars.Local[0]))
}

func TestCheckDegreeRejectsExcess(t *testing.T) {
	_, err := CheckDegree(cubicSystem{})

	var degreeErr *DegreeError

	require.ErrorAs(t, err, &degreeErr)
	assert.Equal(t, "cubic", degreeErr.Handle)
	assert.Equal(t, uint(3), degreeErr.Degree)
	assert.Equal(t, uint(2), degreeErr.Bound)
}

func TestAppliesAt(t *testing.T) {
	assert.True(t, AppliesAt(EveryRow, 0, 4))
	assert.True(t, AppliesAt(EveryRow, 3, 4))
	assert.True(t, AppliesAt(Transition, 2, 4))
	assert.False(t, AppliesAt(Transition, 3, 4))
	assert.False(t, AppliesAt(LastRow, 2, 4))
	assert.True(t, AppliesAt(LastRow, 3, 4))
}

func TestViolationMessage(t *testing.T) {
	err := &Violation{"memory:range_check:value", 7}
	assert.Equal(t, `constraint "memory:range_check:value" does not hold (row 7)`, err.Error())
}
