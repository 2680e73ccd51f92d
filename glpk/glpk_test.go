package glpk_test

import (
	"testing"

	"github.com/Tarheel-Formal-Methods/hylaa/glpk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimplex_TinyLP solves min x subject to 1 <= x <= 5 expressed through
// rows over a free column, exercising the full binding surface end to end.
func TestSimplex_TinyLP(t *testing.T) {
	p := glpk.NewProb()
	defer p.Delete()

	p.SetObjDir(glpk.Min)

	col := p.AddCols(1)
	p.SetColBnds(col, glpk.Free, 0, 0)
	p.SetObjCoef(col, 1)

	first := p.AddRows(2)
	p.SetRowBnds(first, glpk.UpperBound, 0, 5)    //  x <= 5
	p.SetRowBnds(first+1, glpk.UpperBound, 0, -1) // -x <= -1, i.e. x >= 1
	p.SetMatRow(first, []int{col}, []float64{1})
	p.SetMatRow(first+1, []int{col}, []float64{-1})

	require.Equal(t, 1, p.NumCols())
	require.Equal(t, 2, p.NumRows())

	ret := p.Simplex(glpk.SimplexOpts{MsgLev: glpk.MsgOff})
	require.Equal(t, glpk.RetOK, ret, "simplex: %s", ret)
	require.Equal(t, glpk.StatusOpt, p.Status(), "status: %s", p.Status())

	assert.InDelta(t, 1.0, p.ColPrim(col), 1e-9)
	assert.GreaterOrEqual(t, p.ItCnt(), 0)
}

// TestMatRow_RoundTrip verifies sparse row replacement and readback.
func TestMatRow_RoundTrip(t *testing.T) {
	p := glpk.NewProb()
	defer p.Delete()

	p.AddCols(3)
	row := p.AddRows(1)
	p.SetRowBnds(row, glpk.Fixed, 0, 0)
	p.SetMatRow(row, []int{1, 3}, []float64{2.5, -1})

	ind, val := p.MatRow(row)
	require.Len(t, ind, 2)
	require.Len(t, val, 2)

	got := map[int]float64{}
	for k, col := range ind {
		got[col] = val[k]
	}
	assert.Equal(t, map[int]float64{1: 2.5, 3: -1}, got)

	assert.Equal(t, glpk.Fixed, p.RowType(row))
	assert.Equal(t, 0.0, p.RowUB(row))

	// Replacing the row drops the old pattern.
	p.SetMatRow(row, []int{2}, []float64{7})
	ind, val = p.MatRow(row)
	require.Len(t, ind, 1)
	assert.Equal(t, 2, ind[0])
	assert.Equal(t, 7.0, val[0])
}

// TestStatuses_SetGet verifies the warm-start basis status round trip.
func TestStatuses_SetGet(t *testing.T) {
	p := glpk.NewProb()
	defer p.Delete()

	col := p.AddCols(1)
	p.SetColBnds(col, glpk.Free, 0, 0)
	row := p.AddRows(1)
	p.SetRowBnds(row, glpk.UpperBound, 0, 1)
	p.SetMatRow(row, []int{col}, []float64{1})

	p.SetRowStat(row, glpk.StatBasic)
	p.SetColStat(col, glpk.StatNonbasicFree)

	assert.Equal(t, glpk.StatBasic, p.RowStat(row))
	assert.Equal(t, glpk.StatNonbasicFree, p.ColStat(col))
}

// TestDelete_Idempotent verifies that Delete may run twice.
func TestDelete_Idempotent(t *testing.T) {
	p := glpk.NewProb()
	p.Delete()
	p.Delete()
}

// TestStatusStrings spot-checks the fixed diagnostic tables.
func TestStatusStrings(t *testing.T) {
	assert.Contains(t, glpk.RetESing.String(), "singular")
	assert.Contains(t, glpk.RetEItLim.String(), "iteration limit")
	assert.Contains(t, glpk.RetCode(-42).String(), "unknown")

	assert.Equal(t, "solution is optimal", glpk.StatusOpt.String())
	assert.Equal(t, "problem has no feasible solution", glpk.StatusNoFeas.String())
	assert.Contains(t, glpk.Status(99).String(), "unknown")

	assert.Equal(t, "BS", glpk.StatBasic.String())
	assert.Equal(t, "NF", glpk.StatNonbasicFree.String())
	assert.Equal(t, "?(77)?", glpk.VarStat(77).String())
}
