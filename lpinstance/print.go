package lpinstance

import (
	"fmt"
	"strings"

	"github.com/Tarheel-Formal-Methods/hylaa/glpk"
)

// String renders the current problem for diagnostics: the warm-start
// status of every column, then one line per row with its status, its dense
// coefficient vector, and its bound. The output is meant for humans, not
// for parsing.
func (li *LPInstance) String() string {
	if li.closed {
		return "lp instance (closed)"
	}

	rows := li.prob.NumRows()
	cols := li.prob.NumCols()

	var b strings.Builder
	fmt.Fprintf(&b, "lp instance: %d columns (variables), %d rows (constraints)\n", cols, rows)

	// Column statuses head the dump so each status sits above its column.
	b.WriteString("   ")
	for j := 1; j <= cols; j++ {
		fmt.Fprintf(&b, "%6s ", li.prob.ColStat(j))
	}
	b.WriteByte('\n')

	dense := make([]float64, cols+1)
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&b, "%2s ", li.prob.RowStat(i))

		for k := range dense {
			dense[k] = 0
		}
		ind, val := li.prob.MatRow(i)
		for k, col := range ind {
			dense[col] = val[k]
		}

		for j := 1; j <= cols; j++ {
			fmt.Fprintf(&b, "%6.3g ", dense[j])
		}

		switch li.prob.RowType(i) {
		case glpk.Fixed:
			fmt.Fprintf(&b, " == %g", li.prob.RowUB(i))
		case glpk.UpperBound:
			fmt.Fprintf(&b, " <= %g", li.prob.RowUB(i))
		default:
			b.WriteString(" <?> (unknown bounds)")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
