package fmqe

// boundCandidate is one live row that could serve as x's bound: the value x
// would take if the row were made tight, plus whether the row is strict.
type boundCandidate struct {
	row    RowID
	coeff  *Rational
	value  *Rational
	strict bool
}

// findBound walks rowsOf(x), deduplicating via a local visited set, and
// splits live rows into bound candidates (sign(coeff) == isPos, or an
// equality) and the below bucket (everything else). It returns the
// tightest candidate as the pivot and every other candidate in above, so
// the caller can resolve against all of them, not just the runner-up
// (SPEC_FULL.md section 9, open question 2).
func (e *Engine) findBound(x VarID, isPos bool) (found bool, pivot RowID, pivotCoeff *Rational, above, below []RowID) {
	visited := make(map[RowID]bool, len(e.rowsOf[x]))
	var candidates []boundCandidate

	for _, rid := range e.rowsOf[x] {
		if visited[rid] {
			continue
		}
		visited[rid] = true

		row := &e.rows[rid]
		if !row.alive {
			continue
		}
		a := row.coefficient(x)
		if rIsZero(a) {
			continue
		}

		if (a.Sign() > 0) == isPos || row.kind == Eq {
			val := rSub(e.model[x], rQuo(row.value, a))
			candidates = append(candidates, boundCandidate{row: rid, coeff: a, value: val, strict: row.kind == Lt})
		} else {
			below = append(below, rid)
		}
	}

	if len(candidates) == 0 {
		return false, InvalidRowID, nil, nil, below
	}

	winner := 0
	for i := 1; i < len(candidates); i++ {
		if tighter(candidates[i], candidates[winner], isPos) {
			winner = i
		}
	}

	above = make([]RowID, 0, len(candidates)-1)
	for i, c := range candidates {
		if i != winner {
			above = append(above, c.row)
		}
	}

	return true, candidates[winner].row, candidates[winner].coeff, above, below
}

// tighter reports whether candidate b should replace the current best cur.
// When isPos, smaller candidate values are tighter (least upper bound);
// otherwise larger values are tighter (greatest lower bound). Ties prefer
// the strict row.
func tighter(b, cur boundCandidate, isPos bool) bool {
	cmp := b.value.Cmp(cur.value)
	if isPos {
		if cmp != 0 {
			return cmp < 0
		}
	} else {
		if cmp != 0 {
			return cmp > 0
		}
	}
	return b.strict && !cur.strict
}
