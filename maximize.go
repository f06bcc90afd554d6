package fmqe

type trailEntry struct {
	x     VarID
	pivot RowID
}

// Maximize resolves the objective's variables out one at a time against
// their tightest model bound until the objective is variable-free, then
// repairs the model by walking the bound trail in reverse.
//
// Precondition: the current model satisfies every live constraint. If the
// objective is unbounded in the direction of some variable, Maximize
// returns PosInf() and leaves the model as it stood after whatever prefix
// of variables had already been resolved out.
func (e *Engine) Maximize() ExtendedRational {
	var trail []trailEntry

	for len(e.rows[ObjectiveRow].vars) > 0 {
		obj := &e.rows[ObjectiveRow]
		last := obj.vars[len(obj.vars)-1]
		x, cx := last.ID, last.Coeff
		isPos := cx.Sign() > 0

		found, pivot, aPivot, above, below := e.findBound(x, isPos)
		if !found {
			return PosInf()
		}

		e.logger.Printf("fmqe: maximize pivot var=%d row=%d", x, pivot)

		for _, rid := range above {
			e.resolve(pivot, aPivot, rid, x)
		}
		for _, rid := range below {
			e.resolve(pivot, aPivot, rid, x)
		}

		c := rNeg(rQuo(cx, aPivot))
		e.mulAdd(false, ObjectiveRow, c, pivot)
		e.rows[pivot].alive = false

		trail = append(trail, trailEntry{x: x, pivot: pivot})
	}

	obj := &e.rows[ObjectiveRow]
	var result ExtendedRational
	if obj.kind == Lt {
		result = Strict(obj.value)
	} else {
		result = Finite(obj.value)
	}

	e.repairModel(trail)

	return result
}

// repairModel walks the bound trail most-recently-resolved first,
// reconstructing each eliminated variable's value from its pivot row while
// treating every other variable in that row as already correct (true
// because any other variable the pivot row mentions was either eliminated
// later - already repaired by this point in the reverse walk - or was
// never eliminated at all). Strict pivots get perturbed by a small epsilon
// in the direction the pivot's sign on x demands.
func (e *Engine) repairModel(trail []trailEntry) {
	for i := len(trail) - 1; i >= 0; i-- {
		x := trail[i].x
		pivot := &e.rows[trail[i].pivot]

		aX := pivot.coefficient(x)
		residual := new(Rational).Set(pivot.constant)
		for _, m := range pivot.vars {
			if m.ID == x {
				continue
			}
			residual = rAdd(residual, rMul(m.Coeff, e.model[m.ID]))
		}
		newVal := rNeg(rQuo(residual, aX))

		if pivot.kind == Lt {
			old := e.model[x]
			diff := rSub(old, newVal)
			if diff.Sign() < 0 {
				diff = rNeg(diff)
			}
			eps := rQuo(diff, Rint(2))
			if eps.Cmp(Rint(1)) > 0 {
				eps = Rint(1)
			}
			if aX.Sign() < 0 {
				newVal = rAdd(newVal, eps)
			} else {
				newVal = rSub(newVal, eps)
			}
		}

		e.model[x] = newVal

		for _, rid := range e.rowsOf[x] {
			e.rows[rid].value = evaluate(&e.rows[rid], e.model)
		}
	}
}
