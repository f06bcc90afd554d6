package fmqe

// resolve eliminates x between pivot row src (with nonzero coefficient
// aSrc on x) and target row dst, replacing dst by dst - (aDst/aSrc)*src.
// It is a no-op if dst is no longer alive. same_sign is derived per
// SPEC_FULL.md section 4.3: the objective is always treated as
// opposite-sign, which is how strictness leaks into the returned bound.
func (e *Engine) resolve(src RowID, aSrc *Rational, dst RowID, x VarID) {
	e.assertf(!rIsZero(aSrc), "resolve: zero pivot coefficient")
	e.assertf(src != dst, "resolve: src == dst")

	if !e.rows[dst].alive {
		return
	}
	aDst := e.rows[dst].coefficient(x)
	if rIsZero(aDst) {
		return
	}

	sameSign := dst != ObjectiveRow && (aSrc.Sign() > 0) == (aDst.Sign() > 0)
	c := rNeg(rQuo(aDst, aSrc))
	e.mulAdd(sameSign, dst, c, src)
}
