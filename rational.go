package fmqe

import (
	"fmt"
	"math/big"
)

// Rational is an exact rational value. It is a thin alias over math/big's
// Rat so the rest of the package can talk about "the" rational type without
// every call site spelling out math/big.
type Rational = big.Rat

// R builds a Rational from a numerator/denominator pair.
func R(num, den int64) *Rational {
	return big.NewRat(num, den)
}

// Rint builds a Rational from an integer.
func Rint(v int64) *Rational {
	return big.NewRat(v, 1)
}

func rZero() *Rational { return new(Rational) }

func rAdd(a, b *Rational) *Rational { return new(Rational).Add(a, b) }
func rSub(a, b *Rational) *Rational { return new(Rational).Sub(a, b) }
func rMul(a, b *Rational) *Rational { return new(Rational).Mul(a, b) }
func rNeg(a *Rational) *Rational    { return new(Rational).Neg(a) }
func rQuo(a, b *Rational) *Rational { return new(Rational).Quo(a, b) }

func rIsZero(a *Rational) bool { return a.Sign() == 0 }

// extKind enumerates the variants of ExtendedRational.
type extKind uint8

const (
	extFinite extKind = iota
	extStrict
	extPosInf
	extNegInf
)

// ExtendedRational augments Rational with +Inf, -Inf, and a symbolic
// infinitesimal used to record a strict (unattained) supremum. It is only
// ever produced by Maximize; the engine's internal arithmetic never touches
// it.
type ExtendedRational struct {
	kind extKind
	val  *Rational
}

// Finite wraps an attained rational value.
func Finite(v *Rational) ExtendedRational {
	return ExtendedRational{kind: extFinite, val: new(Rational).Set(v)}
}

// Strict wraps a rational supremum that is approached but never attained:
// the true value is v minus an infinitesimal epsilon.
func Strict(v *Rational) ExtendedRational {
	return ExtendedRational{kind: extStrict, val: new(Rational).Set(v)}
}

// PosInf reports an unbounded objective.
func PosInf() ExtendedRational { return ExtendedRational{kind: extPosInf} }

// NegInf is never returned by Maximize (an empty objective yields Finite of
// its constant); it is kept for symmetry with Rational's own sign space.
func NegInf() ExtendedRational { return ExtendedRational{kind: extNegInf} }

func (e ExtendedRational) IsPosInf() bool { return e.kind == extPosInf }
func (e ExtendedRational) IsNegInf() bool { return e.kind == extNegInf }
func (e ExtendedRational) IsInfinite() bool {
	return e.kind == extPosInf || e.kind == extNegInf
}
func (e ExtendedRational) IsStrict() bool { return e.kind == extStrict }

// Rat returns the underlying rational bound. It panics if e is infinite;
// callers must check IsInfinite first.
func (e ExtendedRational) Rat() *Rational {
	if e.IsInfinite() {
		panic("fmqe: Rat() called on an infinite ExtendedRational")
	}
	return e.val
}

func (e ExtendedRational) String() string {
	switch e.kind {
	case extPosInf:
		return "+Inf"
	case extNegInf:
		return "-Inf"
	case extStrict:
		return fmt.Sprintf("%s-eps", e.val.RatString())
	default:
		return e.val.RatString()
	}
}

// Add combines an ExtendedRational with a finite rational offset, keeping
// infinities absorbing and strictness sticky.
func (e ExtendedRational) Add(v *Rational) ExtendedRational {
	if e.IsInfinite() {
		return e
	}
	sum := rAdd(e.val, v)
	if e.kind == extStrict {
		return Strict(sum)
	}
	return Finite(sum)
}

// Cmp orders two ExtendedRational values: -1, 0, +1.
func (e ExtendedRational) Cmp(o ExtendedRational) int {
	rank := func(e ExtendedRational) int {
		switch e.kind {
		case extNegInf:
			return 0
		case extPosInf:
			return 2
		default:
			return 1
		}
	}
	ra, rb := rank(e), rank(o)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra != 1 {
		return 0
	}
	c := e.val.Cmp(o.val)
	if c != 0 {
		return c
	}
	// Equal rational part: strict is infinitesimally smaller than finite.
	if e.kind == o.kind {
		return 0
	}
	if e.kind == extStrict {
		return -1
	}
	return 1
}
