package fmqe

import (
	"sort"
	"strconv"
	"strings"
)

// RelKind is the relation a row's linear expression is compared against
// zero with.
type RelKind uint8

const (
	Eq RelKind = iota
	Lt
	Le
)

var relTable = [...]string{
	Eq: "=",
	Lt: "<",
	Le: "<=",
}

func (k RelKind) String() string { return relTable[k] }

// Monomial is a single (variable, coefficient) term. Coeff is never zero
// inside a canonical Row.
type Monomial struct {
	ID    VarID
	Coeff *Rational
}

// Row is a linear constraint (Sum coeff_i*v_i) + constant REL 0.
//
// vars is kept strictly increasing by VarID with every coefficient nonzero
// (invariant 1); value is a cache of evaluate(row) under the engine's
// current model (invariant 2), updated algebraically by mulAdd rather than
// recomputed from scratch on every mutation.
type Row struct {
	vars     []Monomial
	constant *Rational
	kind     RelKind
	value    *Rational
	alive    bool
}

func newRow(kind RelKind, constant *Rational) Row {
	return Row{
		kind:     kind,
		constant: new(Rational).Set(constant),
		value:    new(Rational).Set(constant),
		alive:    true,
	}
}

// Vars returns the row's monomials, sorted by VarID. Callers must not
// mutate the returned slice.
func (r *Row) Vars() []Monomial { return r.vars }

// Constant returns the row's constant term.
func (r *Row) Constant() *Rational { return r.constant }

// Kind returns the row's relation.
func (r *Row) Kind() RelKind { return r.kind }

// Value returns the row's cached evaluation under the current model.
func (r *Row) Value() *Rational { return r.value }

// Alive reports whether the row is still logically present.
func (r *Row) Alive() bool { return r.alive }

// clone returns a deep, independent copy of r.
func (r *Row) clone() Row {
	vars := make([]Monomial, len(r.vars))
	for i, m := range r.vars {
		vars[i] = Monomial{ID: m.ID, Coeff: new(Rational).Set(m.Coeff)}
	}
	return Row{
		vars:     vars,
		constant: new(Rational).Set(r.constant),
		kind:     r.kind,
		value:    new(Rational).Set(r.value),
		alive:    r.alive,
	}
}

// coefficient does a binary search over the sorted vars slice; O(log n).
func (r *Row) coefficient(v VarID) *Rational {
	i := sort.Search(len(r.vars), func(i int) bool { return r.vars[i].ID >= v })
	if i < len(r.vars) && r.vars[i].ID == v {
		return r.vars[i].Coeff
	}
	return rZero()
}

// indexOf returns the slice index of v, or -1.
func (r *Row) indexOf(v VarID) int {
	i := sort.Search(len(r.vars), func(i int) bool { return r.vars[i].ID >= v })
	if i < len(r.vars) && r.vars[i].ID == v {
		return i
	}
	return -1
}

// String renders the monomial as "coeff*vN", e.g. "-1/2*v3".
func (m Monomial) String() string {
	return m.Coeff.RatString() + "*v" + strconv.Itoa(int(m.ID))
}

// GoString renders the monomial as a Go literal, for use in %#v logging.
func (m Monomial) GoString() string {
	return "Monomial{ID: " + strconv.Itoa(int(m.ID)) + ", Coeff: " + m.Coeff.RatString() + "}"
}

// String renders the row as "term + term ... REL constant", e.g.
// "1*v0 + -1*v1 <= -3". Dead rows are prefixed with "(dead) ".
func (r *Row) String() string {
	var b strings.Builder
	if !r.alive {
		b.WriteString("(dead) ")
	}
	if len(r.vars) == 0 {
		b.WriteString("0")
	}
	for i, m := range r.vars {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" ")
	b.WriteString(r.kind.String())
	b.WriteString(" ")
	b.WriteString(new(Rational).Neg(r.constant).RatString())
	return b.String()
}

// GoString renders the row's fields for use in %#v logging.
func (r *Row) GoString() string {
	return "Row{" + r.String() + ", value=" + r.value.RatString() + "}"
}

// sanityCheck re-derives invariants 1-4 from scratch; the engine never calls
// it itself, it is used by the unit and property-based tests.
func (r *Row) sanityCheck(model []*Rational, objective bool) error {
	for i, m := range r.vars {
		if rIsZero(m.Coeff) {
			return errf("row has a zero-coefficient monomial for var %d", m.ID)
		}
		if i > 0 && r.vars[i-1].ID >= m.ID {
			return errf("row vars not strictly increasing at index %d", i)
		}
	}
	if want := evaluate(r, model); r.value.Cmp(want) != 0 {
		return errf("row value cache stale: value=%s, evaluate=%s", r.value.RatString(), want.RatString())
	}
	if !objective && r.alive {
		switch r.kind {
		case Eq:
			if !rIsZero(r.value) {
				return errf("equality row not satisfied: value=%s", r.value.RatString())
			}
		case Lt:
			if r.value.Sign() >= 0 {
				return errf("strict row not satisfied: value=%s", r.value.RatString())
			}
		case Le:
			if r.value.Sign() > 0 {
				return errf("non-strict row not satisfied: value=%s", r.value.RatString())
			}
		}
	}
	return nil
}
