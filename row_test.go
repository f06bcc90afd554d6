package fmqe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowCoefficientLookup(t *testing.T) {
	e := New()
	a := e.AddVar(rZero())
	b := e.AddVar(rZero())
	c := e.AddVar(rZero())

	id, err := e.AddConstraint([]Monomial{{ID: a, Coeff: R(1, 1)}, {ID: c, Coeff: R(-2, 1)}}, rZero(), Le)
	require.NoError(t, err)

	row := &e.rows[id]
	require.Equal(t, 0, row.coefficient(a).Cmp(R(1, 1)))
	require.Equal(t, 0, row.coefficient(b).Cmp(rZero()))
	require.Equal(t, 0, row.coefficient(c).Cmp(R(-2, 1)))
}

func TestRowVarsStrictlyIncreasing(t *testing.T) {
	e := New()
	a := e.AddVar(rZero())
	b := e.AddVar(rZero())
	c := e.AddVar(rZero())

	// Insert out of id order; buildRow must still leave vars sorted.
	id, err := e.AddConstraint([]Monomial{
		{ID: c, Coeff: R(1, 1)},
		{ID: a, Coeff: R(1, 1)},
		{ID: b, Coeff: R(1, 1)},
	}, R(-3, 1), Le)
	require.NoError(t, err)

	row := &e.rows[id]
	require.Len(t, row.vars, 3)
	require.Less(t, row.vars[0].ID, row.vars[1].ID)
	require.Less(t, row.vars[1].ID, row.vars[2].ID)
	require.NoError(t, row.sanityCheck(e.model, false))
}

func TestRowRejectsZeroCoefficientAndDuplicates(t *testing.T) {
	e := New()
	a := e.AddVar(rZero())

	_, err := e.AddConstraint([]Monomial{{ID: a, Coeff: rZero()}}, rZero(), Le)
	require.ErrorIs(t, err, ErrZeroCoefficient)

	_, err = e.AddConstraint([]Monomial{{ID: a, Coeff: R(1, 1)}, {ID: a, Coeff: R(2, 1)}}, rZero(), Le)
	require.ErrorIs(t, err, ErrDuplicateVariable)
}
