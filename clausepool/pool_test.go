package clausepool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsat-project/parsat/lit"
)

func TestAddThenGet(t *testing.T) {
	p := New(4)
	p.Add([]lit.Lit{lit.Var(1).Pos(), lit.Var(2).Neg()}, 3)
	assert.Equal(t, 1, p.Size())
	e := p.Get(0)
	assert.Equal(t, 3, e.Glue)
	assert.Equal(t, []lit.Lit{lit.Var(1).Pos(), lit.Var(2).Neg()}, e.Lits)
}

func TestAddCopiesLiterals(t *testing.T) {
	p := New(1)
	lits := []lit.Lit{lit.Var(1).Pos()}
	p.Add(lits, 1)
	lits[0] = lit.Var(9).Neg()
	assert.Equal(t, lit.Var(1).Pos(), p.Get(0).Lits[0], "Add must not alias the caller's backing array")
}

func TestEmptyAfterReset(t *testing.T) {
	p := New(2)
	p.Add([]lit.Lit{lit.Var(1).Pos()}, 1)
	p.Add([]lit.Lit{lit.Var(2).Pos()}, 2)
	assert.Equal(t, 2, p.Size())
	p.Reset()
	assert.Equal(t, 0, p.Size())
}
