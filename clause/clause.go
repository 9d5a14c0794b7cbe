// Package clause holds the external, shared clause representation
// used to move learned and original clauses between the coordinator
// and its workers. It is intentionally thin: the internal clause
// database, watch lists and arena live in the engine that owns them.
package clause

import "github.com/parsat-project/parsat/lit"

// Mark values, mirroring SolverTypes.h's 2-bit clause mark: 0 means
// still present, 1 means satisfied/removed during preprocessing.
const (
	MarkNone     uint8 = 0
	MarkSatisfied uint8 = 1
	MarkDeleted  uint8 = 2
)

// Clause is an ordered disjunction of literals plus the metadata the
// coordinator needs to move it between workers: whether it was learned,
// its mark, its LBD/glue score, and a coarse abstraction bitmask used
// by some engines to speed up subsumption checks. Interpreted as a
// disjunction of its Lits.
type Clause struct {
	Lits   []lit.Lit
	Learnt bool
	Mark   uint8
	LBD    int
	Abs    uint64
}

// New builds a Clause from a literal slice and computes its
// abstraction bitmask, grounded on SolverTypes.h's Clause constructor
// (`abstraction |= 1 << (var(data[i].lit) & 31)`).
func New(lits []lit.Lit, learnt bool) Clause {
	c := Clause{
		Lits:   append([]lit.Lit(nil), lits...),
		Learnt: learnt,
	}
	c.RecomputeAbs()
	return c
}

// RecomputeAbs rebuilds the abstraction bitmask from the current Lits.
func (c *Clause) RecomputeAbs() {
	var abs uint64
	for _, m := range c.Lits {
		abs |= 1 << (uint32(m.Var()) & 63)
	}
	c.Abs = abs
}

// Size returns the number of literals in the clause.
func (c Clause) Size() int {
	return len(c.Lits)
}

// Satisfied reports whether the clause was marked satisfied during
// preprocessing, per spec.md §4.5.3's sync skip rule (mark == 1).
func (c Clause) Satisfied() bool {
	return c.Mark == MarkSatisfied
}
