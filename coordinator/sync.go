package coordinator

import "github.com/parsat-project/parsat/lit"

// syncReplicaFromPrimary reconciles slot t's worker with the primary,
// per spec.md §4.5.3. It does not check primaryModified itself; the
// caller (solveLimited's dispatch step) calls it only when that flag
// is set.
func (c *Coordinator) syncReplicaFromPrimary(t int) bool {
	src := c.primary().w
	dst := c.slots[t].w

	if dst.NVars() < src.NVars() {
		target := src.NVars()
		dst.ReserveVars(target)
		for dst.NVars() < target {
			next := lit.Var(dst.NVars())
			dst.NewVar(lit.LTrue, !src.IsEliminated(next))
		}
	}

	ok := true
	for i := c.syncedUnits; i < src.NUnits(); i++ {
		if !dst.AddClause([]lit.Lit{src.GetUnit(i)}) {
			ok = false
		}
	}
	for i := c.syncedClauses; i < src.NClauses(); i++ {
		cl := src.GetClause(i)
		if cl.Satisfied() {
			continue
		}
		if !dst.ImportClause(cl) {
			ok = false
		}
	}
	return ok && dst.Okay()
}
