package coordinator

import (
	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/clausepool"
)

// clauseFromEntry adapts a clausepool.Entry (this module's thin
// cross-worker learned-clause representation) into the clause.Clause
// form worker.Worker.ImportClause expects.
func clauseFromEntry(e clausepool.Entry) clause.Clause {
	cl := clause.New(e.Lits, true)
	cl.LBD = e.Glue
	return cl
}
