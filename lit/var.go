// Package lit provides the compact literal/variable representation
// shared between the coordinator and the external CDCL engine.
package lit

import "fmt"

// Var is a variable index, 0..nVars-1.
type Var uint32

// VarUndef is returned where no variable is available.
const VarUndef Var = 1<<32 - 1

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
