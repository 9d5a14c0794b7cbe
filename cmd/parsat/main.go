// Command parsat drives the coordinator package over a DIMACS CNF
// file: it is the thin CLI shell spec.md §1 deliberately keeps outside
// the coordination core's own invariants.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/parsat-project/parsat/coordinator"
	"github.com/parsat-project/parsat/internal/engine"
	"github.com/parsat-project/parsat/lit"
	"github.com/parsat-project/parsat/worker"
)

type options struct {
	cores   int
	timeout time.Duration
	model   bool
	stats   bool
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "parsat [cnf-file]",
		Short:        "parallel portfolio CDCL SAT solver",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return o.run(path)
		},
	}

	cmd.Flags().IntVarP(&o.cores, "cores", "c", 0, "number of portfolio workers (0 = NumCPU, -1 = NumCPU/2)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "solve timeout, 0 for none")
	cmd.Flags().BoolVar(&o.model, "model", false, "print a satisfying assignment on success")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "print coordinator statistics after solving")

	return cmd
}

func (o *options) run(path string) error {
	r, err := pathToReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	f, err := readDimacs(r)
	if err != nil {
		return fmt.Errorf("error reading dimacs: %w", err)
	}

	co := coordinator.New(coordinator.Config{
		Cores:     o.cores,
		NewWorker: func() worker.Worker { return engine.New() },
	})
	defer co.TearDown()

	for i := 0; i < f.nVars; i++ {
		co.NewVar(lit.LUndef, true)
	}
	for _, cl := range f.clauses {
		co.AddClause(cl)
	}

	if o.timeout > 0 {
		timer := time.AfterFunc(o.timeout, co.Interrupt)
		defer timer.Stop()
	}

	status := co.SolveLimited(nil)
	switch status {
	case lit.LTrue:
		fmt.Println("s SATISFIABLE")
		if o.model {
			printModel(co.Model())
		}
	case lit.LFalse:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}

	if o.stats {
		co.PrintStats()
	}
	return nil
}

func printModel(m []lit.LBool) {
	fmt.Print("v")
	for i, v := range m {
		d := lit.Var(i).Pos().Dimacs()
		if v == lit.LFalse {
			d = -d
		}
		fmt.Printf(" %d", d)
	}
	fmt.Println(" 0")
}

func main() {
	logrus.SetFormatter(&plainFormatter{})
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("fatal: %v", err)
		os.Exit(1)
	}
}

// plainFormatter renders top-level CLI errors without logrus's default
// timestamped key=value shape, consistent with the coordinator's own
// "c "-prefixed stdout lines.
type plainFormatter struct{}

func (f *plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return append([]byte("c "+e.Message), '\n'), nil
}
