package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var (
	solveID   string
	solveLast bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [moves...]",
	Short: "Solve a scramble by reversing it",
	Long: `Apply a scramble to a solved cube, then apply its reverse and check that
the cube is solved again.

The scramble is taken from the arguments, or from history with --id or
--last. Solving a saved scramble records the solution.

Examples:
  cubestate solve "R U F2 D'"
  cubestate solve --last
  cubestate solve --id <scramble_id>`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveID, "id", "", "Scramble ID from history")
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the most recent saved scramble")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var stored *storage.Scramble
	var repo *storage.ScrambleRepository
	scramble := strings.Join(args, " ")

	if solveID != "" || solveLast {
		if len(args) > 0 {
			return fmt.Errorf("give either a sequence or --id/--last, not both")
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewScrambleRepository(db)

		if solveLast {
			stored, err = repo.GetLast()
		} else {
			stored, err = repo.Get(solveID)
		}
		if err != nil {
			return err
		}
		if stored == nil {
			return fmt.Errorf("no scramble found")
		}
		scramble = stored.ScrambleText
	} else if len(args) == 0 {
		return fmt.Errorf("specify a sequence, --id or --last")
	}

	sess := cubestate.NewSession(cubestate.WithReporter(reporter()))
	sess.ApplySequence(scramble)
	solution := sess.Solve()

	if !sess.IsSolved() {
		return fmt.Errorf("cube not solved after applying %q", solution)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n", scramble)
	fmt.Fprintf(out, "Solution: %s\n", solution)

	if stored != nil {
		if err := repo.MarkSolved(stored.ScrambleID, solution); err != nil {
			return err
		}
		log.WithField("id", stored.ScrambleID).Info("marked scramble solved")
	}

	return nil
}
