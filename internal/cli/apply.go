package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

var applyPlain bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a move sequence to a solved cube and print the result.

Tokens that are not valid moves are skipped with a warning; the rest of the
sequence is still applied.

Examples:
  cubestate apply "R U R' U'"
  cubestate apply R U2 F' --plain`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print a plain letter net without colors")
}

func runApply(cmd *cobra.Command, args []string) error {
	sess := cubestate.NewSession(cubestate.WithReporter(reporter()))
	applied := sess.ApplySequence(strings.Join(args, " "))
	log.WithField("moves", len(applied)).Debug("applied sequence")

	out := cmd.OutOrStdout()
	if applyPlain {
		fmt.Fprint(out, sess.String())
	} else {
		snap := sess.Snapshot()
		net, err := render.Renderer{Report: reporter()}.Net(&snap)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, net)
	}

	fmt.Fprintf(out, "Applied: %s\n", cubestate.FormatMoves(applied))
	fmt.Fprintf(out, "Solved: %v\n", sess.IsSolved())
	return nil
}
