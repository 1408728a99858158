package cli

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var (
	scrambleLength int
	scrambleSeed   uint64
	scramblePolicy string
	scrambleSave   bool
	scramblePlot   bool
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble in standard notation.

Consecutive moves never turn the same axis (policy "strict"), or never the
same face (policy "opposite-pairs"), and the scramble never returns to an
axis right after turning both of its faces.

Examples:
  cubestate scramble
  cubestate scramble --length 25 --seed 42
  cubestate scramble --save --show
  cubestate scramble --plot`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default: config scramble_length)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble (0 = config seed or random)")
	scrambleCmd.Flags().StringVar(&scramblePolicy, "policy", "", "Redundancy policy: strict or opposite-pairs")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to history")
	scrambleCmd.Flags().BoolVar(&scramblePlot, "plot", false, "Plot misplaced facelets after each move")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Show the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := cfg.ScrambleLength
	if cmd.Flags().Changed("length") {
		length = scrambleLength
	}

	opts, policy, seed, err := scrambleOptions(scrambleSeed, scramblePolicy)
	if err != nil {
		return err
	}

	sc := cubestate.NewScrambler(opts...)
	moves := sc.Moves(length)
	text := cubestate.FormatMoves(moves)
	if sc.Fallbacks() > 0 {
		log.WithField("fallbacks", sc.Fallbacks()).Warn("scramble filters were relaxed")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text)

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewScrambleRepository(db).Create(text, len(moves), policy, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved: %s\n", id)
	}

	if scrambleShow {
		s := cubestate.NewState()
		s.ApplyMoves(moves...)
		snap := s.Snapshot()
		net, err := render.Renderer{Report: reporter()}.Net(&snap)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, net)
	}

	if scramblePlot && len(moves) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plotMisplaced(moves))
	}

	return nil
}

// plotMisplaced charts how many facelets are off their solved face after
// each move of the sequence.
func plotMisplaced(moves []cubestate.Move) string {
	s := cubestate.NewState()
	data := make([]float64, 0, len(moves)+1)
	data = append(data, 0)
	for _, m := range moves {
		s.ApplyMove(m)
		data = append(data, float64(s.Misplaced()))
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("misplaced facelets per move"),
	)
}
