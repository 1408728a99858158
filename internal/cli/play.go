package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/storage"
	"github.com/SeamusWaldron/cubestate/internal/tui"
)

var (
	playSave   bool
	playPolicy string
	playSeed   uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start an interactive TUI showing the cube.

Keyboard shortcuts:
  n            - Scramble
  s            - Solve (reverse every move since the last solve)
  x            - Reset to solved
  u d l r f b  - Turn a face clockwise
  U D L R F B  - Turn a face counter-clockwise
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playSave, "save", false, "Save scrambles and their solutions to history")
	playCmd.Flags().StringVar(&playPolicy, "policy", "", "Redundancy policy: strict or opposite-pairs")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Random seed (0 = config seed or random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts, policy, seed, err := scrambleOptions(playSeed, playPolicy)
	if err != nil {
		return err
	}

	sess := cubestate.NewSession(opts...)
	model := tui.New(sess, cfg.ScrambleLength, reporter())

	if playSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		recordHistory(model, storage.NewScrambleRepository(db), policy, seed)
	}

	return tui.Run(model)
}

// recordHistory stores every scramble made in play mode and attaches the
// next solve to it. A reset abandons the pending scramble.
func recordHistory(model *tui.Model, repo *storage.ScrambleRepository, policy string, seed uint64) {
	var lastID string
	model.OnScramble = func(scramble string) {
		id, err := repo.Create(scramble, len(strings.Fields(scramble)), policy, seed)
		if err != nil {
			log.WithError(err).Error("failed to save scramble")
			return
		}
		lastID = id
	}
	model.OnSolve = func(solution string) {
		if lastID == "" {
			return
		}
		if err := repo.MarkSolved(lastID, solution); err != nil {
			log.WithError(err).Error("failed to record solution")
		}
		lastID = ""
	}
	model.OnReset = func() {
		lastID = ""
	}
}
