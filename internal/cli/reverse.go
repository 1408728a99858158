package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <moves...>",
	Short: "Print the inverse of a move sequence",
	Long: `Reverse the token order and invert each move.

Example:
  cubestate reverse "R U R' U'"   # U R U' R'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cubestate.ReverseSequence(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}
