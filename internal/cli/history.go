package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long:  `Display recently saved scrambles, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of scrambles to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles saved.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tLEN\tPOLICY\tSOLVED\tSCRAMBLE")
	for _, s := range scrambles {
		solved := "-"
		if s.SolvedAt != nil {
			solved = s.SolvedAt.Local().Format("2006-01-02 15:04")
		}
		id := s.ScrambleID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			id,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Length,
			s.Policy,
			solved,
			s.ScrambleText,
		)
	}
	return w.Flush()
}
