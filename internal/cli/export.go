package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate/internal/export"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scramble history",
	Long: `Export every saved scramble as JSON Lines.

Files ending in .zst are zstd-compressed.

Examples:
  cubestate export
  cubestate export -o history.jsonl
  cubestate export -o history.jsonl.zst`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(0)
	if err != nil {
		return err
	}

	records := make([]export.Record, len(scrambles))
	for i, s := range scrambles {
		records[i] = export.FromScramble(s)
	}

	if exportOutput == "" {
		return export.Write(cmd.OutOrStdout(), records)
	}

	if err := export.WriteFile(exportOutput, records); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scrambles to %s\n", len(records), exportOutput)
	return nil
}
