// Package cli implements the command-line interface for cubestate.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/config"
	"github.com/SeamusWaldron/cubestate/internal/logging"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Set up by the root command before any subcommand runs.
	cfg *config.Config
	log *logrus.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubestate",
	Short: "Rubik's cube state engine",
	Long: `cubestate - apply move notation to a virtual 3x3 cube, generate scrambles
and undo them with the reverse-and-invert solver.

Scrambles can be saved to a local SQLite history, exported as JSON Lines,
played interactively in the terminal, or streamed to renderers over a
websocket.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.cubestate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubestate/cubestate.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log = logging.New(cmd.ErrOrStderr(), level)
	log.WithField("config", path).Debug("loaded config")
	return nil
}

// reporter logs engine diagnostics through the command logger.
func reporter() cubestate.Reporter {
	return logging.Reporter(log)
}

// openDB opens the database from --db, the config, or the default path.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" && cfg != nil {
		path = cfg.DBPath
	}

	if path == "" {
		var err error
		if path, err = storage.DefaultDBPath(); err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.WithField("path", db.Path()).Debug("opened database")
	return db, nil
}

// scrambleOptions combines config defaults with command flags. Zero flag
// values defer to the config.
func scrambleOptions(seed uint64, policy string) ([]cubestate.Option, string, uint64, error) {
	if policy == "" {
		policy = cfg.Policy
	}
	p, err := cubestate.ParsePolicy(policy)
	if err != nil {
		return nil, "", 0, err
	}
	if seed == 0 {
		seed = cfg.Seed
	}

	opts := []cubestate.Option{cubestate.WithPolicy(p), cubestate.WithReporter(reporter())}
	if seed != 0 {
		opts = append(opts, cubestate.WithSeed(seed))
	}
	return opts, p.String(), seed, nil
}
