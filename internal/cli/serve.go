package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate/internal/transport/ws"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream cube state to renderers over a websocket",
	Long: `Serve the websocket protocol on /ws. Every connection gets its own cube.

Clients send {"type":"apply","sequence":"R U"}, {"type":"scramble"},
{"type":"solve"}, {"type":"reset"} or {"type":"state"}. The server answers
with one "move" message per applied move followed by a "state" message.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default: config listen)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Listen
	if serveListen != "" {
		addr = serveListen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := ws.NewServer(log, cfg.ScrambleLength, cfg.ScrambleOptions()...)
	log.WithField("addr", addr).Info("serving websocket on /ws")
	return srv.ListenAndServe(ctx, addr)
}
