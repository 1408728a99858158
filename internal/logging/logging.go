// Package logging builds the logrus logger shared by the CLI and server and
// turns engine diagnostics into log entries.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubestate"
)

// New returns a text logger writing to w. An unknown level falls back to info.
func New(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Reporter logs each diagnostic as a warning.
func Reporter(log logrus.FieldLogger) cubestate.Reporter {
	return func(d cubestate.Diagnostic) {
		fields := logrus.Fields{
			"kind":     d.Kind.String(),
			"position": d.Position,
		}
		if d.Token != "" {
			fields["token"] = d.Token
		}
		entry := log.WithFields(fields)
		if d.Err != nil {
			entry = entry.WithError(d.Err)
		}
		entry.Warn(d.Message)
	}
}
