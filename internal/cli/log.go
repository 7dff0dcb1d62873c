// Package cli implements the netgen command-line interface.
//
// The root command generates a network document; subcommands verify and
// render existing documents and inspect the catalog and the DTD. The CLI is
// built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - netgen: Generate network.xml (and optional json, dot, svg artifacts)
//   - verify: Check an existing document against every network invariant
//   - render: Draw an existing document as DOT or SVG
//   - catalog: Show the station catalog and the derived link counts
//   - dtd: Print or write the document type definition
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so that documents written to stdout stay clean.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 25 stations (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
