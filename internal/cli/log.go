// Package cli implements the tipkit command-line interface.
//
// This package provides commands for computing tooltip positions, rendering
// scene files to the terminal, running an interactive demo and serving the
// placement math over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - place: Compute one tooltip position from flags
//   - render: Draw a scene file once
//   - demo: Move anchors around and watch tooltips follow
//   - serve: Run the HTTP placement service
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and layout passes and HTTP requests are
// reported through observability hooks that log at debug level.
//
// # Example
//
//	import "github.com/matzehuels/tipkit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
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
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rendered 3 tooltips (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports layout passes and HTTP requests at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLayoutPass(_ context.Context, id, placement string, x, y float64, d time.Duration) {
	h.logger.Debug("Layout", "id", id, "placement", placement, "x", x, "y", y, "took", d)
}

func (h logHooks) OnLayoutSkipped(_ context.Context, id, reason string) {
	h.logger.Debug("Layout skipped", "id", id, "reason", reason)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("Request", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	lvl := log.DebugLevel
	if status >= 500 {
		lvl = log.WarnLevel
	}
	h.logger.Log(lvl, "Response", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}
