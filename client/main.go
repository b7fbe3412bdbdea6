package main

import (
	"io"
	"os"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/render"
	"github.com/burntcarrot/stylepad/tui"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(parseFlags()))
}

// run fills and displays a document, returning the process exit code.
// Log files are closed before it returns.
func run(flags Flags) int {
	logger := logrus.New()
	logFile, debugLogFile, err := setupLogger(logger, logDir(), flags.Debug)
	if err != nil {
		color.Red("Logger error, exiting: %s", err)
		return 1
	}
	defer closeLogFiles(logFile, debugLogFile)

	doc := document.New(document.WithLogger(logger))
	if err := fill(doc, flags); err != nil {
		logger.WithError(err).Error("invalid flags")
		color.Red("%s", err)
		return 2
	}
	printDoc(logger, doc)

	if flags.TUI {
		if err := tui.Run(doc); err != nil {
			logger.WithError(err).Error("TUI exited with an error")
			color.Red("TUI error: %s", err)
			return 1
		}
		return 0
	}

	if err := renderer(os.Stdout, flags, logger).Render(doc); err != nil {
		logger.WithError(err).Error("failed to render document")
		color.Red("Failed to render document: %s", err)
		return 1
	}
	return 0
}

// renderer returns the console renderer for flags. Colors follow the terminal unless
// -no-color turns them off.
func renderer(w io.Writer, flags Flags, logger logrus.FieldLogger) *render.Renderer {
	opts := []render.Option{render.WithLogger(logger)}
	if flags.NoColor {
		opts = append(opts, render.WithColor(false))
	}
	return render.New(w, opts...)
}
