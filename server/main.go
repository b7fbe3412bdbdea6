package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/burntcarrot/stylepad/document"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Flags represents the command-line flags that are passed to the preview server.
type Flags struct {
	Addr  string
	Width int
	Debug bool
}

// parseFlags parses command-line flags.
func parseFlags() Flags {
	addr := flag.String("addr", ":9000", "Server's network address")
	width := flag.Int("width", 80, "Display width used when rendering the document for viewers")
	enableDebug := flag.Bool("debug", false, "Enable debugging mode to show more verbose logs")

	flag.Parse()

	return Flags{
		Addr:  *addr,
		Width: *width,
		Debug: *enableDebug,
	}
}

func main() {
	flags := parseFlags()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if flags.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	doc := document.New(document.WithLogger(logger))
	h := newHub(doc, flags.Width, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle incoming messages.
	go h.run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleConn)

	server := &http.Server{
		Addr:              flags.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server.
	color.Green("Serving document %s on %s\n", doc.ID(), flags.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.WithError(err).Fatal("error starting server, exiting")
	}
}
