package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/style"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// Flags represents the command-line flags that are passed to stylepad's client.
type Flags struct {
	Text      string
	Font      string
	Size      int
	Bold      bool
	Italic    bool
	Color     string
	Underline bool
	Align     string
	TUI       bool
	NoColor   bool
	Debug     bool
}

// parseFlags parses command-line flags.
func parseFlags() Flags {
	text := flag.String("text", "", "The characters to insert (the demo document is used if empty)")
	font := flag.String("font", "Arial", "Font of the inserted characters")
	size := flag.Int("size", 12, "Font size of the inserted characters")
	bold := flag.Bool("bold", false, "Make the inserted characters bold")
	italic := flag.Bool("italic", false, "Make the inserted characters italic")
	colorName := flag.String("color", "White", "Color of the inserted characters")
	underline := flag.Bool("underline", false, "Underline the inserted characters")
	align := flag.String("align", "Left", "Alignment of the inserted characters (Left, Center, Right)")
	useTUI := flag.Bool("tui", false, "Show the document in a scrollable terminal view")
	noColor := flag.Bool("no-color", false, "Disable colors in the output")
	enableDebug := flag.Bool("debug", false, "Enable debugging mode to show more verbose logs")

	flag.Parse()

	return Flags{
		Text:      *text,
		Font:      *font,
		Size:      *size,
		Bold:      *bold,
		Italic:    *italic,
		Color:     *colorName,
		Underline: *underline,
		Align:     *align,
		TUI:       *useTUI,
		NoColor:   *noColor,
		Debug:     *enableDebug,
	}
}

// attributes returns the style described by the flags.
func (f Flags) attributes() (style.Attributes, error) {
	c, err := style.ParseColor(f.Color)
	if err != nil {
		return style.Attributes{}, fmt.Errorf("invalid -color: %w", err)
	}

	a, err := style.ParseAlignment(f.Align)
	if err != nil {
		return style.Attributes{}, fmt.Errorf("invalid -align: %w", err)
	}

	return style.Attributes{
		Font:      f.Font,
		Size:      f.Size,
		Bold:      f.Bold,
		Italic:    f.Italic,
		Color:     c,
		Underline: f.Underline,
		Alignment: a,
	}, nil
}

// fill inserts the characters requested by the flags, or the demo document when no text is given.
func fill(doc *document.Document, flags Flags) error {
	if flags.Text == "" {
		insertDemo(doc)
		return nil
	}

	attrs, err := flags.attributes()
	if err != nil {
		return err
	}

	position := 0
	for _, r := range flags.Text {
		doc.InsertAttributes(r, position, attrs)
		position++
	}
	return nil
}

// insertDemo inserts three characters with three different styles.
func insertDemo(doc *document.Document) {
	doc.InsertStyled('A', 0, "Arial", 12, true, false, style.Red, true, style.Left)
	doc.InsertStyled('B', 1, "Roboto", 12, true, false, style.Green, false, style.Center)
	doc.InsertStyled('C', 2, "Times New Roman", 14, false, true, style.Blue, true, style.Right)
}

// ensureDirExists ensures that a directory exists, and if it isn't present, it tries to create a new one.
func ensureDirExists(path string) (bool, error) {
	// Check if the directory exists
	if _, err := os.Stat(path); err == nil {
		return true, nil
	}

	// Create the directory
	err := os.Mkdir(path, 0700)
	if err != nil {
		return false, err
	}

	return true, nil
}

// logDir returns the directory the client's logs are written to.
func logDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".stylepad")
}

// setupLogger initializes the client's logger (logrus).
func setupLogger(logger *logrus.Logger, dir string, debug bool) (*os.File, *os.File, error) {
	logPath := "stylepad.log"
	debugLogPath := "stylepad-debug.log"

	dirExists, err := ensureDirExists(dir)
	if err != nil {
		return nil, nil, err
	}

	if dirExists {
		logPath = filepath.Join(dir, logPath)
		debugLogPath = filepath.Join(dir, debugLogPath)
	}

	// Open the log file and create if it does not exist.
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // skipcq: GSC-G302
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Create a separate log file for verbose logs.
	debugLogFile, err := os.OpenFile(debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // skipcq: GSC-G302
	if err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("failed to open debug log file: %w", err)
	}

	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.AddHook(&writer.Hook{
		Writer: logFile,
		LogLevels: []logrus.Level{
			logrus.WarnLevel,
			logrus.ErrorLevel,
			logrus.FatalLevel,
			logrus.PanicLevel,
		},
	})
	logger.AddHook(&writer.Hook{
		Writer: debugLogFile,
		LogLevels: []logrus.Level{
			logrus.TraceLevel,
			logrus.DebugLevel,
			logrus.InfoLevel,
		},
	})

	return logFile, debugLogFile, nil
}

// closeLogFiles closes the log files created by the client.
// closeLogFiles is meant to be used for defer calls.
func closeLogFiles(logFile, debugLogFile *os.File) {
	if err := logFile.Close(); err != nil {
		fmt.Printf("Failed to close log file: %s", err)
		return
	}

	if err := debugLogFile.Close(); err != nil {
		fmt.Printf("Failed to close debug log file: %s", err)
		return
	}
}

// printDoc "prints" the document state to the logs.
func printDoc(logger logrus.FieldLogger, doc *document.Document) {
	logger.Debugf("---DOCUMENT STATE---")
	for i, c := range doc.Characters() {
		logger.Debugf("index: %v  value: %s  position: %v  style: %p  ", i, string(c.Symbol), c.Position, c.Style())
	}
	logger.Debugf("characters: %d  styles: %d", doc.Length(), doc.Registry().Len())
}
