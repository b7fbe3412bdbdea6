// Package render prints the characters of a document to a console.
//
// Each character is written as its alignment padding, the symbol (followed by an "_"
// when underlined), a line with the summary of its style and a separator line.
// Colors and text attributes are applied to the symbol only and are reset right after
// it, so no terminal state leaks from one character into the next.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/style"
	"github.com/fatih/color"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	// Separator is written after every character.
	Separator = "******"

	// UnderlineMarker is written after the symbol of underlined characters.
	UnderlineMarker = "_"

	// FallbackWidth is used when the display width cannot be determined.
	FallbackWidth = 80

	// DefaultCacheSize is the number of styles whose formatting is kept around.
	DefaultCacheSize = 128
)

// WidthFunc reports the width of the display, in cells.
type WidthFunc func() (int, error)

// TerminalWidth returns the width of the terminal attached to stdout.
func TerminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return width, err
}

// FixedWidth returns a WidthFunc that always reports width.
func FixedWidth(width int) WidthFunc {
	return func() (int, error) {
		return width, nil
	}
}

// Renderer writes characters to an io.Writer. It implements document.Output.
type Renderer struct {
	w         io.Writer
	width     WidthFunc
	colorize  bool
	cacheSize int
	formats   *lru.Cache[*style.Style, format]
	logger    logrus.FieldLogger
}

// format is what the renderer derives from a style. Characters share styles, so the
// derived values are kept per style rather than recomputed per character.
type format struct {
	paint   *color.Color
	summary string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets how the display width is obtained. Defaults to TerminalWidth.
func WithWidth(fn WidthFunc) Option {
	return func(r *Renderer) {
		r.width = fn
	}
}

// WithColor enables or disables colors and text attributes. By default colors follow
// color.NoColor, so they are off when stdout is not a terminal or NO_COLOR is set.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.colorize = enabled
	}
}

// WithCacheSize sets how many styles the renderer keeps formatting for.
func WithCacheSize(size int) Option {
	return func(r *Renderer) {
		r.cacheSize = size
	}
}

// WithLogger sets the renderer's logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New returns a renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:         w,
		width:     TerminalWidth,
		colorize:  !color.NoColor,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cacheSize <= 0 {
		r.cacheSize = DefaultCacheSize
	}
	r.formats, _ = lru.New[*style.Style, format](r.cacheSize)

	if r.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.logger = l
	}

	return r
}

// RenderCharacter writes one character and its style summary.
func (r *Renderer) RenderCharacter(c document.Character) error {
	s := c.Style()
	f := r.formatFor(s)

	text := string(c.Symbol)
	if s.Underline() {
		text += UnderlineMarker
	}

	// Sprint pairs the attribute sequence with its reset, whatever the global color state.
	_, err := fmt.Fprintf(r.w, "%s%s\n%s\n%s\n",
		padding(s.Alignment(), c.Symbol, r.displayWidth),
		f.paint.Sprint(text),
		f.summary,
		Separator,
	)
	return err
}

// Render writes every character of doc.
func (r *Renderer) Render(doc *document.Document) error {
	return doc.Render(r)
}

func (r *Renderer) formatFor(s *style.Style) format {
	if f, ok := r.formats.Get(s); ok {
		return f
	}

	f := format{
		paint:   paint(s),
		summary: s.String(),
	}
	if r.colorize {
		f.paint.EnableColor()
	} else {
		f.paint.DisableColor()
	}

	r.formats.Add(s, f)
	return f
}

// displayWidth never fails: when the width cannot be read, FallbackWidth is used.
func (r *Renderer) displayWidth() int {
	width, err := r.width()
	if err != nil || width <= 0 {
		r.logger.WithError(err).WithField("fallback", FallbackWidth).Debug("display width unavailable")
		return FallbackWidth
	}
	return width
}

// padding returns the blanks written before a symbol. The width is only looked up
// for alignments that need it.
func padding(alignment style.Alignment, symbol rune, width func() int) string {
	n := 0
	switch alignment {
	case style.Center:
		n = width()/2 - 1
	case style.Right:
		n = width() - 1 - runewidth.RuneWidth(symbol)
	}

	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
