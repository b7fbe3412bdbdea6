package style

import (
	"errors"
	"fmt"
	"strings"
)

// Color represents a foreground color from the console palette.
type Color uint8

// The console palette, in the order terminals number it.
const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var colorNames = [...]string{
	Black:       "Black",
	DarkBlue:    "DarkBlue",
	DarkGreen:   "DarkGreen",
	DarkCyan:    "DarkCyan",
	DarkRed:     "DarkRed",
	DarkMagenta: "DarkMagenta",
	DarkYellow:  "DarkYellow",
	Gray:        "Gray",
	DarkGray:    "DarkGray",
	Blue:        "Blue",
	Green:       "Green",
	Cyan:        "Cyan",
	Red:         "Red",
	Magenta:     "Magenta",
	Yellow:      "Yellow",
	White:       "White",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Alignment represents the text alignment of a character.
type Alignment uint8

const (
	// Left writes the symbol at the start of the line.
	Left Alignment = iota

	// Center pads the symbol to the middle of the display.
	Center

	// Right pads the symbol to the end of the display.
	Right
)

// String returns the name of the alignment.
func (a Alignment) String() string {
	switch a {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

var (
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownAlignment = errors.New("unknown alignment")
)

// ParseColor returns the palette color with the given name. Matching is case-insensitive.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(c), nil
		}
	}
	return White, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ParseAlignment returns the alignment with the given name. Matching is case-insensitive.
func ParseAlignment(name string) (Alignment, error) {
	for _, a := range []Alignment{Left, Center, Right} {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return Left, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}

// Attributes is the full set of values that make up a style.
// Two styles are the same style iff their Attributes are equal.
type Attributes struct {
	Font      string
	Size      int
	Bold      bool
	Italic    bool
	Color     Color
	Underline bool
	Alignment Alignment
}

// DefaultAttributes returns the attributes used when only the font, size, bold and italic
// values are known: white, not underlined, left aligned.
func DefaultAttributes(font string, size int, bold, italic bool) Attributes {
	return Attributes{
		Font:      font,
		Size:      size,
		Bold:      bold,
		Italic:    italic,
		Color:     White,
		Underline: false,
		Alignment: Left,
	}
}

// Style is an immutable character style. Styles are meant to be shared between
// characters; obtain them from a Registry rather than constructing them directly.
type Style struct {
	attrs Attributes
}

// NewStyle creates a style from its seven attributes. No validation is done.
func NewStyle(font string, size int, bold, italic bool, color Color, underline bool, alignment Alignment) *Style {
	return &Style{attrs: Attributes{
		Font:      font,
		Size:      size,
		Bold:      bold,
		Italic:    italic,
		Color:     color,
		Underline: underline,
		Alignment: alignment,
	}}
}

// Font returns the font family name.
func (s *Style) Font() string { return s.attrs.Font }

// Size returns the font size.
func (s *Style) Size() int { return s.attrs.Size }

// Bold reports whether the style is bold.
func (s *Style) Bold() bool { return s.attrs.Bold }

// Italic reports whether the style is italic.
func (s *Style) Italic() bool { return s.attrs.Italic }

// Color returns the foreground color.
func (s *Style) Color() Color { return s.attrs.Color }

// Underline reports whether the style is underlined.
func (s *Style) Underline() bool { return s.attrs.Underline }

// Alignment returns the text alignment.
func (s *Style) Alignment() Alignment { return s.attrs.Alignment }

// Attributes returns a copy of the style's attributes.
func (s *Style) Attributes() Attributes {
	return s.attrs
}

// String returns the one-line summary of the style:
// Font, Size, Bold, Italic, Color, Underline, Text Alignment.
func (s *Style) String() string {
	return fmt.Sprintf("Font: %s, Size: %d, Bold: %s, Italic: %s, Color: %s, Underline: %s, Text Alignment: %s",
		s.attrs.Font,
		s.attrs.Size,
		formatBool(s.attrs.Bold),
		formatBool(s.attrs.Italic),
		s.attrs.Color,
		formatBool(s.attrs.Underline),
		s.attrs.Alignment,
	)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
