package commons

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/burntcarrot/stylepad/style"
)

var (
	ErrInvalidSymbol = errors.New("symbol must be exactly one character")
)

// Operation represents an insert sent by a client.
type Operation struct {
	// Symbol is the character to insert.
	Symbol string `json:"symbol"`

	// Position represents the position at which the character is placed.
	Position int `json:"position"`

	Font   string `json:"font"`
	Size   int    `json:"size"`
	Bold   bool   `json:"bold"`
	Italic bool   `json:"italic"`

	// Color, Underline and Alignment are optional. Empty names mean White and Left.
	Color     string `json:"color,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// Decode returns the symbol and style attributes described by the operation.
func (op Operation) Decode() (rune, style.Attributes, error) {
	if utf8.RuneCountInString(op.Symbol) != 1 {
		return 0, style.Attributes{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, op.Symbol)
	}
	symbol, _ := utf8.DecodeRuneInString(op.Symbol)

	attrs := style.DefaultAttributes(op.Font, op.Size, op.Bold, op.Italic)
	attrs.Underline = op.Underline

	if op.Color != "" {
		c, err := style.ParseColor(op.Color)
		if err != nil {
			return 0, style.Attributes{}, err
		}
		attrs.Color = c
	}

	if op.Alignment != "" {
		a, err := style.ParseAlignment(op.Alignment)
		if err != nil {
			return 0, style.Attributes{}, err
		}
		attrs.Alignment = a
	}

	return symbol, attrs, nil
}
