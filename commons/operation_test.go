package commons

import (
	"errors"
	"testing"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/style"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		description string
		op          Operation
		symbol      rune
		attrs       style.Attributes
		err         error
	}{
		{
			description: "defaults",
			op:          Operation{Symbol: "a", Font: "Arial", Size: 12, Bold: true},
			symbol:      'a',
			attrs:       style.Attributes{Font: "Arial", Size: 12, Bold: true, Color: style.White, Alignment: style.Left},
		},
		{
			description: "full style",
			op: Operation{Symbol: "é", Position: 3, Font: "Roboto", Size: 9, Italic: true,
				Color: "green", Underline: true, Alignment: "center"},
			symbol: 'é',
			attrs: style.Attributes{Font: "Roboto", Size: 9, Italic: true, Color: style.Green,
				Underline: true, Alignment: style.Center},
		},
		{description: "empty symbol", op: Operation{Symbol: ""}, err: ErrInvalidSymbol},
		{description: "two symbols", op: Operation{Symbol: "ab"}, err: ErrInvalidSymbol},
		{description: "unknown color", op: Operation{Symbol: "a", Color: "orange"}, err: style.ErrUnknownColor},
		{description: "unknown alignment", op: Operation{Symbol: "a", Alignment: "justify"}, err: style.ErrUnknownAlignment},
	}

	for _, tc := range tests {
		symbol, attrs, err := tc.op.Decode()
		if !errors.Is(err, tc.err) {
			t.Errorf("(%s) unexpected error: %v\n", tc.description, err)
			continue
		}
		if symbol != tc.symbol {
			t.Errorf("(%s) got != expected; got = %q, expected = %q\n", tc.description, symbol, tc.symbol)
		}
		if !cmp.Equal(attrs, tc.attrs) {
			t.Errorf("(%s) got != expected, diff: %v\n", tc.description, cmp.Diff(attrs, tc.attrs))
		}
	}
}

func TestEntries(t *testing.T) {
	doc := document.New()
	doc.InsertStyled('A', 0, "Arial", 12, true, false, style.Red, true, style.Left)
	doc.Insert('B', 1, "Roboto", 10, false, true)

	got := Entries(doc)
	want := []Entry{
		{Symbol: "A", Position: 0, Font: "Arial", Size: 12, Bold: true, Color: "Red", Underline: true, Alignment: "Left"},
		{Symbol: "B", Position: 1, Font: "Roboto", Size: 10, Italic: true, Color: "White", Alignment: "Left"},
	}

	if !cmp.Equal(got, want) {
		t.Errorf("got != want; diff = %v\n", cmp.Diff(got, want))
	}
}

func TestEntries_Empty(t *testing.T) {
	got := Entries(document.New())
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non-nil slice, got %#v\n", got)
	}
}
