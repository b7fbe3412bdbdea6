package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStyle(t *testing.T) {
	s := NewStyle("Arial", 12, true, false, Red, true, Center)

	got := Attributes{
		Font:      s.Font(),
		Size:      s.Size(),
		Bold:      s.Bold(),
		Italic:    s.Italic(),
		Color:     s.Color(),
		Underline: s.Underline(),
		Alignment: s.Alignment(),
	}
	want := Attributes{Font: "Arial", Size: 12, Bold: true, Italic: false, Color: Red, Underline: true, Alignment: Center}

	if !cmp.Equal(got, want) {
		t.Errorf("got != want; diff = %v\n", cmp.Diff(got, want))
	}

	// Attributes must agree with the individual accessors.
	if !cmp.Equal(s.Attributes(), want) {
		t.Errorf("got != want; diff = %v\n", cmp.Diff(s.Attributes(), want))
	}
}

// TestNewStyle_NoValidation checks that sizes are passed through as-is.
func TestNewStyle_NoValidation(t *testing.T) {
	for _, size := range []int{0, -3} {
		s := NewStyle("Mono", size, false, false, Gray, false, Left)
		if s.Size() != size {
			t.Errorf("got != want; got = %v, expected = %v\n", s.Size(), size)
		}
	}
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		description string
		style       *Style
		expected    string
	}{
		{
			description: "bold underlined",
			style:       NewStyle("Arial", 12, true, false, Red, true, Left),
			expected:    "Font: Arial, Size: 12, Bold: True, Italic: False, Color: Red, Underline: True, Text Alignment: Left",
		},
		{
			description: "italic right aligned",
			style:       NewStyle("Times New Roman", 14, false, true, DarkBlue, false, Right),
			expected:    "Font: Times New Roman, Size: 14, Bold: False, Italic: True, Color: DarkBlue, Underline: False, Text Alignment: Right",
		},
	}

	for _, tc := range tests {
		got := tc.style.String()
		if got != tc.expected {
			t.Errorf("(%s) got != expected, diff: %v\n", tc.description, cmp.Diff(got, tc.expected))
		}
	}
}

func TestDefaultAttributes(t *testing.T) {
	got := DefaultAttributes("Roboto", 10, false, true)
	want := Attributes{Font: "Roboto", Size: 10, Italic: true, Color: White, Alignment: Left}

	if !cmp.Equal(got, want) {
		t.Errorf("got != want; diff = %v\n", cmp.Diff(got, want))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		description string
		name        string
		expected    Color
		err         error
	}{
		{description: "exact", name: "Red", expected: Red},
		{description: "lower case", name: "darkmagenta", expected: DarkMagenta},
		{description: "first entry", name: "BLACK", expected: Black},
		{description: "unknown", name: "Orange", expected: White, err: ErrUnknownColor},
		{description: "empty", name: "", expected: White, err: ErrUnknownColor},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if !errors.Is(err, tc.err) {
			t.Errorf("(%s) unexpected error: %v\n", tc.description, err)
		}
		if got != tc.expected {
			t.Errorf("(%s) got != expected; got = %v, expected = %v\n", tc.description, got, tc.expected)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		description string
		name        string
		expected    Alignment
		err         error
	}{
		{description: "left", name: "left", expected: Left},
		{description: "center", name: "Center", expected: Center},
		{description: "right", name: "RIGHT", expected: Right},
		{description: "unknown", name: "justify", expected: Left, err: ErrUnknownAlignment},
	}

	for _, tc := range tests {
		got, err := ParseAlignment(tc.name)
		if !errors.Is(err, tc.err) {
			t.Errorf("(%s) unexpected error: %v\n", tc.description, err)
		}
		if got != tc.expected {
			t.Errorf("(%s) got != expected; got = %v, expected = %v\n", tc.description, got, tc.expected)
		}
	}
}

func TestColorString_OutOfPalette(t *testing.T) {
	got := Color(42).String()
	want := "Color(42)"
	if got != want {
		t.Errorf("got != want; got = %v, expected = %v\n", got, want)
	}
}
