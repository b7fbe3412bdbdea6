package render

import (
	"github.com/burntcarrot/stylepad/style"
	"github.com/fatih/color"
)

// foregrounds maps the console palette to ANSI foreground attributes.
var foregrounds = map[style.Color]color.Attribute{
	style.Black:       color.FgBlack,
	style.DarkBlue:    color.FgBlue,
	style.DarkGreen:   color.FgGreen,
	style.DarkCyan:    color.FgCyan,
	style.DarkRed:     color.FgRed,
	style.DarkMagenta: color.FgMagenta,
	style.DarkYellow:  color.FgYellow,
	style.Gray:        color.FgWhite,
	style.DarkGray:    color.FgHiBlack,
	style.Blue:        color.FgHiBlue,
	style.Green:       color.FgHiGreen,
	style.Cyan:        color.FgHiCyan,
	style.Red:         color.FgHiRed,
	style.Magenta:     color.FgHiMagenta,
	style.Yellow:      color.FgHiYellow,
	style.White:       color.FgHiWhite,
}

// paint returns the terminal attributes for a style.
func paint(s *style.Style) *color.Color {
	fg, ok := foregrounds[s.Color()]
	if !ok {
		fg = color.FgHiWhite
	}

	c := color.New(fg)
	if s.Bold() {
		c.Add(color.Bold)
	}
	if s.Italic() {
		c.Add(color.Italic)
	}
	if s.Underline() {
		c.Add(color.Underline)
	}
	return c
}
