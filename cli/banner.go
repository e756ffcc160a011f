package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"

	bannerPadding = 2
)

// Banner draws lines inside a box width columns wide. Lines that do not fit
// are cut and end with an ellipsis. Returns "" when width leaves no room.
func Banner(lines []string, width int) string {
	inner := width - bannerPadding
	if inner <= 0 || len(lines) == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s%s%s\n", boxTopLeft, strings.Repeat(boxTop, inner), boxTopRight)

	for _, l := range lines {
		fmt.Fprintf(&b, "%s%s%s\n", boxSide, fit(l, inner), boxSide)
	}

	fmt.Fprintf(&b, "%s%s%s\n", boxBottomLeft, strings.Repeat(boxBottom, inner), boxBottomRight)

	return b.String()
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)

	if n <= width {
		return s + strings.Repeat(" ", width-n)
	}

	runes := []rune(s)

	return string(runes[:width-1]) + ellipsis
}
