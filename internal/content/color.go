package content

import "strings"

// Display colors. Single-character codes for terse content, full names
// accepted case-insensitively.
const (
	ColorDark = iota
	ColorWhite
	ColorSlate
	ColorOrange
	ColorRed
	ColorGreen
	ColorBlue
	ColorUmber
	ColorLightDark
	ColorLightSlate
	ColorViolet
	ColorYellow
	ColorLightRed
	ColorLightGreen
	ColorLightBlue
	ColorLightUmber

	ColorMax
)

var colorChars = "dwsorgbuDWvyRGBU"

var colorNames = [ColorMax]string{
	"dark", "white", "slate", "orange", "red", "green", "blue", "umber",
	"light dark", "light slate", "violet", "yellow",
	"light red", "light green", "light blue", "light umber",
}

// ColorFromText resolves a color field: a single character code or a full
// name. Returns -1 for an unknown color.
func ColorFromText(s string) int {
	if len(s) == 1 {
		return strings.IndexByte(colorChars, s[0])
	}
	lower := strings.ToLower(s)
	for i, n := range colorNames {
		if n == lower {
			return i
		}
	}
	return -1
}
