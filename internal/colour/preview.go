package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of width spaces painted in c.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText paints text centred on c, picking black or white text for contrast.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := "255;255;255"
	if relativeLuminance(c) > 0.5 {
		fg = "0;0;0"
	}

	switch {
	case len(text) > width:
		text = text[:width]
	case len(text) < width:
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + ansiFgPrefix + fg + ansiSuffix + text + ansiReset
}

// EmptyPreview renders an unfilled slot as a dotted placeholder.
func EmptyPreview(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return strings.Repeat("·", width)
}

// relativeLuminance approximates WCAG relative luminance (0 darkest, 1 lightest).
func relativeLuminance(c RGB) float64 {
	r, g, b := c.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
