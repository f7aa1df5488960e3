// Package color normalizes user-supplied color strings into the canonical
// 6-hex-digit form used throughout generated code, and derives tint/shade
// variants for hover and pressed states.
//
// Every function fails soft: malformed input produces a safe default, never
// an error. Bad colors are a per-item condition and must not be able to
// abort a code generation pass.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultBlack is the fallback for colors that cannot be normalized
	DefaultBlack = "#000000"

	// GreySentinel is returned by Adjust for inputs it cannot parse
	GreySentinel = "#e2e8f0"
)

// Format normalizes a color string to a valid hex color.
// Accepted inputs: "#RRGGBB", short "#RGB" (expanded by digit doubling),
// a bare hex string without "#". Empty or non-hex input yields DefaultBlack.
func Format(c string) string {
	return FormatOr(c, DefaultBlack)
}

// FormatOr is Format with a caller-chosen fallback for invalid input.
func FormatOr(c, fallback string) string {
	if c == "" {
		return fallback
	}

	if !strings.HasPrefix(c, "#") {
		c = "#" + c
	}

	hex := c[1:]
	if !isHex(hex) {
		return fallback
	}

	switch len(hex) {
	case 6:
		return c
	case 3:
		// #RGB expands by doubling each digit: #f0a -> #ff00aa
		return fmt.Sprintf("#%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	default:
		return fallback
	}
}

// Adjust shifts every RGB channel of a color by a percentage, clamped to
// [0, 255]. Positive percentages lighten, negative darken; the result is
// used for hover and pressed shades. Input that does not normalize to a
// valid color yields GreySentinel.
func Adjust(c string, percent int) string {
	normalized := FormatOr(c, "")
	if normalized == "" {
		return GreySentinel
	}

	r := adjustChannel(normalized[1:3], percent)
	g := adjustChannel(normalized[3:5], percent)
	b := adjustChannel(normalized[5:7], percent)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func adjustChannel(hex string, percent int) int {
	ch, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0
	}
	v := int(ch) + int(math.Round(float64(ch)*float64(percent)/100.0))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
