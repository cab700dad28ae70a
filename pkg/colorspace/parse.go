package colorspace

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Tone token grammars, tried in order: named color, hex, oklch literal.
var (
	namePattern  = regexp.MustCompile(`^[a-z]+$`)
	hexPattern   = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{6})$`)
	oklchPattern = regexp.MustCompile(`^oklch\(\s*([0-9]*\.?[0-9]+)(%?)\s+([0-9]*\.?[0-9]+)\s+([0-9]*\.?[0-9]+)(?:deg)?\s*\)$`)
)

// ParseTone parses a user-supplied tone token into a Color. Three forms
// are recognized, tried in order:
//
//   - a bare alphabetic token, looked up in the SVG 1.1 named-color
//     table ("hotpink", "black", ...)
//   - a hex token: #rgb, #rrggbb, or the same without the hash
//   - an oklch(L C H) literal, with L optionally given as a percentage
//
// A token matching none of the forms, or a name absent from the table,
// yields ok == false. Parsing never fails loudly; malformed tones are
// meant to be dropped by the caller.
func ParseTone(token string) (c Color, ok bool) {
	tok := strings.ToLower(strings.TrimSpace(token))
	if tok == "" {
		return Color{}, false
	}

	if namePattern.MatchString(tok) {
		if named, found := colornames.Map[tok]; found {
			return FromRGB(named.R, named.G, named.B), true
		}
		// Not a known name; an all-letter token like "abc" may still
		// be valid hex, so fall through.
	}

	if m := hexPattern.FindStringSubmatch(tok); m != nil {
		hex := m[1]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if parsed, err := colorful.Hex("#" + hex); err == nil {
			r, g, b := parsed.RGB255()
			return FromRGB(r, g, b), true
		}
		return Color{}, false
	}

	if m := oklchPattern.FindStringSubmatch(tok); m != nil {
		l, err1 := strconv.ParseFloat(m[1], 64)
		cc, err2 := strconv.ParseFloat(m[3], 64)
		h, err3 := strconv.ParseFloat(m[4], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, false
		}
		if m[2] == "%" {
			l /= 100
		}
		return New(l, cc, h), true
	}

	return Color{}, false
}
