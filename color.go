// seehuhn.de/go/svgraster - render SVG drawings into RGBA images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svgraster

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses an SVG colour value.
//
// The accepted forms are #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b),
// rgba(r, g, b, a) and the SVG colour keywords. Components of rgb() and
// rgba() are integers in the range 0-255 or percentages; the alpha
// value of rgba() is a number between 0 and 1. The values "none" and
// "transparent" give a fully transparent colour and set none.
func ParseColor(s string) (c color.NRGBA, none bool, err error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case lower == "none" || lower == "transparent":
		return color.NRGBA{}, true, nil

	case strings.HasPrefix(s, "#"):
		c, err = parseHexColor(s[1:])

	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		c, err = parseFunctionalColor(lower)

	default:
		rgba, ok := colornames.Map[lower]
		if !ok {
			err = errUnknownColor
			break
		}
		c = color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
	}
	if err != nil {
		return color.NRGBA{}, false, fmt.Errorf("color %q: %w", s, err)
	}
	return c, false, nil
}

var errUnknownColor = errors.New("unknown color")

func parseHexColor(hex string) (color.NRGBA, error) {
	var digits [8]uint8
	if len(hex) > len(digits) {
		return color.NRGBA{}, errUnknownColor
	}
	for i := range len(hex) {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, errUnknownColor
		}
		digits[i] = d
	}

	switch len(hex) {
	case 3, 4:
		c := color.NRGBA{R: digits[0] * 0x11, G: digits[1] * 0x11, B: digits[2] * 0x11, A: 0xff}
		if len(hex) == 4 {
			c.A = digits[3] * 0x11
		}
		return c, nil
	case 6, 8:
		c := color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 0xff,
		}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, nil
	default:
		return color.NRGBA{}, errUnknownColor
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseFunctionalColor(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, errUnknownColor
	}
	hasAlpha := s[:open] == "rgba"
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(args) != want {
		return color.NRGBA{}, errUnknownColor
	}

	var comp [3]uint8
	for i := range comp {
		v, err := parseComponent(args[i])
		if err != nil {
			return color.NRGBA{}, err
		}
		comp[i] = v
	}
	c := color.NRGBA{R: comp[0], G: comp[1], B: comp[2], A: 0xff}
	if hasAlpha {
		a, err := ParseOpacity(args[3])
		if err != nil {
			return color.NRGBA{}, err
		}
		c.A = uint8(math.Round(a * 255))
	}
	return c, nil
}

func parseComponent(s string) (uint8, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseNumber(pct)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(clamp01(v/100) * 255)), nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return uint8(math.Round(max(0, min(v, 255)))), nil
}

// ParseOpacity parses an opacity value, given either as a number or as a
// percentage. The result is clamped to the range [0, 1].
func ParseOpacity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		s = pct
		scale = 0.01
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clamp01(v * scale), nil
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// scaleAlpha multiplies the alpha channel of c by f.
func scaleAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(f)))
	return c
}
