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
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	errInvalidNumber   = errors.New("invalid number")
	errNonFiniteNumber = errors.New("number out of range")
)

// parseNumber parses s, which must consist of a single SVG number and
// nothing else. Values which overflow float64 are rejected.
func parseNumber(s string) (float64, error) {
	x, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, errInvalidNumber
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, errNonFiniteNumber
	}
	return x, nil
}

// parseNumberList parses a list of numbers separated by whitespace and/or
// commas.
func parseNumberList(s string) ([]float64, error) {
	toks := tokenizePath(s)
	res := make([]float64, 0, len(toks))
	for _, tok := range toks {
		x, err := parseNumber(tok.text)
		if err != nil {
			return nil, &ParseError{Offset: tok.pos, Token: tok.text, Msg: "invalid number", Err: err}
		}
		res = append(res, x)
	}
	return res, nil
}
