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

package testcases

import "fmt"

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	SVG    string // the document to render
	Width  int    // raster width in pixels
	Height int    // raster height in pixels
}

// doc wraps the given SVG elements into a document of size w×h, with one
// document unit per pixel.
func doc(w, h int, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">%s</svg>`,
		w, h, body)
}

// square64 builds a 64×64 test case with a 64×64 document.
func square64(name, body string) TestCase {
	return TestCase{
		Name:   name,
		SVG:    doc(64, 64, body),
		Width:  64,
		Height: 64,
	}
}
