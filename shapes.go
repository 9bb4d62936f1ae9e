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
	"strconv"
	"strings"
)

// The functions in this file convert the basic SVG shapes into equivalent
// path data strings, which are then drawn by the path interpreter.

// RectPath returns path data for an axis-aligned rectangle with optional
// rounded corners.
//
// If only one of rx and ry is positive, the other one takes the same
// value. The radii are clamped to half the width and height. Without
// rounding the path is M, three L and Z. With rounding it consists of four
// straight edges, four elliptical corner arcs and Z.
func RectPath(x, y, w, h, rx, ry float64) string {
	rx = max(rx, 0)
	ry = max(ry, 0)
	if rx == 0 {
		rx = ry
	} else if ry == 0 {
		ry = rx
	}
	rx = min(rx, w/2)
	ry = min(ry, h/2)

	var b pathBuilder
	if rx <= 0 || ry <= 0 {
		b.cmd('M', x, y)
		b.cmd('L', x+w, y)
		b.cmd('L', x+w, y+h)
		b.cmd('L', x, y+h)
		b.cmd('Z')
		return b.String()
	}

	b.cmd('M', x+rx, y)
	b.cmd('L', x+w-rx, y)
	b.cmd('A', rx, ry, 0, 0, 1, x+w, y+ry)
	b.cmd('L', x+w, y+h-ry)
	b.cmd('A', rx, ry, 0, 0, 1, x+w-rx, y+h)
	b.cmd('L', x+rx, y+h)
	b.cmd('A', rx, ry, 0, 0, 1, x, y+h-ry)
	b.cmd('L', x, y+ry)
	b.cmd('A', rx, ry, 0, 0, 1, x+rx, y)
	b.cmd('Z')
	return b.String()
}

// CirclePath returns path data for a circle, drawn as two half-circle arcs
// starting at the leftmost point.
func CirclePath(cx, cy, r float64) string {
	return EllipsePath(cx, cy, r, r)
}

// EllipsePath returns path data for an axis-aligned ellipse, drawn as two
// half-ellipse arcs starting at the leftmost point.
func EllipsePath(cx, cy, rx, ry float64) string {
	var b pathBuilder
	b.cmd('M', cx-rx, cy)
	b.cmd('A', rx, ry, 0, 1, 1, cx+rx, cy)
	b.cmd('A', rx, ry, 0, 1, 1, cx-rx, cy)
	return b.String()
}

// LinePath returns path data for a single straight line.
func LinePath(x1, y1, x2, y2 float64) string {
	var b pathBuilder
	b.cmd('M', x1, y1)
	b.cmd('L', x2, y2)
	return b.String()
}

// PolyPath returns path data for a polyline through the given coordinate
// pairs. If closed is true, the path ends with Z. A trailing odd
// coordinate is ignored.
func PolyPath(coords []float64, closed bool) string {
	var b pathBuilder
	for i := 0; i+1 < len(coords); i += 2 {
		if i == 0 {
			b.cmd('M', coords[i], coords[i+1])
		} else {
			b.cmd('L', coords[i], coords[i+1])
		}
	}
	if closed && len(coords) >= 2 {
		b.cmd('Z')
	}
	return b.String()
}

type pathBuilder struct {
	strings.Builder
}

func (b *pathBuilder) cmd(c byte, args ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(c)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
}
