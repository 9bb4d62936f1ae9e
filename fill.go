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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// fillInterior paints the fill colour of o onto every raster pixel inside
// one of its closed subpaths.
//
// A pixel is inside if at least half of it is covered under the nonzero
// winding rule and it is not a border pixel. Open subpaths enclose nothing
// and are ignored. The border itself is never painted by this method.
func (p *painter) fillInterior(o *Outline) {
	r := &p.raster
	dr := p.dst.Rect
	r.reset(rect.Rect{
		LLx: float64(dr.Min.X),
		LLy: float64(dr.Min.Y),
		URx: float64(dr.Max.X),
		URy: float64(dr.Max.Y),
	})
	if !p.addClosedSubpaths(o.Path) {
		return
	}

	m := &p.mask
	col := o.Fill
	r.fillNonZero(func(y, xMin int, coverage []float32) {
		inside := func(i int) bool {
			return coverage[i] >= fillCoverageThreshold && !m.At(xMin+i, y)
		}
		i := 0
		for i < len(coverage) {
			if !inside(i) {
				i++
				continue
			}
			i0 := i
			for i < len(coverage) && inside(i) {
				i++
			}
			p.fillSpan(y, xMin+i0, xMin+i, col)
		}
	})
}

// addClosedSubpaths flattens the closed subpaths of o and adds them to the
// rasterizer as polygons. A subpath is closed if it ends with ClosePath or
// returns exactly to its starting point. The return value reports whether
// any polygon was added.
func (p *painter) addClosedSubpaths(o *path.Data) bool {
	poly := p.poly[:0]
	closed := false
	added := false
	flush := func() {
		if len(poly) >= 3 && (closed || poly[0] == poly[len(poly)-1]) {
			p.raster.addPolygon(poly)
			added = true
		}
		poly = poly[:0]
		closed = false
	}

	coordIdx := 0
	for _, cmd := range o.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			poly = append(poly, o.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			poly = append(poly, o.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			flattenQuadratic(poly[len(poly)-1], o.Coords[coordIdx], o.Coords[coordIdx+1], p.flatness, func(_, b vec.Vec2) {
				poly = append(poly, b)
			})
			coordIdx += 2
		case path.CmdCubeTo:
			flattenCubic(poly[len(poly)-1], o.Coords[coordIdx], o.Coords[coordIdx+1], o.Coords[coordIdx+2], p.flatness, func(_, b vec.Vec2) {
				poly = append(poly, b)
			})
			coordIdx += 3
		case path.CmdClose:
			if len(poly) == 0 {
				continue
			}
			closed = true
			start := poly[0]
			flush()
			// drawing may continue from the start of the closed subpath
			poly = append(poly, start)
		}
	}
	flush()
	p.poly = poly
	return added
}

// fillSpan paints the pixels x0, ..., x1-1 of row y.
func (p *painter) fillSpan(y, x0, x1 int, col color.NRGBA) {
	if col.A == 0xff {
		i := p.dst.PixOffset(x0, y)
		for range x1 - x0 {
			p.dst.Pix[i+0] = col.R
			p.dst.Pix[i+1] = col.G
			p.dst.Pix[i+2] = col.B
			p.dst.Pix[i+3] = col.A
			i += 4
		}
		return
	}
	for x := x0; x < x1; x++ {
		blendPixel(p.dst, x, y, col)
	}
}

// fillCoverageThreshold is the coverage from which a pixel counts as part
// of the interior.
const fillCoverageThreshold = 0.5
