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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// painter draws outlines onto a raster. Scratch buffers are kept between
// outlines, so a painter should be reused for all outlines of a drawing.
//
// A painter is not safe for concurrent use.
type painter struct {
	dst      *image.NRGBA
	flatness float64

	raster coverageRasterizer
	mask   BorderMask
	poly   []vec.Vec2
}

func newPainter(dst *image.NRGBA, flatness float64) *painter {
	return &painter{
		dst:      dst,
		flatness: flatness,
	}
}

// draw paints one outline: first the stroke, then the fill of the region
// enclosed by the closed subpaths.
func (p *painter) draw(o *Outline) {
	if o.Path == nil || len(o.Path.Cmds) == 0 {
		return
	}
	p.mask.Reset(p.dst.Rect)
	p.stroke(o)
	if o.Fill.A != 0 {
		p.fillInterior(o)
	}
}

// blendPixel composites the colour c over the pixel at (x, y), using
// non-premultiplied source-over blending.
func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	if c.A == 0xff || px[3] == 0 {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		return
	}
	if c.A == 0 {
		return
	}

	sa := float64(c.A) / 255
	da := float64(px[3]) / 255 * (1 - sa)
	oa := sa + da
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round((float64(s)*sa + float64(d)*da) / oa))
	}
	px[0] = mix(c.R, px[0])
	px[1] = mix(c.G, px[1])
	px[2] = mix(c.B, px[2])
	px[3] = uint8(math.Round(oa * 255))
}
