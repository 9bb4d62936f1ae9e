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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BorderMask records which pixels belong to the stroke of an outline.
// Border pixels are excluded from the fill of an outline.
type BorderMask struct {
	// Rect is the area covered by the mask.
	Rect image.Rectangle

	bits []bool
}

// Reset clears the mask and sets its area to r.
func (m *BorderMask) Reset(r image.Rectangle) {
	m.Rect = r
	n := r.Dx() * r.Dy()
	if cap(m.bits) < n {
		m.bits = make([]bool, n)
	} else {
		m.bits = m.bits[:n]
		clear(m.bits)
	}
}

// Set marks the pixel at (x, y) as a border pixel.
// Pixels outside the mask area are ignored.
func (m *BorderMask) Set(x, y int) {
	if (image.Point{X: x, Y: y}).In(m.Rect) {
		m.bits[m.index(x, y)] = true
	}
}

// At reports whether the pixel at (x, y) is a border pixel.
func (m *BorderMask) At(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return false
	}
	return m.bits[m.index(x, y)]
}

func (m *BorderMask) index(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Rect.Dx() + (x - m.Rect.Min.X)
}

// stroke marks all pixels within the stroke radius of o's outline as
// border pixels, and paints them in the stroke colour.
//
// Every flattened segment is widened into a capsule with round ends. The
// capsules are united by rasterizing them together under the nonzero
// winding rule, and a pixel belongs to the stroke if at least half of it
// is covered. Round ends on every segment give round joins and caps, and
// leave no gaps between consecutive segments.
func (p *painter) stroke(o *Outline) {
	m := &p.mask
	r := &p.raster
	r.reset(rect.Rect{
		LLx: float64(m.Rect.Min.X),
		LLy: float64(m.Rect.Min.Y),
		URx: float64(m.Rect.Max.X),
		URy: float64(m.Rect.Max.Y),
	})

	radius := max(float64(o.StrokeRadius), minStrokeRadius)
	walkSegments(o.Path, p.flatness, func(a, b vec.Vec2) {
		p.addCapsule(a, b, radius)
	})

	paint := o.Stroke.A != 0
	dr := p.dst.Rect
	r.fillNonZero(func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c < strokeCoverageThreshold {
				continue
			}
			x := xMin + i
			m.Set(x, y)
			if paint && (image.Point{X: x, Y: y}).In(dr) {
				blendPixel(p.dst, x, y, o.Stroke)
			}
		}
	})
}

// addCapsule adds the region within distance radius of the segment a-b to
// the rasterizer. All capsules share the same orientation. A zero-length
// segment gives a disc.
func (p *painter) addCapsule(a, b vec.Vec2, radius float64) {
	d := b.Sub(a)
	length := d.Length()
	t := vec.Vec2{X: 1, Y: 0}
	if length > zeroLengthThreshold {
		t = d.Mul(1 / length)
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}

	steps := p.halfCircleSteps(radius)
	poly := p.poly[:0]
	// half circle around a, facing away from b
	for i := 0; i <= steps; i++ {
		phi := math.Pi/2 + math.Pi*float64(i)/float64(steps)
		s, c := math.Sincos(phi)
		poly = append(poly, a.Add(t.Mul(c*radius)).Add(n.Mul(s*radius)))
	}
	// half circle around b, facing away from a
	for i := 0; i <= steps; i++ {
		phi := -math.Pi/2 + math.Pi*float64(i)/float64(steps)
		s, c := math.Sincos(phi)
		poly = append(poly, b.Add(t.Mul(c*radius)).Add(n.Mul(s*radius)))
	}
	p.poly = poly
	p.raster.addPolygon(poly)
}

// halfCircleSteps returns the number of chords used to approximate a half
// circle of the given radius within the flatness tolerance.
//
// For a chord subtending angle θ on a circle of radius r, the maximum
// deviation (sagitta) is r*(1 - cos(θ/2)). For this to equal tolerance ε:
//
//	θ = 2*acos(1 - ε/r)
func (p *painter) halfCircleSteps(radius float64) int {
	if radius <= p.flatness {
		return minHalfCircleSteps
	}
	angleStep := 2 * math.Acos(1-p.flatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		return maxHalfCircleSteps
	}
	n := int(math.Ceil(math.Pi / angleStep))
	return max(minHalfCircleSteps, min(n, maxHalfCircleSteps))
}

const (
	// minStrokeRadius is the smallest geometric radius used for stroking.
	// A stroke radius of 0 pixels still marks a thin border, which is
	// needed to delimit the fill.
	minStrokeRadius = 0.5

	// strokeCoverageThreshold is the coverage from which a pixel counts
	// as part of the stroke.
	strokeCoverageThreshold = 0.5

	// zeroLengthThreshold is the length below which a segment is treated
	// as a single point.
	zeroLengthThreshold = 1e-10

	minHalfCircleSteps = 2
	maxHalfCircleSteps = 256
)
