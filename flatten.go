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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// walkSegments flattens the path p into straight line segments and calls
// emit for each of them, in path order. Curves are approximated so that
// no point of the polyline is further than flatness from the curve.
//
// A subpath consisting of a single point produces one zero-length segment.
// A bare MoveTo produces nothing.
func walkSegments(p *path.Data, flatness float64, emit func(a, b vec.Vec2)) {
	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			emit(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], flatness, emit)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], flatness, emit)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				emit(current, subpath)
			}
			current = subpath
		}
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment. p0 is the start point, p1 the control point and p2 the end
// point. The last segment ends exactly at p2.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(a, b vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > flatness {
		n = int(math.Ceil(math.Sqrt(dev / flatness)))
	}

	prev := p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p2)
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment. p0 is the start point, p1 and p2 are the control points and p3
// is the end point. The last segment ends exactly at p3.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}

// arcToCubics converts an SVG elliptical arc from p0 to p1 into a sequence
// of cubic Bézier segments, each given as start, two control points and
// end. The radii rx and ry, and the x-axis rotation phiDeg (in degrees),
// follow the conventions of the SVG "A" command.
//
// Each segment spans at most 90 degrees of the ellipse. The first segment
// starts exactly at p0, each following segment starts exactly where the
// previous one ended, and the last one ends exactly at p1.
//
// The result is nil if p0 and p1 coincide. If rx or ry is zero, the arc
// degenerates to a straight line which the caller must draw.
func arcToCubics(p0 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool, p1 vec.Vec2) [][4]vec.Vec2 {
	if p0 == p1 {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return nil
	}

	phi := phiDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// step 1: move the midpoint of the chord to the origin and undo the
	// rotation
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// scale up the radii if the ellipse cannot reach both end points
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: centre in the rotated frame
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// step 3: centre in the original frame
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	// step 4: start angle and angular extent
	u := vec.Vec2{X: (x1p - cxp) / rx, Y: (y1p - cyp) / ry}
	v := vec.Vec2{X: (-x1p - cxp) / rx, Y: (-y1p - cyp) / ry}
	theta1 := vectorAngle(vec.Vec2{X: 1, Y: 0}, u)
	dTheta := vectorAngle(u, v)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dTheta)/(math.Pi/2) - arcSegmentSlack))
	n = max(n, 1)
	delta := dTheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	point := func(theta float64) vec.Vec2 {
		s, c := math.Sincos(theta)
		return vec.Vec2{
			X: cx + rx*c*cosPhi - ry*s*sinPhi,
			Y: cy + rx*c*sinPhi + ry*s*cosPhi,
		}
	}
	tangent := func(theta float64) vec.Vec2 {
		s, c := math.Sincos(theta)
		return vec.Vec2{
			X: -rx*s*cosPhi - ry*c*sinPhi,
			Y: -rx*s*sinPhi + ry*c*cosPhi,
		}
	}

	res := make([][4]vec.Vec2, n)
	start := p0
	for i := range n {
		t1 := theta1 + float64(i)*delta
		t2 := t1 + delta
		end := p1
		if i < n-1 {
			end = point(t2)
		}
		res[i] = [4]vec.Vec2{
			start,
			start.Add(tangent(t1).Mul(k)),
			end.Sub(tangent(t2).Mul(k)),
			end,
		}
		start = end
	}
	return res
}

// vectorAngle returns the signed angle from u to v, in the range [-π, π].
func vectorAngle(u, v vec.Vec2) float64 {
	return math.Atan2(u.X*v.Y-u.Y*v.X, u.X*v.X+u.Y*v.Y)
}

// arcSegmentSlack absorbs rounding error in the sweep angle, so that an
// exact half circle uses two cubic segments rather than three.
const arcSegmentSlack = 1e-9
