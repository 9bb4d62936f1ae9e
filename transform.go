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
	"regexp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Affine is an axis-aligned scale-and-translate transformation.
// A point (x, y) is mapped to (SX*x + TX, SY*y + TY).
type Affine struct {
	SX, SY float64
	TX, TY float64
}

// Identity is the identity transformation.
var Identity = Affine{SX: 1, SY: 1}

// Apply maps the point p through the transformation.
func (a Affine) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: a.SX*p.X + a.TX, Y: a.SY*p.Y + a.TY}
}

// Compose returns the transformation which first applies child and then a.
// This is how a parent transformation combines with the transformation
// of a nested element.
func (a Affine) Compose(child Affine) Affine {
	return Affine{
		SX: a.SX * child.SX,
		SY: a.SY * child.SY,
		TX: a.SX*child.TX + a.TX,
		TY: a.SY*child.TY + a.TY,
	}
}

// Matrix returns the transformation as a general affine matrix.
func (a Affine) Matrix() matrix.Matrix {
	return matrix.Matrix{a.SX, 0, 0, a.SY, a.TX, a.TY}
}

var transformFunc = regexp.MustCompile(`([A-Za-z]+)\s*\(([^)]*)\)`)

// ParseTransform parses the value of an SVG transform attribute.
//
// Only scale(sx [sy]) and translate(tx [ty]) are understood. If sy is
// omitted it equals sx; if ty is omitted it is 0. The listed functions
// are composed right to left, so that the rightmost function is applied
// to the coordinates first.
//
// Other functions, and functions with malformed arguments, have no
// effect. Their source text is returned in ignored.
func ParseTransform(attr string) (t Affine, ignored []string) {
	t = Identity
	matches := transformFunc.FindAllStringSubmatch(attr, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		f, ok := transformFunction(m[1], m[2])
		if !ok {
			ignored = append(ignored, m[0])
			continue
		}
		t = f.Compose(t)
	}
	return t, ignored
}

func transformFunction(name, args string) (Affine, bool) {
	vals, err := parseNumberList(args)
	if err != nil || len(vals) < 1 || len(vals) > 2 {
		return Identity, false
	}

	switch name {
	case "scale":
		sx := vals[0]
		sy := sx
		if len(vals) > 1 {
			sy = vals[1]
		}
		return Affine{SX: sx, SY: sy}, true
	case "translate":
		tx := vals[0]
		var ty float64
		if len(vals) > 1 {
			ty = vals[1]
		}
		return Affine{SX: 1, SY: 1, TX: tx, TY: ty}, true
	default:
		return Identity, false
	}
}
