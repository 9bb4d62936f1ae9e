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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func line(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1})
}

func TestBorderMask(t *testing.T) {
	var m BorderMask
	m.Reset(image.Rect(-2, -2, 3, 3))
	m.Set(-2, -2)
	m.Set(2, 2)
	m.Set(3, 0) // outside, ignored

	if !m.At(-2, -2) || !m.At(2, 2) {
		t.Error("set pixels are not marked")
	}
	if m.At(0, 0) || m.At(3, 0) || m.At(-3, -3) {
		t.Error("unset pixel is marked")
	}

	m.Reset(image.Rect(0, 0, 2, 2))
	if m.At(0, 0) || m.At(1, 1) {
		t.Error("Reset did not clear the mask")
	}
}

func TestStrokeHorizontalLine(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	p := newPainter(dst, defaultFlatness)
	p.draw(&Outline{Path: line(0, 5, 20, 5), Stroke: black, StrokeRadius: 2})

	for y := range 10 {
		want := uint8(0)
		if y >= 3 && y <= 6 {
			want = 0xff
		}
		for x := range 20 {
			if got := dst.NRGBAAt(x, y).A; got != want {
				t.Errorf("pixel (%d,%d): alpha %d, want %d", x, y, got, want)
			}
			if p.mask.At(x, y) != (want != 0) {
				t.Errorf("pixel (%d,%d): wrong mask value", x, y)
			}
		}
	}
}

func TestStrokeZeroRadius(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	p := newPainter(dst, defaultFlatness)
	p.draw(&Outline{Path: line(2, 5.5, 18, 5.5), Stroke: black})

	for y := range 10 {
		if got, want := p.mask.At(10, y), y == 5; got != want {
			t.Errorf("row %d: mask %t, want %t", y, got, want)
		}
	}
}

func TestStrokeSinglePoint(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 21, 21))
	p := newPainter(dst, defaultFlatness)
	p.draw(&Outline{Path: line(10.5, 10.5, 10.5, 10.5), Stroke: black, StrokeRadius: 3})

	for _, pt := range []image.Point{{10, 10}, {8, 10}, {10, 12}, {12, 10}} {
		if dst.NRGBAAt(pt.X, pt.Y).A == 0 {
			t.Errorf("pixel %v inside the dot is not painted", pt)
		}
	}
	for _, pt := range []image.Point{{14, 10}, {6, 10}, {13, 13}, {10, 15}} {
		if dst.NRGBAAt(pt.X, pt.Y).A != 0 {
			t.Errorf("pixel %v outside the dot is painted", pt)
		}
	}
}

func TestStrokeCorner(t *testing.T) {
	// Round joins leave no gap at the outside of a corner.
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	p := newPainter(dst, defaultFlatness)
	o := &Outline{
		Path: (&path.Data{}).
			MoveTo(vec.Vec2{X: 2, Y: 10}).
			LineTo(vec.Vec2{X: 10, Y: 10}).
			LineTo(vec.Vec2{X: 10, Y: 18}),
		Stroke:       black,
		StrokeRadius: 2,
	}
	p.draw(o)
	for _, pt := range []image.Point{{10, 8}, {11, 9}, {9, 10}, {11, 11}} {
		if dst.NRGBAAt(pt.X, pt.Y).A != 0xff {
			t.Errorf("pixel %v at the corner is not painted", pt)
		}
	}
}

func TestTransparentStrokeMasks(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	p := newPainter(dst, defaultFlatness)
	p.draw(&Outline{Path: line(0, 5, 20, 5), StrokeRadius: 2})

	if !p.mask.At(10, 5) {
		t.Error("transparent stroke does not mark the border")
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatal("transparent stroke painted a pixel")
		}
	}
}

func TestBlendPixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	blendPixel(img, 0, 0, color.NRGBA{R: 0xff, A: 0x80})
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0xff, A: 0x80}) {
		t.Errorf("blend onto transparent: %v", got)
	}

	img.SetNRGBA(0, 0, color.NRGBA{B: 0xff, A: 0xff})
	blendPixel(img, 0, 0, color.NRGBA{R: 0xff, A: 0x80})
	got := img.NRGBAAt(0, 0)
	if got.A != 0xff || got.R != 0x80 || got.B != 0x7f {
		t.Errorf("blend onto opaque: %v", got)
	}
}
