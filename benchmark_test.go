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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/svgraster/testcases"
)

func BenchmarkRender(b *testing.B) {
	for _, category := range []string{"complex", "large", "stroke"} {
		for _, tc := range testcases.All[category] {
			b.Run(category+"_"+tc.Name, func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := Render(tc.SVG, tc.Width, tc.Height, nil); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkRing strokes and fills a ring shaped outline with the
// capsule stroker.
func BenchmarkRing(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewNRGBA(image.Rect(0, 0, size, size))
			p := newPainter(dst, defaultFlatness)

			center := float64(size) / 2
			d := CirclePath(center, center, float64(size)*0.375)
			outline, err := interpretPath(d, Identity)
			if err != nil {
				b.Fatal(err)
			}
			o := &Outline{
				Path:         outline,
				Stroke:       color.NRGBA{A: 0xff},
				Fill:         color.NRGBA{R: 0xff, A: 0xff},
				StrokeRadius: int(float64(size) * 0.075),
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				p.draw(o)
			}
		})
	}
}

// BenchmarkVectorRing fills the area covered by the ring of BenchmarkRing
// with x/image/vector, as a baseline. The inner circle is mirrored to
// reverse its orientation.
func BenchmarkVectorRing(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			outer, err := interpretPath(CirclePath(center, center, float64(size)*0.45), Identity)
			if err != nil {
				b.Fatal(err)
			}
			mirror := Affine{SX: -1, SY: 1, TX: 2 * center}
			inner, err := interpretPath(CirclePath(center, center, float64(size)*0.30), mirror)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, outer)
				addToVector(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addToVector appends an outline to a vector.Rasterizer.
func addToVector(r *vector.Rasterizer, o *path.Data) {
	k := 0
	for _, cmd := range o.Cmds {
		c := o.Coords[k:]
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(c[0].X), float32(c[0].Y))
			k++
		case path.CmdLineTo:
			r.LineTo(float32(c[0].X), float32(c[0].Y))
			k++
		case path.CmdQuadTo:
			r.QuadTo(float32(c[0].X), float32(c[0].Y), float32(c[1].X), float32(c[1].Y))
			k += 2
		case path.CmdCubeTo:
			r.CubeTo(float32(c[0].X), float32(c[0].Y), float32(c[1].X), float32(c[1].Y),
				float32(c[2].X), float32(c[2].Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

func BenchmarkBallpoint(b *testing.B) {
	tc := testcases.All["complex"][0]
	img, err := Render(tc.SVG, tc.Width, tc.Height, nil)
	if err != nil {
		b.Fatal(err)
	}
	work := image.NewNRGBA(img.Rect)

	b.ReportAllocs()
	for b.Loop() {
		copy(work.Pix, img.Pix)
		ApplyBallpoint(work, 0.5)
		ApplyInk(work, DefaultInk())
	}
}
