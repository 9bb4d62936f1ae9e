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

	"github.com/chewxy/math32"
)

// Unreachable is the distance reported by DistanceField for pixels which
// cannot be reached from any transparent pixel.
const Unreachable = math.MaxInt

// DistanceField computes, for every pixel of img, the number of steps to
// the nearest fully transparent pixel. Steps go to any of the eight
// neighbours. Transparent pixels have distance 0. If img has no
// transparent pixel, all distances are Unreachable.
//
// The distances are returned in row-major order, together with the
// largest finite distance.
func DistanceField(img *image.NRGBA) (dist []int, maxDist int) {
	b := img.Rect
	w, h := b.Dx(), b.Dy()
	dist = make([]int, w*h)
	queue := make([]int32, 0, w*h)

	for y := range h {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range w {
			i := y*w + x
			if img.Pix[row+4*x+3] == 0 {
				queue = append(queue, int32(i))
			} else {
				dist[i] = Unreachable
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		i := int(queue[head])
		x, y := i%w, i/w
		d := dist[i] + 1
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				if nx < 0 || nx >= w {
					continue
				}
				j := ny*w + nx
				if dist[j] > d {
					dist[j] = d
					queue = append(queue, int32(j))
				}
			}
		}
		maxDist = max(maxDist, d-1)
	}
	return dist, maxDist
}

// ApplyBallpoint makes the strokes in img fade towards their edges, in
// place. Pixels next to the transparent background keep the fraction
// baseOpacity of their alpha, the innermost pixels keep all of it, and
// the factor increases linearly in between.
//
// Images where no pixel is more than one step away from the background
// are left unchanged.
func ApplyBallpoint(img *image.NRGBA, baseOpacity float32) {
	dist, maxDist := DistanceField(img)
	b := img.Rect
	w := b.Dx()
	for y := range b.Dy() {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range w {
			a := &img.Pix[row+4*x+3]
			if *a == 0 {
				continue
			}
			f := opacityFactor(dist[y*w+x], maxDist, baseOpacity)
			*a = uint8(math32.Round(float32(*a) * f))
		}
	}
}

// opacityFactor returns the alpha multiplier for a pixel at distance d
// from the background. The result increases with d, from base at d = 1
// to 1 at d = maxDist.
func opacityFactor(d, maxDist int, base float32) float32 {
	if maxDist <= 1 || d == Unreachable {
		return 1
	}
	t := float32(d-1) / float32(maxDist-1)
	return math32.Min(base+(1-base)*t, 1)
}

// InkStyle describes how ApplyInk recolours a rendered drawing.
type InkStyle struct {
	// Color is the base colour of the ink. Its alpha value is ignored.
	Color color.NRGBA

	// Jitter is the full range of the random variation added to each
	// colour channel, as a fraction of the channel range.
	Jitter float32

	// DotModulus selects the dot pattern: pixels where (x+y) is a
	// multiple of DotModulus are dot pixels. Zero disables the pattern.
	DotModulus int

	// DotOpacity is the alpha multiplier applied to dot pixels. Zero makes
	// dot pixels fully transparent.
	DotOpacity float32
}

// DefaultInk returns the blue ballpoint ink.
func DefaultInk() *InkStyle {
	return &InkStyle{
		Color:      color.NRGBA{R: 0x2f, G: 0x2a, B: 0xa8, A: 0xff},
		Jitter:     0.05,
		DotModulus: 20,
		DotOpacity: 0,
	}
}

// ApplyInk recolours the visible pixels of img with the ink colour, in
// place. Each colour channel is shifted by a small pseudo-random amount
// which depends only on the pixel position, so the result is
// deterministic. Alpha is kept, except on the dot pattern.
func ApplyInk(img *image.NRGBA, ink *InkStyle) {
	base := [3]float32{
		float32(ink.Color.R) / 255,
		float32(ink.Color.G) / 255,
		float32(ink.Color.B) / 255,
	}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			px := img.Pix[i : i+4 : i+4]
			if px[3] == 0 {
				continue
			}
			j := latticeNoise(x, y)*ink.Jitter - ink.Jitter/2
			for c := range base {
				v := math32.Max(0, math32.Min(base[c]+j, 1))
				px[c] = uint8(math32.Round(v * 255))
			}
			if ink.DotModulus > 0 && (x+y)%ink.DotModulus == 0 {
				px[3] = uint8(math32.Round(float32(px[3]) * ink.DotOpacity))
			}
		}
	}
}

// latticeNoise returns a pseudo-random value in the range (-1, 1] for the
// integer point (x, y). The computation uses 32-bit wrap-around
// arithmetic.
func latticeNoise(x, y int) float32 {
	n := int32(x)*1619 + int32(y)*31337
	n = (n << 13) ^ n
	m := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return 1 - float32(m)/1073741824
}

// RenderBallpoint renders svg like Render and then applies the ballpoint
// effect with the given base opacity. If ink is not nil, the drawing is
// also recoloured with ApplyInk.
func RenderBallpoint(svg string, width, height int, opts *Options, baseOpacity float32, ink *InkStyle) (*image.NRGBA, error) {
	img, err := Render(svg, width, height, opts)
	if img == nil || err != nil {
		return img, err
	}
	ApplyBallpoint(img, baseOpacity)
	if ink != nil {
		ApplyInk(img, ink)
	}
	return img, nil
}
