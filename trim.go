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

	"github.com/disintegration/imaging"
)

// TrimTransparent returns a copy of img cropped to the smallest rectangle
// containing all pixels with non-zero alpha. The result has its origin at
// (0, 0). A fully transparent image gives a single transparent pixel.
func TrimTransparent(img *image.NRGBA) *image.NRGBA {
	r := OpaqueBounds(img)
	if r.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	return imaging.Crop(img, r)
}

// OpaqueBounds returns the smallest rectangle containing all pixels of
// img with non-zero alpha. The result is empty if there are none.
func OpaqueBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		for x := range b.Dx() {
			if img.Pix[row+4*x+3] == 0 {
				continue
			}
			px := image.Rect(b.Min.X+x, y, b.Min.X+x+1, y+1)
			if r.Empty() {
				r = px
			} else {
				r = r.Union(px)
			}
		}
	}
	return r
}
