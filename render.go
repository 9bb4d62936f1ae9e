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

// Package svgraster renders a subset of SVG into RGBA images.
//
// Supported are the path element with the full path data syntax, the
// basic shapes (rect, circle, ellipse, line, polyline, polygon), groups,
// and transformations made of scale and translate. Every shape is drawn
// as a stroke with round joins and caps, and the interior of its closed
// subpaths is optionally filled. Rendering uses supersampling for
// anti-aliasing.
//
// The ballpoint functions post-process rendered images so that they look
// like they have been drawn with a ballpoint pen: the opacity of the
// strokes falls off towards their edges, and the ink colour varies
// slightly from pixel to pixel.
package svgraster

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Render draws the SVG document svg into a new image of the given size.
//
// If the document cannot be parsed, the error is logged and Render
// returns a fully transparent image together with a *ParseError. If
// width or height is not positive, the image is nil and the error is a
// *DimensionError.
//
// Render is safe for concurrent use, as long as the options are not
// modified during the call.
func Render(svg string, width, height int, opts *Options) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	opts = opts.normalized()
	log := opts.Logger

	root, err := parseDocument(svg)
	if err != nil {
		return blankImage(width, height, log, err)
	}

	n := opts.Supersample
	if n <= 1 {
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		if err := drawDocument(img, root, width, height, 1, opts); err != nil {
			return blankImage(width, height, log, err)
		}
		return img, nil
	}

	big := image.NewNRGBA(image.Rect(0, 0, width*n, height*n))
	if err := drawDocument(big, root, width, height, n, opts); err != nil {
		return blankImage(width, height, log, err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	downsample(img, big, n, opts.Workers)
	return img, nil
}

// drawDocument paints all outlines of the document onto dst, which must
// have size (scale·width)×(scale·height).
func drawDocument(dst *image.NRGBA, root *element, width, height, scale int, opts *Options) error {
	size := dst.Rect.Size()
	outlines, err := collectOutlines(root, width, height, scale, opts)
	if err != nil {
		return err
	}

	p := newPainter(dst, opts.Flatness)
	for i := range outlines {
		p.draw(&outlines[i])
	}
	opts.Logger.Debug("rendered document",
		slog.Int("outlines", len(outlines)),
		slog.Int("width", size.X),
		slog.Int("height", size.Y))
	return nil
}

func blankImage(width, height int, log *slog.Logger, err error) (*image.NRGBA, error) {
	log.Warn("cannot render SVG", slog.Any("error", err))
	return image.NewNRGBA(image.Rect(0, 0, width, height)), err
}

// downsample averages n×n blocks of src into the pixels of dst. Each
// column of dst is computed by a separate job, and at most workers jobs
// run at the same time. The function returns after all columns are done.
//
// The channels of src are averaged independently and rounded to the
// nearest integer.
func downsample(dst, src *image.NRGBA, n, workers int) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	nn := uint32(n * n)

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for x := range w {
		g.Go(func() error {
			for y := range h {
				var sum [4]uint32
				for j := range n {
					i := src.PixOffset(x*n, y*n+j)
					for range n {
						sum[0] += uint32(src.Pix[i])
						sum[1] += uint32(src.Pix[i+1])
						sum[2] += uint32(src.Pix[i+2])
						sum[3] += uint32(src.Pix[i+3])
						i += 4
					}
				}
				o := dst.PixOffset(x, y)
				for c := range sum {
					dst.Pix[o+c] = uint8((sum[c] + nn/2) / nn)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // jobs never fail
}
