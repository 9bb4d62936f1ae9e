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
	"log/slog"
	"runtime"
)

// Options holds the per-call configuration of the rendering pipeline.
// A nil *Options is equivalent to the value returned by DefaultOptions.
type Options struct {
	// Supersample is the supersampling factor N. The drawing is rendered
	// at N times the requested width and height and then averaged down.
	// Values below 2 disable supersampling.
	Supersample int

	// Workers bounds the number of goroutines used to downsample a
	// supersampled image. Values below 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// DefaultColor is the stroke colour used for shapes without a
	// stroke attribute.
	DefaultColor color.NRGBA

	// Flatness controls curve approximation accuracy in raster pixels.
	// Values of 0.25–1.0 are typical. Non-positive values select the
	// default.
	Flatness float64

	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns a new Options value with the default settings:
// 2x supersampling, black default stroke colour and a flatness of
// 0.25 pixels.
func DefaultOptions() *Options {
	return &Options{
		Supersample:  defaultSupersample,
		Workers:      runtime.GOMAXPROCS(0),
		DefaultColor: color.NRGBA{A: 0xff},
		Flatness:     defaultFlatness,
	}
}

// normalized returns a copy of o with out-of-range fields replaced by
// their defaults.
func (o *Options) normalized() *Options {
	if o == nil {
		o = DefaultOptions()
	}
	res := *o
	if res.Supersample < 1 {
		res.Supersample = 1
	}
	if res.Workers < 1 {
		res.Workers = runtime.GOMAXPROCS(0)
	}
	if res.Flatness <= 0 {
		res.Flatness = defaultFlatness
	}
	if res.Logger == nil {
		res.Logger = newNopLogger()
	}
	return &res
}

const (
	// defaultSupersample is the supersampling factor used by
	// DefaultOptions.
	defaultSupersample = 2

	// defaultFlatness is the default curve flattening tolerance in raster
	// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25
)
