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

// Command svgraster renders an SVG drawing into a raster image.
//
// Usage:
//
//	svgraster [flags] -in drawing.svg -out drawing.png
//
// The name "-" reads the drawing from standard input or writes a PNG image
// to standard output. The output format is chosen by the file extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"seehuhn.de/go/svgraster"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var (
	source      = flag.String("in", pipeName, "Source SVG file")
	destination = flag.String("out", pipeName, "Destination image file")
	width       = flag.Int("width", 0, "Output width (default: document width)")
	height      = flag.Int("height", 0, "Output height (default: document height)")
	supersample = flag.Int("ss", 2, "Supersampling factor")
	workers     = flag.Int("workers", runtime.NumCPU(), "Number of downsampling workers")
	ballpoint   = flag.Bool("ballpoint", false, "Apply the ballpoint pen effect")
	opacity     = flag.Float64("opacity", 0.5, "Base opacity of the ballpoint effect")
	ink         = flag.String("ink", "", "Ink colour of the ballpoint drawing (default blue ink)")
	trim        = flag.Bool("trim", false, "Crop transparent borders")
	strokeColor = flag.String("color", "black", "Default stroke colour")
	verbose     = flag.Bool("v", false, "Log debugging information")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, "svgraster:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	svg, err := readSource(*source)
	if err != nil {
		return err
	}

	def, _, err := svgraster.ParseColor(*strokeColor)
	if err != nil {
		return fmt.Errorf("-color: %w", err)
	}
	opts := &svgraster.Options{
		Supersample:  *supersample,
		Workers:      *workers,
		DefaultColor: def,
		Logger:       logger,
	}

	w, h := *width, *height
	if w <= 0 || h <= 0 {
		dw, dh, ok, err := svgraster.DocumentSize(svg)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("document has no size, use -width and -height")
		}
		switch {
		case w <= 0 && h <= 0:
			w, h = int(math.Ceil(dw)), int(math.Ceil(dh))
		case w <= 0:
			w = int(math.Ceil(float64(h) * dw / dh))
		default:
			h = int(math.Ceil(float64(w) * dh / dw))
		}
	}

	var img *image.NRGBA
	if *ballpoint {
		style, err := inkStyle(*ink)
		if err != nil {
			return err
		}
		img, err = svgraster.RenderBallpoint(svg, w, h, opts, float32(*opacity), style)
		if err != nil {
			return err
		}
	} else {
		img, err = svgraster.Render(svg, w, h, opts)
		if err != nil {
			return err
		}
	}
	if *trim {
		img = svgraster.TrimTransparent(img)
	}

	return writeDestination(*destination, img)
}

// inkStyle returns the ink used for the ballpoint effect. The default ink
// is used unless name gives a different colour.
func inkStyle(name string) (*svgraster.InkStyle, error) {
	style := svgraster.DefaultInk()
	if name == "" {
		return style, nil
	}
	c, _, err := svgraster.ParseColor(name)
	if err != nil {
		return nil, fmt.Errorf("-ink: %w", err)
	}
	style.Color = c
	return style, nil
}

func readSource(name string) (string, error) {
	if name == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return "", errors.New("`-` should be used with a pipe for stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func writeDestination(name string, img *image.NRGBA) (err error) {
	if name == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return imaging.Encode(os.Stdout, img, imaging.PNG)
	}

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return imaging.Encode(f, img, format)
}
