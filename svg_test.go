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
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func outlinesOf(t *testing.T, svg string, w, h int) []Outline {
	t.Helper()
	res, err := Outlines(svg, w, h, nil)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestOutlineDefaults(t *testing.T) {
	res := outlinesOf(t, `<svg><path d="M0 0 L10 10"/></svg>`, 10, 10)
	if len(res) != 1 {
		t.Fatalf("got %d outlines, want 1", len(res))
	}
	o := res[0]
	if o.Element != "path" {
		t.Errorf("element %q", o.Element)
	}
	if o.Stroke != (color.NRGBA{A: 0xff}) {
		t.Errorf("stroke %v, want opaque black", o.Stroke)
	}
	if o.Fill.A != 0 {
		t.Errorf("fill %v, want none", o.Fill)
	}
	if o.StrokeRadius != 1 {
		t.Errorf("stroke radius %d, want 1", o.StrokeRadius)
	}
}

func TestOutlineDefaultColor(t *testing.T) {
	opts := DefaultOptions()
	opts.DefaultColor = color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}
	res, err := Outlines(`<svg><line x1="0" y1="0" x2="5" y2="5"/></svg>`, 10, 10, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Stroke != opts.DefaultColor {
		t.Errorf("got %v", res)
	}
}

func TestOutlineStyle(t *testing.T) {
	svg := `<svg>
<g fill="red" stroke="blue" stroke-width="4">
  <rect x="1" y="1" width="5" height="5"/>
  <rect x="1" y="1" width="5" height="5" style="fill: none; stroke: #00ff00"/>
  <rect x="1" y="1" width="5" height="5" fill="inherit" stroke="none"/>
</g>
<circle cx="5" cy="5" r="2" fill="black" opacity="0.5"/>
<g opacity="0.5"><circle cx="5" cy="5" r="2" fill="black" fill-opacity="50%"/></g>
<path d="M0 0 L5 5" opacity="0.5" style="opacity:0.5"/>
<path d="M0 0 L5 5" opacity="0.5" style="opacity: 0.25"/>
<g opacity="0.5"><path d="M0 0 L5 5" opacity="0.5" style="opacity:0.5"/></g>
</svg>`
	res := outlinesOf(t, svg, 20, 20)
	if len(res) != 8 {
		t.Fatalf("got %d outlines, want 8", len(res))
	}

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}
	cases := []struct {
		stroke, fill color.NRGBA
		radius       int
	}{
		{blue, red, 2},
		{green, color.NRGBA{}, 2},
		{color.NRGBA{}, red, 2},
		{color.NRGBA{A: 128}, color.NRGBA{A: 128}, 1},
		{color.NRGBA{A: 128}, color.NRGBA{A: 64}, 1},
		{color.NRGBA{A: 128}, color.NRGBA{}, 1},
		{color.NRGBA{A: 64}, color.NRGBA{}, 1},
		{color.NRGBA{A: 64}, color.NRGBA{}, 1},
	}
	for i, c := range cases {
		o := res[i]
		if o.Stroke != c.stroke || o.Fill != c.fill || o.StrokeRadius != c.radius {
			t.Errorf("%d: got stroke=%v fill=%v r=%d, want %v %v %d",
				i, o.Stroke, o.Fill, o.StrokeRadius, c.stroke, c.fill, c.radius)
		}
	}
}

func TestOutlineViewBox(t *testing.T) {
	svg := `<svg viewBox="10 20 50 25"><path d="M10 20 L60 45"/></svg>`
	res := outlinesOf(t, svg, 100, 50)
	if len(res) != 1 {
		t.Fatalf("got %d outlines", len(res))
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 50}}
	for i, w := range want {
		if got := res[0].Path.Coords[i]; got.Sub(w).Length() > 1e-9 {
			t.Errorf("coord %d: got %v, want %v", i, got, w)
		}
	}
	// stroke width 1 in a 2x scaled document
	if res[0].StrokeRadius != 1 {
		t.Errorf("stroke radius %d", res[0].StrokeRadius)
	}
}

func TestOutlineWidthHeight(t *testing.T) {
	svg := `<svg width="20px" height="10"><path d="M20 10 L0 0" stroke-width="4"/></svg>`
	res := outlinesOf(t, svg, 60, 30)
	got := res[0].Path.Coords[0]
	if got.Sub(vec.Vec2{X: 60, Y: 30}).Length() > 1e-9 {
		t.Errorf("got %v, want (60,30)", got)
	}
	if res[0].StrokeRadius != 6 {
		t.Errorf("stroke radius %d, want 6", res[0].StrokeRadius)
	}
}

func TestOutlineNestedTransform(t *testing.T) {
	svg := `<svg>
<g transform="translate(10,10)">
  <g transform="scale(2)">
    <path d="M1 1"/>
  </g>
</g>
</svg>`
	res := outlinesOf(t, svg, 40, 40)
	if len(res) != 1 {
		t.Fatalf("got %d outlines", len(res))
	}
	if got := res[0].Path.Coords[0]; got != (vec.Vec2{X: 12, Y: 12}) {
		t.Errorf("got %v, want (12,12)", got)
	}
}

func TestOutlineUnsupportedElement(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(buf, nil))

	svg := `<svg><title>x</title><text x="1" y="1">hi</text><path d="M0 0 L5 5"/></svg>`
	res, err := Outlines(svg, 10, 10, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Element != "path" {
		t.Errorf("got %v", res)
	}
	log := buf.String()
	if !strings.Contains(log, "element=text") {
		t.Errorf("no warning for <text>: %q", log)
	}
	if strings.Contains(log, "element=title") {
		t.Errorf("unexpected warning for <title>: %q", log)
	}
}

func TestOutlineSkipsEmptyShapes(t *testing.T) {
	svg := `<svg>
<rect width="0" height="10"/>
<circle r="-1"/>
<ellipse rx="3"/>
<path d=""/>
<polyline points=""/>
</svg>`
	if res := outlinesOf(t, svg, 10, 10); len(res) != 0 {
		t.Errorf("got %d outlines, want 0", len(res))
	}
}

func TestOutlineErrors(t *testing.T) {
	cases := []struct {
		svg     string
		element string
	}{
		{`<svg><path d="M1 1 L"/></svg>`, "path"},
		{`<svg><path d="X1 1"/></svg>`, "path"},
		{`<svg><rect width="a" height="1"/></svg>`, "rect"},
		{`<svg><polygon points="1 2 3 x"/></svg>`, "polygon"},
		{`<svg><path d="M1 1"></svg>`, ""},
		{``, ""},
	}
	for _, c := range cases {
		_, err := Outlines(c.svg, 10, 10, nil)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: got %v, want ParseError", c.svg, err)
			continue
		}
		if perr.Element != c.element {
			t.Errorf("%q: element %q, want %q", c.svg, perr.Element, c.element)
		}
	}
}

func TestOutlineDimensionError(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := Outlines(`<svg/>`, size[0], size[1], nil)
		var derr *DimensionError
		if !errors.As(err, &derr) {
			t.Errorf("%v: got %v, want DimensionError", size, err)
		}
	}
}

func TestDocumentSize(t *testing.T) {
	cases := []struct {
		svg  string
		w, h float64
		ok   bool
	}{
		{`<svg viewBox="0 0 30 40"/>`, 30, 40, true},
		{`<svg width="12px" height="8"/>`, 12, 8, true},
		{`<svg viewBox="0 0 30 40" width="1" height="2"/>`, 30, 40, true},
		{`<svg/>`, 0, 0, false},
		{`<svg viewBox="0 0 -1 4"/>`, 0, 0, false},
	}
	for _, c := range cases {
		w, h, ok, err := DocumentSize(c.svg)
		if err != nil {
			t.Errorf("%q: %v", c.svg, err)
			continue
		}
		if ok != c.ok || (ok && (w != c.w || h != c.h)) {
			t.Errorf("%q: got %g %g %t, want %g %g %t", c.svg, w, h, ok, c.w, c.h, c.ok)
		}
	}
}

func TestStrokeRadius(t *testing.T) {
	cases := []struct {
		width, scale float64
		want         int
	}{
		{1, 1, 1},
		{0.8, 1, 0},
		{2, 1, 1},
		{3, 1, 2},
		{0, 5, 0},
		{-4, 1, 0},
		{math.NaN(), 1, 0},
		{math.Inf(1), 1, maxStrokeRadius},
	}
	for _, c := range cases {
		if got := strokeRadius(c.width, c.scale); got != c.want {
			t.Errorf("strokeRadius(%g, %g) = %d, want %d", c.width, c.scale, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		none bool
	}{
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#1234", color.NRGBA{0x11, 0x22, 0x33, 0x44}, false},
		{"#2f2aA8", color.NRGBA{0x2f, 0x2a, 0xa8, 0xff}, false},
		{"#01020380", color.NRGBA{1, 2, 3, 0x80}, false},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 0xff}, false},
		{"RGB(100%,0%,50%)", color.NRGBA{0xff, 0, 0x80, 0xff}, false},
		{"rgba(0,0,0,0.5)", color.NRGBA{0, 0, 0, 0x80}, false},
		{"rgb(300,-5,0)", color.NRGBA{0xff, 0, 0, 0xff}, false},
		{" Navy ", color.NRGBA{0, 0, 0x80, 0xff}, false},
		{"none", color.NRGBA{}, true},
		{"transparent", color.NRGBA{}, true},
	}
	for _, c := range cases {
		got, none, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want || none != c.none {
			t.Errorf("%q: got %v %t, want %v %t", c.in, got, none, c.want, c.none)
		}
	}

	for _, bad := range []string{"", "#12", "#12345", "#ggg", "rgb(1,2)", "rgb(1,2,3", "rgba(1,2,3)", "notacolor", "url(#grad)",
		"rgb(NaN,0,0)", "rgb(Inf,0,0)", "rgb(1e999,0,0)", "rgb(1e999%,0,0)", "rgba(0,0,0,1e999)", "rgba(0,0,0,NaN)"} {
		if _, _, err := ParseColor(bad); err == nil {
			t.Errorf("%q: missing error", bad)
		}
	}
}

func TestParseOpacity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0.25", 0.25},
		{"50%", 0.5},
		{"2", 1},
		{"-1", 0},
	}
	for _, c := range cases {
		got, err := ParseOpacity(c.in)
		if err != nil || got != c.want {
			t.Errorf("%q: got %g, %v", c.in, got, err)
		}
	}
	for _, bad := range []string{"half", "NaN", "Inf", "-Inf", "1e999", "1e999%", ""} {
		if _, err := ParseOpacity(bad); err == nil {
			t.Errorf("%q: missing error", bad)
		}
	}
}
