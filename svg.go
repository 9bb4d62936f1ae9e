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
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strings"

	"seehuhn.de/go/geom/path"
)

// Outline is a single drawable shape of an SVG document, converted to
// raster pixel coordinates.
type Outline struct {
	// Element is the name of the SVG element the outline was made from.
	Element string

	// Path is the shape geometry in pixel coordinates. Arcs have been
	// converted to cubic Bézier segments.
	Path *path.Data

	// Stroke is the stroke colour. Even a fully transparent stroke
	// delimits the filled region.
	Stroke color.NRGBA

	// Fill is the fill colour. A fully transparent fill disables filling.
	Fill color.NRGBA

	// StrokeRadius is half the stroke width, in pixels.
	StrokeRadius int
}

// Outlines parses an SVG document and returns its shapes in drawing
// order, mapped onto a raster of the given size. No supersampling is
// applied; opts.Supersample is ignored.
func Outlines(svg string, width, height int, opts *Options) ([]Outline, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	opts = opts.normalized()
	root, err := parseDocument(svg)
	if err != nil {
		return nil, err
	}
	return collectOutlines(root, width, height, 1, opts)
}

// element is a node of the SVG document tree.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
}

// parseDocument decodes the XML of an SVG document into an element tree.
// Only element nodes are kept.
func parseDocument(svg string) (*element, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	dec.Entity = xml.HTMLEntity

	var root *element
	var stack []*element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ParseError{
				Offset: int(dec.InputOffset()),
				Msg:    "malformed XML",
				Err:    err,
			}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  t.Name.Local,
				attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, &ParseError{Offset: -1, Msg: "no root element"}
	}
	return root, nil
}

// docViewport describes the area of the document coordinate system which
// is mapped onto the raster.
type docViewport struct {
	minX, minY    float64
	width, height float64
}

// documentViewport determines the document size. The viewBox attribute
// takes precedence over width and height. Missing or unusable sizes
// default to the raster size.
func documentViewport(root *element, width, height int) docViewport {
	vp := docViewport{width: float64(width), height: float64(height)}

	if vb, ok := root.attrs["viewBox"]; ok {
		v, err := parseNumberList(vb)
		if err == nil && len(v) == 4 && v[2] > 0 && v[3] > 0 {
			return docViewport{minX: v[0], minY: v[1], width: v[2], height: v[3]}
		}
	}

	if w, err := parseLength(root.attrs["width"]); err == nil && w > 0 {
		vp.width = w
	}
	if h, err := parseLength(root.attrs["height"]); err == nil && h > 0 {
		vp.height = h
	}
	return vp
}

// DocumentSize returns the size of an SVG document in document units, as
// given by the viewBox attribute or by the width and height attributes of
// the root element. The result is ok only if both dimensions are known.
func DocumentSize(svg string) (width, height float64, ok bool, err error) {
	root, err := parseDocument(svg)
	if err != nil {
		return 0, 0, false, err
	}
	vp := documentViewport(root, 0, 0)
	return vp.width, vp.height, vp.width > 0 && vp.height > 0, nil
}

// parseLength parses a length attribute. Plain numbers and numbers with a
// "px" suffix are accepted.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	return parseNumber(s)
}

// outlineCollector walks the element tree and converts shapes to outlines.
type outlineCollector struct {
	log          *slog.Logger
	defaultColor color.NRGBA

	// viewport maps document coordinates to raster pixels.
	viewport Affine

	// strokeScale converts stroke widths from document units to pixels.
	strokeScale float64

	out []Outline
}

// collectOutlines extracts the outlines of the document for a raster of
// size width×height. The outline coordinates are multiplied by scale, so
// that they fit a raster which is scale times larger in each direction.
func collectOutlines(root *element, width, height, scale int, opts *Options) ([]Outline, error) {
	vp := documentViewport(root, width, height)
	pw := float64(width * scale)
	ph := float64(height * scale)
	sx := pw / vp.width
	sy := ph / vp.height
	c := &outlineCollector{
		log:          opts.Logger,
		defaultColor: opts.DefaultColor,
		viewport:     Affine{SX: sx, SY: sy, TX: -vp.minX * sx, TY: -vp.minY * sy},
		strokeScale:  math.Sqrt(pw * ph / (vp.width * vp.height)),
	}

	xf := c.transform(root, Identity)
	st := defaultStyle().derive(root, c.log)
	if err := c.walk(root, xf, st); err != nil {
		return nil, err
	}
	return c.out, nil
}

// transform returns the transformation for el, given the accumulated
// transformation of its parent.
func (c *outlineCollector) transform(el *element, parent Affine) Affine {
	attr, ok := el.attrs["transform"]
	if !ok {
		return parent
	}
	local, ignored := ParseTransform(attr)
	for _, f := range ignored {
		c.log.Warn("ignoring transform function",
			slog.String("element", el.name),
			slog.String("function", f))
	}
	return parent.Compose(local)
}

func (c *outlineCollector) walk(parent *element, xf Affine, st style) error {
	for _, el := range parent.children {
		elXf := c.transform(el, xf)
		elSt := st.derive(el, c.log)

		var err error
		switch el.name {
		case "g", "svg":
			err = c.walk(el, elXf, elSt)
		case "path":
			err = c.addPath(el, el.attrs["d"], elXf, elSt)
		case "rect", "circle", "ellipse", "line", "polyline", "polygon":
			var d string
			d, err = shapePath(el)
			if err == nil && d != "" {
				err = c.addPath(el, d, elXf, elSt)
			}
		case "title", "desc", "metadata":
			// not drawn
		default:
			c.log.Warn("skipping unsupported element", slog.String("element", el.name))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *outlineCollector) addPath(el *element, d string, xf Affine, st style) error {
	p, err := interpretPath(d, c.viewport.Compose(xf))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Element = el.name
		}
		return err
	}
	if len(p.Cmds) == 0 {
		return nil
	}

	c.out = append(c.out, Outline{
		Element:      el.name,
		Path:         p,
		Stroke:       st.strokeColor(c.defaultColor),
		Fill:         st.fillColor(),
		StrokeRadius: strokeRadius(st.strokeWidth, c.strokeScale),
	})
	return nil
}

// strokeRadius converts a stroke width in document units into a radius in
// pixels.
func strokeRadius(width, scale float64) int {
	r := math.Round(width * scale / 2)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	return int(min(r, maxStrokeRadius))
}

// maxStrokeRadius bounds the stroke radius, in pixels.
const maxStrokeRadius = 1 << 16

// shapePath converts a basic shape element into path data. An empty
// result means that the shape is not drawn.
func shapePath(el *element) (string, error) {
	a := attrReader{el: el}
	var d string
	switch el.name {
	case "rect":
		x, y := a.num("x"), a.num("y")
		w, h := a.num("width"), a.num("height")
		rx, ry := a.num("rx"), a.num("ry")
		if w > 0 && h > 0 {
			d = RectPath(x, y, w, h, rx, ry)
		}
	case "circle":
		cx, cy, r := a.num("cx"), a.num("cy"), a.num("r")
		if r > 0 {
			d = CirclePath(cx, cy, r)
		}
	case "ellipse":
		cx, cy := a.num("cx"), a.num("cy")
		rx, ry := a.num("rx"), a.num("ry")
		if rx > 0 && ry > 0 {
			d = EllipsePath(cx, cy, rx, ry)
		}
	case "line":
		d = LinePath(a.num("x1"), a.num("y1"), a.num("x2"), a.num("y2"))
	case "polyline", "polygon":
		d = PolyPath(a.points("points"), el.name == "polygon")
	}
	if a.err != nil {
		return "", a.err
	}
	return d, nil
}

// attrReader reads numeric attributes of an element. The first error
// is kept in err and later reads return 0.
type attrReader struct {
	el  *element
	err error
}

func (a *attrReader) num(name string) float64 {
	s, ok := a.el.attrs[name]
	if !ok || a.err != nil {
		return 0
	}
	x, err := parseLength(s)
	if err != nil {
		a.err = &ParseError{Element: a.el.name, Offset: -1, Token: s, Msg: "invalid " + name, Err: err}
		return 0
	}
	return x
}

func (a *attrReader) points(name string) []float64 {
	s := a.el.attrs[name]
	if a.err != nil {
		return nil
	}
	var res []float64
	for _, tok := range tokenizePath(s) {
		x, err := parseNumber(tok.text)
		if err != nil {
			a.err = &ParseError{Element: a.el.name, Offset: tok.pos, Token: tok.text, Msg: "invalid " + name, Err: err}
			return nil
		}
		res = append(res, x)
	}
	return res
}
