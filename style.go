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
	"strings"
)

// style holds the inherited presentation properties of an element.
type style struct {
	fill, stroke paint
	strokeWidth  float64

	fillOpacity, strokeOpacity float64

	// opacity is the product of the opacity values of the element and
	// its ancestors.
	opacity float64
}

// paint is a fill or stroke value.
type paint struct {
	set   bool // the property was given, possibly as "none"
	none  bool
	color color.NRGBA
}

// defaultStyle returns the style in effect at the document root:
// no fill, the default stroke colour, stroke width 1 and full opacity.
func defaultStyle() style {
	return style{
		strokeWidth:   1,
		fillOpacity:   1,
		strokeOpacity: 1,
		opacity:       1,
	}
}

// derive returns the style of el. Presentation attributes override the
// parent values, and declarations in the style attribute override the
// presentation attributes.
func (s style) derive(el *element, log *slog.Logger) style {
	decl := make(map[string]string, len(styleProperties))
	for _, name := range styleProperties {
		if v, ok := el.attrs[name]; ok {
			decl[name] = v
		}
	}
	if inline, ok := el.attrs["style"]; ok {
		for _, item := range strings.Split(inline, ";") {
			name, value, ok := strings.Cut(item, ":")
			if !ok {
				continue
			}
			decl[strings.TrimSpace(name)] = value
		}
	}

	// each property is applied once, so that opacity only multiplies
	// with the values of ancestors
	for _, name := range styleProperties {
		if v, ok := decl[name]; ok {
			s.set(el, name, v, log)
		}
	}
	return s
}

var styleProperties = []string{
	"fill", "stroke", "stroke-width",
	"fill-opacity", "stroke-opacity", "opacity",
}

func (s *style) set(el *element, name, value string, log *slog.Logger) {
	value = strings.TrimSpace(value)
	if value == "inherit" || value == "" {
		return
	}

	var err error
	switch name {
	case "fill":
		err = s.fill.parse(value)
	case "stroke":
		err = s.stroke.parse(value)
	case "stroke-width":
		var w float64
		w, err = parseLength(value)
		if err == nil {
			s.strokeWidth = max(w, 0)
		}
	case "fill-opacity":
		var a float64
		a, err = ParseOpacity(value)
		if err == nil {
			s.fillOpacity = a
		}
	case "stroke-opacity":
		var a float64
		a, err = ParseOpacity(value)
		if err == nil {
			s.strokeOpacity = a
		}
	case "opacity":
		var a float64
		a, err = ParseOpacity(value)
		if err == nil {
			s.opacity *= a
		}
	}
	if err != nil {
		log.Warn("ignoring invalid property",
			slog.String("element", el.name),
			slog.String("property", name),
			slog.String("value", value),
			slog.Any("error", err))
	}
}

func (p *paint) parse(value string) error {
	c, none, err := ParseColor(value)
	if err != nil {
		return err
	}
	*p = paint{set: true, none: none, color: c}
	return nil
}

// strokeColor returns the effective stroke colour, using def if no
// stroke was specified.
func (s *style) strokeColor(def color.NRGBA) color.NRGBA {
	c := def
	if s.stroke.set {
		if s.stroke.none {
			return color.NRGBA{}
		}
		c = s.stroke.color
	}
	return scaleAlpha(c, s.strokeOpacity*s.opacity)
}

// fillColor returns the effective fill colour. Shapes without a fill
// property are not filled.
func (s *style) fillColor() color.NRGBA {
	if !s.fill.set || s.fill.none {
		return color.NRGBA{}
	}
	return scaleAlpha(s.fill.color, s.fillOpacity*s.opacity)
}
