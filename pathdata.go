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
	"math"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// pathToken is a command letter or a number from SVG path data.
type pathToken struct {
	text string
	pos  int // byte offset within the path data
}

func (t pathToken) isCommand() bool {
	return len(t.text) == 1 && isLetter(t.text[0])
}

// tokenizePath splits SVG path data into command letters and numbers.
//
// Whitespace and commas separate tokens. Every letter is a token of its
// own, except for an exponent marker inside a number. Numbers are read
// greedily, so that "M10-20.5.5" yields "M", "10", "-20.5", ".5".
// A character which can start neither a command nor a number becomes a
// token of its own and is rejected by the consumer.
func tokenizePath(d string) []pathToken {
	var toks []pathToken
	b := []byte(d)
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++
		case isLetter(c):
			toks = append(toks, pathToken{text: d[i : i+1], pos: i})
			i++
		default:
			_, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				_, n = utf8.DecodeRune(b[i:])
			}
			toks = append(toks, pathToken{text: d[i : i+n], pos: i})
			i += n
		}
	}
	return toks
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// pathInterpreter converts SVG path data into an outline in raster pixel
// coordinates.
//
// Two current points are tracked: curOrig in the path's own coordinate
// system, which is the base for relative commands, and cur in pixel
// space, which is where the output continues.
type pathInterpreter struct {
	toks []pathToken
	pos  int

	// toPixel maps path coordinates to raster pixels. It combines the
	// accumulated element transformation with the viewport mapping.
	toPixel Affine

	out  *path.Data
	open bool // whether out has an open subpath

	cur, start         vec.Vec2 // pixel space
	curOrig, startOrig vec.Vec2 // path coordinates

	// reflection points for S and T, in pixel space
	lastCubicCtrl, lastQuadCtrl vec.Vec2
	hasCubicCtrl, hasQuadCtrl   bool
}

// interpretPath parses the SVG path data d and returns the corresponding
// outline in pixel space. Elliptical arcs are converted to cubic Bézier
// segments. A drawing command without a preceding M starts a new subpath
// at the current point.
func interpretPath(d string, toPixel Affine) (*path.Data, error) {
	p := &pathInterpreter{
		toks:    tokenizePath(d),
		toPixel: toPixel,
		out:     &path.Data{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

func (p *pathInterpreter) run() error {
	var last byte
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		var cmd byte
		if tok.isCommand() {
			cmd = tok.text[0]
			p.pos++
			last = cmd
		} else {
			switch last {
			case 0:
				return p.errorAt(tok, "path data must start with a command")
			case 'Z', 'z':
				return p.errorAt(tok, "number after closepath")
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = last
			}
		}

		if err := p.exec(cmd, tok); err != nil {
			return err
		}
		if !isCubicCmd(cmd) {
			p.hasCubicCtrl = false
		}
		if !isQuadCmd(cmd) {
			p.hasQuadCtrl = false
		}
	}
	return nil
}

// exec executes a single command, reading its arguments from the token
// stream.
func (p *pathInterpreter) exec(cmd byte, at pathToken) error {
	rel := cmd >= 'a'
	base := vec.Vec2{}
	if rel {
		base = p.curOrig
	}

	switch cmd {
	case 'M', 'm':
		pt, err := p.point(cmd, base)
		if err != nil {
			return err
		}
		p.curOrig, p.startOrig = pt, pt
		p.cur = p.toPixel.Apply(pt)
		p.start = p.cur
		p.out = p.out.MoveTo(p.cur)
		p.open = true

	case 'L', 'l':
		pt, err := p.point(cmd, base)
		if err != nil {
			return err
		}
		p.lineTo(pt)

	case 'H', 'h':
		x, err := p.number(cmd)
		if err != nil {
			return err
		}
		p.lineTo(vec.Vec2{X: base.X + x, Y: p.curOrig.Y})

	case 'V', 'v':
		y, err := p.number(cmd)
		if err != nil {
			return err
		}
		p.lineTo(vec.Vec2{X: p.curOrig.X, Y: base.Y + y})

	case 'C', 'c':
		pts, err := p.points(cmd, base, 3)
		if err != nil {
			return err
		}
		c1 := p.toPixel.Apply(pts[0])
		c2 := p.toPixel.Apply(pts[1])
		p.cubeTo(c1, c2, pts[2])

	case 'S', 's':
		pts, err := p.points(cmd, base, 2)
		if err != nil {
			return err
		}
		c2 := p.toPixel.Apply(pts[0])
		c1 := c2
		if p.hasCubicCtrl {
			c1 = p.cur.Mul(2).Sub(p.lastCubicCtrl)
		}
		p.cubeTo(c1, c2, pts[1])

	case 'Q', 'q':
		pts, err := p.points(cmd, base, 2)
		if err != nil {
			return err
		}
		p.quadTo(p.toPixel.Apply(pts[0]), pts[1])

	case 'T', 't':
		pt, err := p.point(cmd, base)
		if err != nil {
			return err
		}
		ctrl := p.toPixel.Apply(pt)
		if p.hasQuadCtrl {
			ctrl = p.cur.Mul(2).Sub(p.lastQuadCtrl)
		}
		p.quadTo(ctrl, pt)

	case 'A', 'a':
		return p.arc(cmd, base)

	case 'Z', 'z':
		if p.open {
			p.out = p.out.Close()
			p.open = false
		}
		p.cur = p.start
		p.curOrig = p.startOrig

	default:
		return p.errorAt(at, "unknown path command")
	}
	return nil
}

func (p *pathInterpreter) lineTo(pt vec.Vec2) {
	p.ensureSubpath()
	p.curOrig = pt
	p.cur = p.toPixel.Apply(pt)
	p.out = p.out.LineTo(p.cur)
}

// cubeTo appends a cubic segment. The control points are in pixel space,
// the end point is in path coordinates.
func (p *pathInterpreter) cubeTo(c1, c2 vec.Vec2, pt vec.Vec2) {
	p.ensureSubpath()
	p.curOrig = pt
	p.cur = p.toPixel.Apply(pt)
	p.out = p.out.CubeTo(c1, c2, p.cur)
	p.lastCubicCtrl = c2
	p.hasCubicCtrl = true
}

// quadTo appends a quadratic segment. The control point is in pixel
// space, the end point is in path coordinates.
func (p *pathInterpreter) quadTo(ctrl, pt vec.Vec2) {
	p.ensureSubpath()
	p.curOrig = pt
	p.cur = p.toPixel.Apply(pt)
	p.out = p.out.QuadTo(ctrl, p.cur)
	p.lastQuadCtrl = ctrl
	p.hasQuadCtrl = true
}

func (p *pathInterpreter) arc(cmd byte, base vec.Vec2) error {
	rx, err := p.number(cmd)
	if err != nil {
		return err
	}
	ry, err := p.number(cmd)
	if err != nil {
		return err
	}
	rot, err := p.number(cmd)
	if err != nil {
		return err
	}
	large, err := p.flag(cmd)
	if err != nil {
		return err
	}
	sweep, err := p.flag(cmd)
	if err != nil {
		return err
	}
	pt, err := p.point(cmd, base)
	if err != nil {
		return err
	}

	p.ensureSubpath()
	from := p.curOrig
	p.curOrig = pt
	p.cur = p.toPixel.Apply(pt)

	if rx == 0 || ry == 0 {
		if from != pt {
			p.out = p.out.LineTo(p.cur)
		}
		return nil
	}

	// The arc is converted in path coordinates. Affine maps take Bézier
	// curves to Bézier curves, so mapping the control points is exact,
	// also for mirroring and non-uniform scaling.
	for _, seg := range arcToCubics(from, rx, ry, rot, large, sweep, pt) {
		p.out = p.out.CubeTo(
			p.toPixel.Apply(seg[1]),
			p.toPixel.Apply(seg[2]),
			p.toPixel.Apply(seg[3]))
	}
	return nil
}

// ensureSubpath starts a new subpath at the current point, if no subpath
// is open.
func (p *pathInterpreter) ensureSubpath() {
	if p.open {
		return
	}
	p.out = p.out.MoveTo(p.cur)
	p.start = p.cur
	p.startOrig = p.curOrig
	p.open = true
}

func (p *pathInterpreter) points(cmd byte, base vec.Vec2, n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		pt, err := p.point(cmd, base)
		if err != nil {
			return nil, err
		}
		res[i] = pt
	}
	return res, nil
}

func (p *pathInterpreter) point(cmd byte, base vec.Vec2) (vec.Vec2, error) {
	x, err := p.number(cmd)
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number(cmd)
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: base.X + x, Y: base.Y + y}, nil
}

func (p *pathInterpreter) number(cmd byte) (float64, error) {
	if p.pos >= len(p.toks) {
		return 0, &ParseError{Offset: -1, Token: string(cmd), Msg: "missing argument"}
	}
	tok := p.toks[p.pos]
	if tok.isCommand() {
		return 0, p.errorAt(tok, "missing argument for "+string(cmd))
	}
	x, err := parseNumber(tok.text)
	if err != nil {
		return 0, &ParseError{Offset: tok.pos, Token: tok.text, Msg: "invalid number", Err: err}
	}
	p.pos++
	return x, nil
}

// flag reads an arc flag. Flags may be written without separators, as in
// "a5 5 0 105 5", so a token starting with 0 or 1 is split after its first
// character.
func (p *pathInterpreter) flag(cmd byte) (bool, error) {
	if p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		if len(tok.text) > 1 && (tok.text[0] == '0' || tok.text[0] == '1') && tok.text[1] != '.' {
			p.toks[p.pos] = pathToken{text: tok.text[1:], pos: tok.pos + 1}
			return tok.text[0] == '1', nil
		}
	}
	x, err := p.number(cmd)
	if err != nil {
		return false, err
	}
	return math.Abs(x) != 0, nil
}

func (p *pathInterpreter) errorAt(tok pathToken, msg string) error {
	return &ParseError{Offset: tok.pos, Token: tok.text, Msg: msg}
}

func isCubicCmd(c byte) bool {
	return c == 'C' || c == 'c' || c == 'S' || c == 's'
}

func isQuadCmd(c byte) bool {
	return c == 'Q' || c == 'q' || c == 'T' || c == 't'
}
