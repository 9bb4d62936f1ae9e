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

package testcases

var fillCases = []TestCase{
	square64("rect", `<rect x="10" y="10" width="44" height="44" fill="#808080" stroke="black"/>`),
	square64("circle", `<circle cx="32" cy="32" r="24" fill="red" stroke="none"/>`),
	square64("nested_group", `<g fill="blue"><g stroke="green" stroke-width="3"><ellipse cx="32" cy="32" rx="28" ry="16"/></g></g>`),
	square64("style_attribute", `<rect x="8" y="8" width="48" height="48" fill="red" style="fill: #0f0; stroke: black; stroke-width: 2"/>`),
	square64("opacity", `<rect x="8" y="8" width="32" height="32" fill="blue"/><rect x="24" y="24" width="32" height="32" fill="red" fill-opacity="0.5" stroke-opacity="0.5"/>`),
	square64("open_path", `<path d="M8 56 L32 8 L56 56" fill="orange"/>`),
	square64("concave", `<path d="M8 8 L56 8 L56 56 L32 24 L8 56 Z" fill="purple" stroke-width="2"/>`),
	square64("ring", `<path d="M4 32 A28 28 0 1 1 60 32 A28 28 0 1 1 4 32 M20 32 A12 12 0 1 0 44 32 A12 12 0 1 0 20 32" fill="teal"/>`),
}

var strokeCases = []TestCase{
	square64("width_1", `<path d="M8 16 L56 16" stroke-width="1"/>`),
	square64("width_2", `<path d="M8 24 L56 24" stroke-width="2"/>`),
	square64("width_8", `<path d="M8 40 L56 40" stroke-width="8"/>`),
	square64("width_zero", `<path d="M8 32 L56 32" stroke-width="0"/>`),
	square64("corner", `<path d="M10 50 L32 14 L54 50" stroke-width="6"/>`),
	square64("sharp_corner", `<path d="M10 50 L32 14 L36 50" stroke-width="6"/>`),
	square64("reversal", `<path d="M10 32 L54 32 L20 32" stroke-width="6"/>`),
	square64("color", `<path d="M8 32 L56 32" stroke="rgb(255, 0, 0)" stroke-width="8"/>`),
	square64("hex_alpha", `<path d="M8 32 L56 32" stroke="#0000ff80" stroke-width="8"/>`),
}

var subpathCases = []TestCase{
	square64("two_rects", `<path d="M8 8 H28 V28 H8 Z M36 36 H56 V56 H36 Z" fill="gray"/>`),
	square64("after_close", `<path d="M10 10 L54 10 L54 54 Z L10 54 Z" stroke-width="3"/>`),
	square64("relative_after_close", `<path d="m10 10 h20 v20 z m24 24 h20 v20 z" stroke-width="3"/>`),
	square64("moveto_only", `<path d="M10 10 M32 32 L54 54" stroke-width="3"/>`),
	square64("disjoint_fill", `<circle cx="16" cy="16" r="10" fill="red"/><circle cx="48" cy="48" r="10" fill="red"/>`),
}

var largeCases = []TestCase{
	square64("partly_outside", `<circle cx="0" cy="32" r="24" fill="navy"/>`),
	square64("mostly_outside", `<rect x="-100" y="-100" width="132" height="132" fill="olive"/>`),
	square64("huge_circle", `<circle cx="32" cy="2000" r="1990" fill="maroon"/>`),
	square64("far_coordinates", `<path d="M-10000 32 L10000 32" stroke-width="4"/>`),
}

var precisionCases = []TestCase{
	square64("offset_quarter", `<rect x="10.25" y="10.25" width="20" height="20" stroke-width="2"/>`),
	square64("offset_half", `<rect x="10.5" y="10.5" width="20" height="20" stroke-width="2"/>`),
	square64("thin_diagonal", `<path d="M0.5 0.5 L63.5 63.5" stroke-width="1"/>`),
	square64("tiny_circle", `<circle cx="32" cy="32" r="1.5" stroke-width="1"/>`),
	square64("exponent_numbers", `<path d="M1e1 1.0e1 L5.4E1 10 L54 5.4e+1 Z" stroke-width="2"/>`),
}

var complexCases = []TestCase{
	square64("face", `<g stroke="black" stroke-width="2">`+
		`<circle cx="32" cy="32" r="26" fill="yellow"/>`+
		`<circle cx="22" cy="24" r="4" fill="black"/>`+
		`<circle cx="42" cy="24" r="4" fill="black"/>`+
		`<path d="M18 40 Q32 54 46 40"/></g>`),
	square64("house", `<g stroke-width="2">`+
		`<rect x="14" y="30" width="36" height="28" fill="#c0c0c0"/>`+
		`<polygon points="10,30 32,8 54,30" fill="#a00"/>`+
		`<rect x="28" y="42" width="8" height="16" fill="#630"/></g>`),
	square64("spiral", `<path d="M32 32 a2 2 0 0 1 4 0 a4 4 0 0 1 -8 0 a6 6 0 0 1 12 0 a8 8 0 0 1 -16 0 a10 10 0 0 1 20 0 a12 12 0 0 1 -24 0 a14 14 0 0 1 28 0" stroke-width="2"/>`),
	square64("unsupported_elements", `<title>demo</title><text x="4" y="20">hello</text><rect x="10" y="30" width="44" height="20" fill="green"/>`),
}
