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

var shapeCases = []TestCase{
	square64("rect", `<rect x="10" y="14" width="44" height="36" stroke-width="4"/>`),
	square64("rect_rounded", `<rect x="10" y="14" width="44" height="36" rx="8" stroke-width="4"/>`),
	square64("rect_rounded_clamped", `<rect x="10" y="10" width="44" height="20" rx="30" ry="30" stroke-width="2"/>`),
	square64("circle", `<circle cx="32" cy="32" r="20" stroke-width="4"/>`),
	square64("ellipse", `<ellipse cx="32" cy="32" rx="26" ry="12" stroke-width="3"/>`),
	square64("line", `<line x1="8" y1="56" x2="56" y2="8" stroke-width="6"/>`),
	square64("polyline", `<polyline points="8,56 20,10 32,50 44,10 56,56" stroke-width="3"/>`),
	square64("polygon", `<polygon points="32,6 58,56 6,56" stroke-width="3"/>`),
}

var pathCases = []TestCase{
	square64("absolute_lines", `<path d="M10 10 L54 10 L54 54 L10 54 Z" stroke-width="4"/>`),
	square64("relative_lines", `<path d="m10 10 l44 0 l0 44 l-44 0 z" stroke-width="4"/>`),
	square64("horizontal_vertical", `<path d="M10 10 H54 V54 H10 V10" stroke-width="4"/>`),
	square64("relative_hv", `<path d="M10 10 h44 v44 h-44 v-44" stroke-width="4"/>`),
	square64("implicit_lineto", `<path d="M10 54 32 10 54 54" stroke-width="4"/>`),
	square64("compact_numbers", `<path d="M10-0.5.5 0M10,20L54,20M10 30l44-0.5e0" stroke="#000" stroke-width="2"/>`),
	square64("single_point", `<path d="M32 32 L32 32" stroke-width="10"/>`),
}

var curveCases = []TestCase{
	square64("cubic", `<path d="M8 56 C8 8 56 8 56 56" stroke-width="4"/>`),
	square64("cubic_smooth", `<path d="M4 32 C4 8 20 8 20 32 S36 56 36 32 S52 8 60 32" stroke-width="3"/>`),
	square64("quadratic", `<path d="M8 56 Q32 0 56 56" stroke-width="4"/>`),
	square64("quadratic_smooth", `<path d="M4 32 Q12 8 20 32 T36 32 T52 32 T60 32" stroke-width="3"/>`),
	square64("relative_cubic", `<path d="M8 32 c0 -24 48 -24 48 0 s-48 24 -48 0" stroke-width="3"/>`),
	square64("smooth_without_previous", `<path d="M8 56 S32 8 56 56 T8 56" stroke-width="3"/>`),
}

var arcCases = []TestCase{
	square64("half_circle", `<path d="M12 32 A20 20 0 0 1 52 32" stroke-width="4"/>`),
	square64("large_arc", `<path d="M20 44 A16 16 0 1 0 44 44" stroke-width="4"/>`),
	square64("sweep_flags", `<path d="M12 20 A20 12 0 0 0 52 20 M12 44 A20 12 0 0 1 52 44" stroke-width="3"/>`),
	square64("rotated_ellipse", `<path d="M12 32 A24 12 30 1 1 52 32 A24 12 30 1 1 12 32 Z" stroke-width="3"/>`),
	square64("radii_too_small", `<path d="M10 32 A2 2 0 0 1 54 32" stroke-width="3"/>`),
	square64("zero_radius", `<path d="M10 10 A0 10 0 0 1 54 54" stroke-width="3"/>`),
	square64("compact_flags", `<path d="M12 32a20 20 0 1032 0" stroke-width="3"/>`),
}

var transformCases = []TestCase{
	square64("translate", `<g transform="translate(16,8)"><rect x="0" y="0" width="32" height="32" stroke-width="4"/></g>`),
	square64("scale", `<g transform="scale(2)"><circle cx="16" cy="16" r="10" stroke-width="2"/></g>`),
	square64("scale_nonuniform", `<g transform="scale(2 0.5)"><circle cx="16" cy="64" r="12" stroke-width="2"/></g>`),
	square64("nested", `<g transform="scale(2)"><g transform="translate(5,5)"><rect x="1" y="1" width="14" height="14" stroke-width="2"/></g></g>`),
	square64("list", `<path transform="translate(32 32) scale(0.5)" d="M-40 -40 L40 -40 L40 40 L-40 40 Z" stroke-width="4"/>`),
	square64("ignored_rotate", `<rect transform="rotate(45) translate(10 10)" x="0" y="0" width="30" height="30" stroke-width="3"/>`),
	{
		Name:   "viewbox",
		SVG:    `<svg xmlns="http://www.w3.org/2000/svg" viewBox="100 100 32 32"><circle cx="116" cy="116" r="10"/></svg>`,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "downscale",
		SVG:    doc(256, 256, `<rect x="32" y="32" width="192" height="192" stroke-width="16"/>`),
		Width:  64,
		Height: 64,
	},
}
