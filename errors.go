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

import "fmt"

// ParseError reports malformed SVG input: XML which cannot be decoded,
// path data with a missing or invalid argument, or a bare number with no
// preceding path command.
//
// Render recovers from a ParseError by returning a blank image together
// with the error.
type ParseError struct {
	// Element is the name of the SVG element containing the problem,
	// or empty for document-level errors.
	Element string

	// Offset is the byte offset of the offending token within the
	// attribute value, or -1 if unknown.
	Offset int

	// Token is the offending token, if any.
	Token string

	// Msg describes the problem.
	Msg string

	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := "svgraster: "
	if e.Element != "" {
		msg += "<" + e.Element + ">: "
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf("offset %d: ", e.Offset)
	}
	msg += e.Msg
	if e.Token != "" {
		msg += fmt.Sprintf(" (%q)", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DimensionError is returned when the requested raster size is not
// positive in both directions.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("svgraster: invalid raster size %dx%d", e.Width, e.Height)
}
