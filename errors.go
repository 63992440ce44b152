// seehuhn.de/go/pathnorm - normalize vector paths to a target size
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

package pathnorm

import (
	"errors"

	"seehuhn.de/go/geom/path"
)

var (
	// ErrInvalidPath is returned when a path draws before its first MoveTo.
	ErrInvalidPath = errors.New("invalid path")

	// ErrDegeneratePath is returned by [Normalize] when the bounding extent
	// has zero width or zero height, or when the aspect ratio derived from
	// it is not finite.
	ErrDegeneratePath = errors.New("degenerate path")

	// ErrSyntax is returned by [Parse] for malformed path strings.
	ErrSyntax = errors.New("path syntax error")
)

// cmdName returns the operator used for cmd in the text form of a path.
func cmdName(cmd path.Command) string {
	switch cmd {
	case path.CmdMoveTo:
		return "m"
	case path.CmdLineTo:
		return "l"
	case path.CmdQuadTo:
		return "q"
	case path.CmdCubeTo:
		return "c"
	case path.CmdClose:
		return "h"
	default:
		return "?"
	}
}

// knownCommand reports whether cmd is one of the five path commands.
func knownCommand(cmd path.Command) bool {
	return cmdName(cmd) != "?"
}

// numPoints returns how many entries of path.Data.Coords belong to cmd.
func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}
