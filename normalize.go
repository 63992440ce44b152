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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// AspectRatio returns the width-to-height factor used by [Normalize].
//
// The value is computed from the raw extent, not from its width and
// height: it is 1 if ext.URx is zero and ext.URx/ext.URy otherwise.  For
// paths whose extent starts at the origin this is the ratio of width to
// height.  The result may be negative or infinite.
func AspectRatio(ext rect.Rect) float64 {
	if ext.URx == 0 {
		return 1
	}
	return ext.URx / ext.URy
}

// Normalize maps p into the box [0, aspect*size] × [0, size], where aspect
// is [AspectRatio] of ext.  Normally ext is the [Bounds] of the lookup
// table of p.  Command types are preserved and every control point and
// end point is transformed.  The returned path is newly allocated.
//
// If p contains at least one point and ext has zero width or zero height,
// or the aspect ratio is not finite, an error wrapping [ErrDegeneratePath]
// is returned.  A path without points is returned unchanged (as a copy),
// with aspect ratio 1.
func Normalize(p *path.Data, ext rect.Rect, size float64) (*path.Data, float64, error) {
	out := &path.Data{}
	if p == nil || len(p.Coords) == 0 {
		if p != nil {
			out.Cmds = append(out.Cmds, p.Cmds...)
		}
		return out, 1, nil
	}

	if ext.URx == ext.LLx || ext.URy == ext.LLy {
		return nil, 0, fmt.Errorf("extent %gx%g: %w",
			ext.URx-ext.LLx, ext.URy-ext.LLy, ErrDegeneratePath)
	}
	aspect := AspectRatio(ext)
	if math.IsInf(aspect, 0) || math.IsNaN(aspect) {
		return nil, 0, fmt.Errorf("aspect ratio %g: %w", aspect, ErrDegeneratePath)
	}

	remap := func(pt vec.Vec2) vec.Vec2 {
		newX := (pt.X - ext.LLx) / (ext.URx - ext.LLx)
		newY := (pt.Y - ext.LLy) / (ext.URy - ext.LLy)
		return vec.Vec2{X: aspect * size * newX, Y: size * newY}
	}

	out.Cmds = make([]path.Command, 0, len(p.Cmds))
	out.Coords = make([]vec.Vec2, 0, len(p.Coords))
	coordIdx := 0
	for i, cmd := range p.Cmds {
		if !knownCommand(cmd) {
			return nil, 0, fmt.Errorf("command %d: unknown command %d: %w",
				i, cmd, ErrInvalidPath)
		}
		n := numPoints(cmd)
		if coordIdx+n > len(p.Coords) {
			return nil, 0, fmt.Errorf("command %d (%s): missing coordinates: %w",
				i, cmdName(cmd), ErrInvalidPath)
		}
		for _, pt := range p.Coords[coordIdx : coordIdx+n] {
			out.Coords = append(out.Coords, remap(pt))
		}
		out.Cmds = append(out.Cmds, cmd)
		coordIdx += n
	}
	return out, aspect, nil
}
