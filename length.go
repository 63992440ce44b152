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
	"honnef.co/go/curve"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultAccuracy is the default arc length accuracy.
const DefaultAccuracy = 1e-3

// SegmentLengths returns the arc length of every drawing segment of p, in
// path order.  MoveTo contributes no segment, ClosePath contributes the
// straight line back to the start of the subpath (possibly of length 0).
func SegmentLengths(p *path.Data, accuracy float64) []float64 {
	if p == nil {
		return nil
	}

	var lengths []float64
	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		n := numPoints(cmd)
		if coordIdx+n > len(p.Coords) {
			break
		}
		pts := p.Coords[coordIdx : coordIdx+n]
		coordIdx += n

		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			l := curve.Line{P0: pt(current), P1: pt(pts[0])}
			lengths = append(lengths, l.Arclen(accuracy))
			current = pts[0]

		case path.CmdQuadTo:
			q := curve.QuadBez{P0: pt(current), P1: pt(pts[0]), P2: pt(pts[1])}
			lengths = append(lengths, q.Arclen(accuracy))
			current = pts[1]

		case path.CmdCubeTo:
			c := curve.CubicBez{P0: pt(current), P1: pt(pts[0]), P2: pt(pts[1]), P3: pt(pts[2])}
			lengths = append(lengths, c.Arclen(accuracy))
			current = pts[2]

		case path.CmdClose:
			l := curve.Line{P0: pt(current), P1: pt(subpath)}
			lengths = append(lengths, l.Arclen(accuracy))
			current = subpath
		}
	}
	return lengths
}

// ArcLength returns the total length of all segments of p.
func ArcLength(p *path.Data, accuracy float64) float64 {
	var total float64
	for _, l := range SegmentLengths(p, accuracy) {
		total += l
	}
	return total
}

func pt(v vec.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}
