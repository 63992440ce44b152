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

import "seehuhn.de/go/geom/vec"

// Linear returns the point at parameter t on the line from start to end.
func Linear(t float64, start, end vec.Vec2) vec.Vec2 {
	return start.Add(end.Sub(start).Mul(t))
}

// QuadraticBezier evaluates a quadratic Bézier curve at parameter t.
func QuadraticBezier(t float64, start, control, end vec.Vec2) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return start.Mul(omt * omt).Add(control.Mul(2 * omt * t)).Add(end.Mul(t * t))
}

// CubicBezier evaluates a cubic Bézier curve at parameter t.
func CubicBezier(t float64, start, control1, control2, end vec.Vec2) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return start.Mul(omt2 * omt).
		Add(control1.Mul(3 * omt2 * t)).
		Add(control2.Mul(3 * omt * t2)).
		Add(end.Mul(t2 * t))
}
