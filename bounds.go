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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds returns the smallest axis-aligned rectangle containing all points
// of the lookup table.  LLx and URx hold the minimum and maximum x
// coordinate, LLy and URy the minimum and maximum y coordinate.
//
// The bounds of an empty table are the zero rectangle.
func Bounds(table LookupTable) rect.Rect {
	if len(table) == 0 {
		return rect.Rect{}
	}
	ext := rect.Rect{
		LLx: table[0].X,
		LLy: table[0].Y,
		URx: table[0].X,
		URy: table[0].Y,
	}
	for _, pt := range table[1:] {
		ext.LLx = min(ext.LLx, pt.X)
		ext.LLy = min(ext.LLy, pt.Y)
		ext.URx = max(ext.URx, pt.X)
		ext.URy = max(ext.URy, pt.Y)
	}
	return ext
}

// Size returns the width and height of an extent.
func Size(ext rect.Rect) vec.Vec2 {
	return vec.Vec2{X: ext.URx - ext.LLx, Y: ext.URy - ext.LLy}
}
