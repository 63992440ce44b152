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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name: "two_triangles",
		Path: twoTriangles(16, 32, 48, 32, 12),
		Size: 100,
	},
	{
		Name: "ring_shape",
		Path: ringShape(32, 32, 25, 12),
		Size: 64,
	},
	{
		Name: "draw_after_close",
		// The second subpath has no MoveTo of its own.
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			LineTo(pt(10, 0)).
			LineTo(pt(10, 10)).
			Close().
			LineTo(pt(0, 20)).
			LineTo(pt(-10, 10)),
		Size: 80,
	},
	{
		Name: "open_and_closed",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			QuadTo(pt(20, 30), pt(40, 0)).
			MoveTo(pt(50, 0)).
			LineTo(pt(70, 0)).
			LineTo(pt(60, 25)).
			Close(),
		Size: 100,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// ringShape builds two concentric circles, the outer one counter-clockwise
// and the inner one clockwise.
func ringShape(cx, cy, outerR, innerR float64) *path.Data {
	ko := outerR * kappa
	ki := innerR * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+outerR, cy)).
		CubeTo(pt(cx+outerR, cy+ko), pt(cx+ko, cy+outerR), pt(cx, cy+outerR)).
		CubeTo(pt(cx-ko, cy+outerR), pt(cx-outerR, cy+ko), pt(cx-outerR, cy)).
		CubeTo(pt(cx-outerR, cy-ko), pt(cx-ko, cy-outerR), pt(cx, cy-outerR)).
		CubeTo(pt(cx+ko, cy-outerR), pt(cx+outerR, cy-ko), pt(cx+outerR, cy)).
		Close().
		MoveTo(pt(cx+innerR, cy)).
		CubeTo(pt(cx+innerR, cy-ki), pt(cx+ki, cy-innerR), pt(cx, cy-innerR)).
		CubeTo(pt(cx-ki, cy-innerR), pt(cx-innerR, cy-ki), pt(cx-innerR, cy)).
		CubeTo(pt(cx-innerR, cy+ki), pt(cx-ki, cy+innerR), pt(cx, cy+innerR)).
		CubeTo(pt(cx+ki, cy+innerR), pt(cx+innerR, cy+ki), pt(cx+innerR, cy)).
		Close()
}
