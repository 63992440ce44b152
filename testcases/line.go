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

var lineCases = []TestCase{
	{
		Name: "unit_square",
		Path: rectangle(0, 0, 1, 1),
		Size: 100,
	},
	{
		Name: "rectangle",
		Path: rectangle(0, 0, 20, 10),
		Size: 10,
	},
	{
		Name: "offset_rectangle",
		Path: rectangle(40, 60, 20, 30),
		Size: 50,
	},
	{
		Name: "triangle",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			LineTo(pt(30, 10)).
			LineTo(pt(20, 40)).
			Close(),
		Size: 60,
	},
	{
		Name: "zigzag",
		Path: zigzag(0, 0, 10, 5, 6),
		Size: 40,
	},
	{
		Name: "negative_quadrant",
		Path: rectangle(-30, -20, 20, 10),
		Size: 30,
	},
}

// rectangle builds a closed axis-aligned rectangle.
func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// zigzag builds an open polyline with n teeth of width w and height h.
func zigzag(x, y, w, h float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x, y))
	for i := range n {
		x0 := x + float64(i)*w
		p = p.LineTo(pt(x0+w/2, y+h)).LineTo(pt(x0+w, y))
	}
	return p
}
