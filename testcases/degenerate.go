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

var degenerateCases = []TestCase{
	{
		Name:       "horizontal_line",
		Path:       (&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(15, 5)),
		Size:       100,
		Degenerate: true,
	},
	{
		Name:       "vertical_line",
		Path:       (&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(5, 25)),
		Size:       100,
		Degenerate: true,
	},
	{
		Name:       "single_point",
		Path:       (&path.Data{}).MoveTo(pt(3, 4)),
		Size:       100,
		Degenerate: true,
	},
	{
		Name:       "tiny_segment",
		Path:       (&path.Data{}).MoveTo(pt(1, 1)).LineTo(pt(1.2, 1.3)), // below the threshold
		Size:       100,
		Degenerate: true,
	},
	{
		// The extent ends at y=0, so the aspect ratio is infinite.
		Name:       "touching_x_axis",
		Path:       (&path.Data{}).MoveTo(pt(10, -10)).LineTo(pt(20, -10)).LineTo(pt(20, 0)).Close(),
		Size:       100,
		Degenerate: true,
	},
	{
		Name: "empty",
		Path: &path.Data{},
		Size: 100,
	},
}
