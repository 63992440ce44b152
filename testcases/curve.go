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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: quadraticCurve(10, 50, 32, 10, 54, 50),
		Size: 100,
	},
	{
		Name: "quadratic_shallow",
		Path: quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Size: 100,
	},
	{
		Name: "quadratic_s_shape",
		Path: sCurveQuadratic(10, 32, 54, 32),
		Size: 100,
	},
	{
		Name: "cubic",
		Path: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Size: 100,
	},
	{
		Name: "cubic_loop",
		Path: cubicCurve(10, 40, 70, 0, -10, 0, 50, 40), // self-intersecting
		Size: 120,
	},
	{
		Name: "circle",
		Path: Ellipse(0, 0, 100, 100),
		Size: 100,
	},
	{
		Name: "ellipse",
		Path: Ellipse(10, 20, 100, 60),
		Size: 60,
	},
	{
		Name: "pie",
		Path: pie(32, 32, 25, 3),
		Size: 200,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds an open path with a single cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an open S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // First quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))      // Second quadratic curves down
}

// Ellipse returns a closed ellipse, made from four cubic Bezier curves,
// which touches the four sides of the rectangle with lower left corner
// (x, y), width w and height h.
func Ellipse(x, y, w, h float64) *path.Data {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}

// pie builds a pie slice of the given number of quadrants (1-4), starting
// from the right and turning counter-clockwise.
func pie(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	if quadrants >= 1 {
		p = p.CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r))
	}
	if quadrants >= 2 {
		p = p.CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy))
	}
	if quadrants >= 3 {
		p = p.CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r))
	}
	if quadrants >= 4 {
		p = p.CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
	}
	return p.Close()
}
