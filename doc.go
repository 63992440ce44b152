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

// Package pathnorm measures and rescales vector paths.
//
// A path is given as a [path.Data] command sequence (move, line, quadratic
// and cubic Bézier, close).  Processing happens in three steps:
//
//  1. [Sampler.Sample] walks the path and approximates it by a polyline,
//     the lookup table.  Every segment is evaluated at a fixed number of
//     parameter values and a sample is kept only if it is further than a
//     threshold from the previously kept point.
//  2. [Bounds] reduces the lookup table to an axis-aligned extent.
//  3. [Normalize] maps every point of the original path into the box
//     [0, aspect*size] × [0, size], using the extent from step 2.
//
// The extent is an approximation: no attempt is made to find the exact
// extrema of curves.  [Process] runs the whole pipeline and additionally
// measures the normalized path, and [Parse] and [Format] convert between
// paths and their textual form ("10 20 m 30 40 l h").  [ParseSVG] reads
// the path syntax of SVG ("M10 20 L30 40 Z").
//
// [path.Data]: https://pkg.go.dev/seehuhn.de/go/geom/path#Data
package pathnorm
