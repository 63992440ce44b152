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

// Package raster draws previews of paths as anti-aliased coverage masks.
//
// Coverage is the fraction of a pixel's area inside the filled or stroked
// shape, from 0 (outside) to 1 (inside).  Results are delivered row by row
// to an emit callback; see [Image] for collecting them into an image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pathnorm"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage values.
// Internal buffers are reused between calls, so a single Rasteriser
// should be kept for drawing many paths.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.  Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used at corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the line
	// width.  Longer miters are drawn as bevels.
	MiterLimit float64

	edges     []edge
	active    []int
	crossings []float64
	cover     []float32 // per-pixel change of winding number; reused as output
	area      []float32 // per-pixel signed area right of the edges

	// bounding box of r.edges, in device coordinates
	devXMin, devXMax float64
	devYMin, devYMax float64

	pts         []vec.Vec2 // vertices of the current flattened subpath
	segs        []strokeSegment
	polys       []vec.Vec2 // stroke polygons, contiguous
	polyOffsets []int      // start of each polygon in polys
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// The remaining parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.pts = r.pts[:0]
	r.segs = r.segs[:0]
	r.polys = r.polys[:0]
	r.polyOffsets = r.polyOffsets[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
// The coverage slice passed to emit is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
// The coverage slice passed to emit is only valid during the call.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.flatten(p, func(pts []vec.Vec2, _ bool) {
		r.addPolygon(pts)
	})
	r.scan(rule, emit)
}

// flatten walks p and calls visit once per subpath, with the subpath's
// vertices after curves have been replaced by line segments.  Drawing
// commands before the first MoveTo are ignored.
func (r *Rasteriser) flatten(p *path.Data, visit func(pts []vec.Vec2, closed bool)) {
	if p == nil {
		return
	}

	r.pts = r.pts[:0]
	inSubpath := false
	var start vec.Vec2
	flush := func(closed bool) {
		if inSubpath && (closed || len(r.pts) > 1) {
			visit(r.pts, closed)
		}
		r.pts = r.pts[:0]
		inSubpath = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		if coordIdx+n > len(p.Coords) {
			break
		}
		pts := p.Coords[coordIdx : coordIdx+n]
		coordIdx += n

		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			start = pts[0]
			r.pts = append(r.pts, start)
			inSubpath = true

		case path.CmdClose:
			if inSubpath {
				flush(true)
				// drawing may continue from the start of the closed subpath
				r.pts = append(r.pts, start)
				inSubpath = true
			}

		default:
			if !inSubpath {
				continue
			}
			current := r.pts[len(r.pts)-1]
			switch cmd {
			case path.CmdLineTo:
				r.pts = append(r.pts, pts[0])
			case path.CmdQuadTo:
				r.flattenQuadratic(current, pts[0], pts[1])
			case path.CmdCubeTo:
				r.flattenCubic(current, pts[0], pts[1], pts[2])
			}
		}
	}
	flush(false)
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic appends a polygonal approximation of the quadratic
// Bézier curve to r.pts.  The start point p0 is not appended.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if e > r.Flatness {
		n = int(math.Ceil(math.Sqrt(e / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		r.pts = append(r.pts, pathnorm.QuadraticBezier(float64(i)/float64(n), p0, p1, p2))
	}
}

// flattenCubic appends a polygonal approximation of the cubic Bézier
// curve to r.pts, using Wang's formula for the number of segments.
// The start point p0 is not appended.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		r.pts = append(r.pts, pathnorm.CubicBezier(float64(i)/float64(n), p0, p1, p2, p3))
	}
}

// addPolygon adds the edges of the closed polygon through pts.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge transforms the segment from p0 to p1 into device space and
// appends it to the edge list.  Horizontal edges are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	if len(r.edges) == 0 {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})
}

// scan converts the edge list into coverage values, one scanline at a
// time, using an active edge list.
func (r *Rasteriser) scan(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Coverage model:
//
// For each pixel an edge passes through, cover[i] receives the signed
// height of the edge piece inside the pixel and area[i] receives the part
// of that height which lies right of the edge.  Summing cover from the
// left and adding area gives the signed coverage of each pixel.

// accumulate adds the piece of e inside scanline y to r.cover and r.area.
// Buffer index 0 corresponds to pixel column xMin.  The return value
// tells whether any contribution was made.
func (r *Rasteriser) accumulate(e *edge, y, xMin int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))
	if left >= xMin+len(r.cover) {
		return false
	}

	if left == right {
		r.deposit(sign*float32(yBot-yTop), (xTop+xBot)/2, xMin)
		return true
	}

	// split the piece where it crosses pixel column boundaries
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.deposit(sign*float32(y1-y0), xMid, xMin)
	}
	return true
}

// deposit records an edge piece of signed height dy at horizontal
// position x.  Pieces left of the buffer cover its first pixel completely.
func (r *Rasteriser) deposit(dy float32, x float64, xMin int) {
	pix := int(math.Floor(x))
	i := pix - xMin
	switch {
	case i < 0:
		r.cover[0] += dy
		r.area[0] += dy
	case i < len(r.cover):
		r.cover[i] += dy
		r.area[i] += dy * float32(1-(x-float64(pix)))
	}
}

// integrate turns the accumulated cover and area values of one scanline
// into coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == fillEvenOdd {
			// fold into [0, 2), then into [0, 1]
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero portion of coverage and its offset.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10
)
