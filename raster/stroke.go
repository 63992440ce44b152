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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a non-degenerate line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroke draws the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is the union of one rectangle per flattened segment
// together with the cap and join shapes.  All pieces are given the same
// orientation, so that the nonzero rule paints overlaps only once.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.polys = r.polys[:0]
	r.polyOffsets = r.polyOffsets[:0]

	d := r.Width / 2
	if d <= 0 {
		return
	}
	r.flatten(p, func(pts []vec.Vec2, closed bool) {
		r.strokeSubpath(pts, closed, d)
	})

	r.edges = r.edges[:0]
	for i, start := range r.polyOffsets {
		end := len(r.polys)
		if i+1 < len(r.polyOffsets) {
			end = r.polyOffsets[i+1]
		}
		r.addPolygon(r.polys[start:end])
	}
	r.scan(fillNonZero, emit)
}

func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	r.segs = r.segs[:0]
	for i := 1; i < len(pts); i++ {
		r.addStrokeSegment(pts[i-1], pts[i])
	}
	if closed && len(pts) > 0 {
		r.addStrokeSegment(pts[len(pts)-1], pts[0])
	}

	if len(r.segs) == 0 {
		// A subpath without orientation is drawn as a dot, but only
		// for round caps.
		if r.Cap == graphics.LineCapRound && len(pts) > 0 {
			r.addDisc(pts[0], d)
		}
		return
	}

	for _, seg := range r.segs {
		r.addPoly(
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)),
		)
	}
	for i := 1; i < len(r.segs); i++ {
		r.addJoin(r.segs[i].A, r.segs[i-1].T, r.segs[i].T, d)
	}

	first, last := r.segs[0], r.segs[len(r.segs)-1]
	if closed {
		r.addJoin(first.A, last.T, first.T, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addStrokeSegment appends the segment from a to b to r.segs, unless it
// is too short to have a direction.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// addCap adds the cap shape at the end point P.
// T is the unit tangent pointing away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.addPoly(P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addDisc(P, d)
	}
}

// addJoin adds the join shape at P, where the tangent changes from T1
// to T2.  Only the outer side of the corner needs filling, the inner side
// is covered by the segment rectangles.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	cosTheta := T1.Dot(T2)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}

	// the outer side is to the right of a left turn
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side * d)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side * d)
	if cosTheta < cuspCosineThreshold {
		return // the path doubles back, there is no outer side
	}

	if r.Join == graphics.LineJoinMiter {
		// The miter length, relative to the line width, is 1/sin(φ/2)
		// where φ is the angle between the two segments.  Also,
		// sin(φ/2) = cos(θ/2) = sqrt((1 + cos θ) / 2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := P.Add(bisector.Mul(d / (sinHalf * l)))
				r.addPoly(P, P.Add(N1), tip, P.Add(N2))
				return
			}
		}
	}

	// bevel
	r.addPoly(P, P.Add(N1), P.Add(N2))
}

// addDisc adds a polygon approximating the circle with the given centre
// and radius.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord subtending angle θ deviates from the circle by at most
	// r*(1 - cos(θ/2)).
	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.polys)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, center.Add(vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius)))
	}
	r.orient(start)
}

// addPoly adds a polygon to the stroke outline.
func (r *Rasteriser) addPoly(pts ...vec.Vec2) {
	start := len(r.polys)
	r.polys = append(r.polys, pts...)
	r.orient(start)
}

// orient finishes the polygon starting at r.polys[start], making it
// counter-clockwise.  Polygons without area are dropped.
func (r *Rasteriser) orient(start int) {
	poly := r.polys[start:]
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	switch {
	case math.Abs(a) < zeroAreaThreshold:
		r.polys = r.polys[:start]
		return
	case a < 0:
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.polyOffsets = append(r.polyOffsets, start)
}

const (
	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// zeroAreaThreshold is the minimal doubled area of a stroke polygon.
	zeroAreaThreshold = 1e-12

	// collinearityThreshold is the sine of the largest angle between two
	// segments which is treated as a straight continuation.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back, at an
	// angle of more than about 179.4°.
	cuspCosineThreshold = -0.9999

	miterEpsilon = 1e-10
)
