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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Default sampling parameters.
const (
	// DefaultSubdivisions is the number of parameter values at which each
	// segment is evaluated.
	DefaultSubdivisions = 20

	// DefaultThreshold is the minimum distance between consecutive points
	// of a lookup table.
	DefaultThreshold = 0.4
)

// LookupTable is a polyline approximation of a path.
type LookupTable []vec.Vec2

// Sampler converts paths to lookup tables.
//
// The zero value is not usable; use [NewSampler] or set Subdivisions.
type Sampler struct {
	// Subdivisions is the number of samples per segment.  Segment i is
	// evaluated at t = 1/N, 2/N, ..., 1.  Must be at least 1.
	Subdivisions int

	// Threshold is the distance a sample must have from the last point of
	// the lookup table in order to be appended.
	Threshold float64
}

// NewSampler returns a Sampler using the default parameters.
func NewSampler() *Sampler {
	return &Sampler{
		Subdivisions: DefaultSubdivisions,
		Threshold:    DefaultThreshold,
	}
}

// Sample approximates p by a polyline, using the given number of
// subdivisions per segment and the given distance threshold.
func Sample(p *path.Data, subdivisions int, threshold float64) (LookupTable, error) {
	s := Sampler{Subdivisions: subdivisions, Threshold: threshold}
	return s.Sample(p)
}

// walkState is the state carried from one command to the next while
// sampling a path.
type walkState struct {
	table LookupTable

	// last is the nominal end point of the previous segment.  It is not
	// necessarily the last entry of table.
	last vec.Vec2

	// start is the target of the most recent MoveTo.
	start vec.Vec2
}

// Sample approximates p by a polyline.
//
// Every MoveTo point is recorded.  For the other segments, a sample is
// recorded only if it is more than s.Threshold away from the previously
// recorded point.  The filter is greedy: it compares against the last
// recorded point, not against the curve.
//
// After a ClosePath the current point is not moved back to the start of
// the subpath.  A path which continues drawing after ClosePath without a
// new MoveTo is sampled from the end of the last drawing segment.
//
// If a segment needs to be sampled before any point has been recorded,
// or p contains an unknown command, an error wrapping [ErrInvalidPath]
// is returned.  An empty path gives an
// empty table.
func (s *Sampler) Sample(p *path.Data) (LookupTable, error) {
	if s.Subdivisions < 1 {
		return nil, fmt.Errorf("pathnorm: invalid number of subdivisions %d", s.Subdivisions)
	}
	if p == nil {
		return nil, nil
	}

	st := &walkState{}
	coordIdx := 0
	for i, cmd := range p.Cmds {
		n := numPoints(cmd)
		if coordIdx+n > len(p.Coords) {
			return nil, fmt.Errorf("command %d (%s): missing coordinates: %w",
				i, cmdName(cmd), ErrInvalidPath)
		}
		pts := p.Coords[coordIdx : coordIdx+n]
		coordIdx += n

		var err error
		switch cmd {
		case path.CmdMoveTo:
			st.table = append(st.table, pts[0])
			st.start = pts[0]
			st.last = pts[0]

		case path.CmdLineTo:
			from, to := st.last, pts[0]
			err = s.segment(st, func(t float64) vec.Vec2 {
				return Linear(t, from, to)
			})
			st.last = to

		case path.CmdQuadTo:
			from, control, to := st.last, pts[0], pts[1]
			err = s.segment(st, func(t float64) vec.Vec2 {
				return QuadraticBezier(t, from, control, to)
			})
			st.last = to

		case path.CmdCubeTo:
			from, c1, c2, to := st.last, pts[0], pts[1], pts[2]
			err = s.segment(st, func(t float64) vec.Vec2 {
				return CubicBezier(t, from, c1, c2, to)
			})
			st.last = to

		case path.CmdClose:
			from, to := st.last, st.start
			err = s.segment(st, func(t float64) vec.Vec2 {
				return Linear(t, from, to)
			})

		default:
			err = fmt.Errorf("unknown command %d: %w", cmd, ErrInvalidPath)
		}
		if err != nil {
			return nil, fmt.Errorf("command %d (%s): %w", i, cmdName(cmd), err)
		}
	}
	return st.table, nil
}

// segment appends the samples of one segment to the lookup table.
func (s *Sampler) segment(st *walkState, eval func(t float64) vec.Vec2) error {
	if len(st.table) == 0 {
		return fmt.Errorf("segment before first MoveTo: %w", ErrInvalidPath)
	}
	n := s.Subdivisions
	for i := 1; i <= n; i++ {
		pt := eval(float64(i) / float64(n))
		if pt.Sub(st.table[len(st.table)-1]).Length() > s.Threshold {
			st.table = append(st.table, pt)
		}
	}
	return nil
}
