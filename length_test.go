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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pathnorm/testcases"
)

func TestSegmentLengths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(v(0, 0)).
		LineTo(v(20, 0)).
		LineTo(v(20, 10)).
		LineTo(v(0, 10)).
		Close()
	got := SegmentLengths(p, DefaultAccuracy)
	diff(t, []float64{20, 10, 20, 10}, got, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 60.0, ArcLength(p, DefaultAccuracy), cmpopts.EquateApprox(0, 1e-9))
}

func TestArcLengthCircle(t *testing.T) {
	tc, ok := testcases.Find("circle")
	if !ok {
		t.Fatal("missing circle")
	}
	// four cubic arcs approximate the circle to about 3e-4 relative error
	want := 2 * math.Pi * 50
	got := ArcLength(tc.Path, DefaultAccuracy)
	if math.Abs(got-want) > 0.1 {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestArcLengthCurves(t *testing.T) {
	// a quadratic with collinear control point is a straight line
	q := (&path.Data{}).MoveTo(v(0, 0)).QuadTo(v(5, 0), v(10, 0))
	diff(t, 10.0, ArcLength(q, DefaultAccuracy), cmpopts.EquateApprox(0, 1e-6))

	// chord <= arc length <= control polygon
	c := (&path.Data{}).MoveTo(v(0, 0)).CubeTo(v(0, 10), v(10, 10), v(10, 0))
	l := ArcLength(c, DefaultAccuracy)
	if l < 10 || l > 30 {
		t.Errorf("cubic length %g outside [10, 30]", l)
	}
}

func TestArcLengthSubpaths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(v(0, 0)).LineTo(v(3, 4)).
		MoveTo(v(100, 100)).LineTo(v(100, 101)).Close()
	diff(t, []float64{5, 1, 1}, SegmentLengths(p, DefaultAccuracy), cmpopts.EquateApprox(0, 1e-9))
}

func TestArcLengthEmpty(t *testing.T) {
	if l := ArcLength(nil, DefaultAccuracy); l != 0 {
		t.Errorf("nil path: got %g", l)
	}
	if l := ArcLength((&path.Data{}).MoveTo(v(1, 1)), DefaultAccuracy); l != 0 {
		t.Errorf("single point: got %g", l)
	}
}
