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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Parse reads a path in postfix text form.  Each operator is preceded by
// its operands:
//
//	x y m                   move to (x, y)
//	x y l                   line to (x, y)
//	cx cy x y q             quadratic curve with control point (cx, cy)
//	x1 y1 x2 y2 x y c       cubic curve with control points (x1, y1), (x2, y2)
//	h                       close the current subpath
//	x y w h re              rectangle, as move, three lines and close
//
// Tokens are separated by white space.  Errors wrap [ErrSyntax].
func Parse(s string) (*path.Data, error) {
	p := &path.Data{}
	var args []float64
	for i, tok := range strings.Fields(s) {
		if want, isOp := opArity[tok]; isOp {
			if len(args) != want {
				return nil, fmt.Errorf("token %d: %q needs %d operands, got %d: %w",
					i, tok, want, len(args), ErrSyntax)
			}
			p = appendOp(p, tok, args)
			args = args[:0]
			continue
		}
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("token %d: unexpected %q: %w", i, tok, ErrSyntax)
		}
		args = append(args, x)
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("%d trailing operands: %w", len(args), ErrSyntax)
	}
	return p, nil
}

// opArity gives the number of operands of each text operator.
var opArity = map[string]int{"m": 2, "l": 2, "q": 4, "c": 6, "h": 0, "re": 4}

func appendOp(p *path.Data, op string, a []float64) *path.Data {
	pt := func(i int) vec.Vec2 { return vec.Vec2{X: a[i], Y: a[i+1]} }
	switch op {
	case "m":
		p = p.MoveTo(pt(0))
	case "l":
		p = p.LineTo(pt(0))
	case "q":
		p = p.QuadTo(pt(0), pt(2))
	case "c":
		p = p.CubeTo(pt(0), pt(2), pt(4))
	case "h":
		p = p.Close()
	case "re":
		x, y, w, h := a[0], a[1], a[2], a[3]
		p = p.MoveTo(vec.Vec2{X: x, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y}).
			LineTo(vec.Vec2{X: x + w, Y: y + h}).
			LineTo(vec.Vec2{X: x, Y: y + h}).
			Close()
	}
	return p
}

// Format writes p in the text form read by [Parse].  Coordinates are
// printed with three digits after the decimal point.
func Format(p *path.Data) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	coordIdx := 0
	for _, cmd := range p.Cmds {
		n := numPoints(cmd)
		if coordIdx+n > len(p.Coords) {
			break
		}
		for _, pt := range p.Coords[coordIdx : coordIdx+n] {
			fmt.Fprintf(&b, "%.3f %.3f ", pt.X, pt.Y)
		}
		b.WriteString(cmdName(cmd))
		b.WriteByte(' ')
		coordIdx += n
	}
	return strings.TrimSuffix(b.String(), " ")
}
