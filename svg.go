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
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ParseSVG reads a path given in the syntax of the SVG "d" attribute.
//
// The commands M, L, H, V, C, S, Q, T and Z are understood, in absolute
// (upper case) and relative (lower case) form.  A command letter may be
// omitted if it repeats the previous command; coordinate pairs following
// a move are lines.  Numbers may be separated by white space, commas, or
// nothing at all where a sign or second decimal point ends a number
// ("M1-2L.5.5").  A drawing command directly after Z starts a new
// subpath at the start of the closed one.
//
// Elliptical arcs (A) are not supported.  Errors wrap [ErrSyntax].
func ParseSVG(s string) (*path.Data, error) {
	sc := &svgScanner{buf: []byte(s)}
	p := &path.Data{}

	var cmd, prevCmd byte
	var cur, start, ctrl vec.Vec2
	closed := false

	for {
		sc.skipCommaWhitespace()
		if sc.pos >= len(sc.buf) {
			break
		}

		c := sc.buf[sc.pos]
		switch {
		case isASCIILetter(c):
			cmd = c
			sc.pos++
		case cmd == 0:
			return nil, sc.errorf("path must start with a command")
		case cmd == 'Z' || cmd == 'z':
			return nil, sc.errorf("unexpected number after %q", cmd)
		}

		if cmd != 'M' && cmd != 'm' {
			if len(p.Cmds) == 0 {
				return nil, sc.errorf("path must start with a move, not %q", cmd)
			}
			if closed && cmd != 'Z' && cmd != 'z' {
				p = p.MoveTo(start)
				closed = false
			}
		}

		var err error
		rel := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			var pt vec.Vec2
			if pt, err = sc.point(rel, cur); err != nil {
				break
			}
			p = p.MoveTo(pt)
			cur, start = pt, pt
			closed = false
			// further coordinate pairs are lines
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}

		case 'L', 'l':
			var pt vec.Vec2
			if pt, err = sc.point(rel, cur); err != nil {
				break
			}
			p = p.LineTo(pt)
			cur = pt

		case 'H', 'h':
			var x float64
			if x, err = sc.number(); err != nil {
				break
			}
			if rel {
				x += cur.X
			}
			cur = vec.Vec2{X: x, Y: cur.Y}
			p = p.LineTo(cur)

		case 'V', 'v':
			var y float64
			if y, err = sc.number(); err != nil {
				break
			}
			if rel {
				y += cur.Y
			}
			cur = vec.Vec2{X: cur.X, Y: y}
			p = p.LineTo(cur)

		case 'C', 'c', 'S', 's':
			c1 := cur
			if cmd == 'C' || cmd == 'c' {
				if c1, err = sc.point(rel, cur); err != nil {
					break
				}
			} else if strings.IndexByte("CcSs", prevCmd) >= 0 {
				c1 = mirror(ctrl, cur)
			}
			var c2, pt vec.Vec2
			if c2, err = sc.point(rel, cur); err != nil {
				break
			}
			if pt, err = sc.point(rel, cur); err != nil {
				break
			}
			p = p.CubeTo(c1, c2, pt)
			ctrl, cur = c2, pt

		case 'Q', 'q', 'T', 't':
			c1 := cur
			if cmd == 'Q' || cmd == 'q' {
				if c1, err = sc.point(rel, cur); err != nil {
					break
				}
			} else if strings.IndexByte("QqTt", prevCmd) >= 0 {
				c1 = mirror(ctrl, cur)
			}
			var pt vec.Vec2
			if pt, err = sc.point(rel, cur); err != nil {
				break
			}
			p = p.QuadTo(c1, pt)
			ctrl, cur = c1, pt

		case 'Z', 'z':
			p = p.Close()
			cur = start
			closed = true

		case 'A', 'a':
			err = sc.errorf("elliptical arcs are not supported")

		default:
			err = sc.errorf("unknown command %q", cmd)
		}
		if err != nil {
			return nil, err
		}
		prevCmd = cmd
	}
	return p, nil
}

// ParseAuto reads s with [ParseSVG] if it starts with a letter, and with
// [Parse] otherwise.
func ParseAuto(s string) (*path.Data, error) {
	s = strings.TrimSpace(s)
	if s != "" && isASCIILetter(s[0]) {
		return ParseSVG(s)
	}
	return Parse(s)
}

// svgScanner reads the numbers of an SVG path.
type svgScanner struct {
	buf []byte
	pos int
}

func (sc *svgScanner) skipCommaWhitespace() {
	for sc.pos < len(sc.buf) {
		switch sc.buf[sc.pos] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *svgScanner) number() (float64, error) {
	sc.skipCommaWhitespace()
	x, n := strconv.ParseFloat(sc.buf[sc.pos:])
	if n == 0 {
		return 0, sc.errorf("number expected")
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, sc.errorf("number out of range")
	}
	sc.pos += n
	return x, nil
}

// point reads a coordinate pair.  Relative coordinates are taken from base.
func (sc *svgScanner) point(rel bool, base vec.Vec2) (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	if rel {
		x += base.X
		y += base.Y
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func (sc *svgScanner) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("offset %d: %s: %w", sc.pos, msg, ErrSyntax)
}

// mirror reflects the control point c at the current point p.
func mirror(c, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: 2*p.X - c.X, Y: 2*p.Y - c.Y}
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
