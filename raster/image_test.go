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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pathnorm/testcases"
)

func TestFit(t *testing.T) {
	apply := func(m [6]float64, x, y float64) (float64, float64) {
		return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
	}

	cases := []struct {
		ext    rect.Rect
		w, h   int
		margin float64
		ll, ur [2]float64 // device positions of the extent's corners
	}{
		{rect.Rect{URx: 20, URy: 10}, 100, 100, 0, [2]float64{0, 75}, [2]float64{100, 25}},
		{rect.Rect{URx: 10, URy: 20}, 100, 100, 0, [2]float64{25, 100}, [2]float64{75, 0}},
		{rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, 40, 20, 2, [2]float64{12, 18}, [2]float64{28, 2}},
		{rect.Rect{LLx: 5, LLy: 5, URx: 15, URy: 5}, 40, 20, 0, [2]float64{0, 10}, [2]float64{40, 10}},
	}
	for i, tc := range cases {
		m := Fit(tc.ext, tc.w, tc.h, tc.margin)
		x0, y0 := apply(m, tc.ext.LLx, tc.ext.LLy)
		x1, y1 := apply(m, tc.ext.URx, tc.ext.URy)
		got := [4]float64{x0, y0, x1, y1}
		want := [4]float64{tc.ll[0], tc.ll[1], tc.ur[0], tc.ur[1]}
		for j := range got {
			if math.Abs(got[j]-want[j]) > 1e-9 {
				t.Errorf("%d: got corners %v, want %v", i, got, want)
				break
			}
		}
	}
}

func TestImage(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 3, Y: 1}).
		LineTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 1, Y: 3}).
		Close()
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})

	img := Image(4, 4, func(emit func(y, xMin int, coverage []float32)) {
		r.FillNonZero(square, emit)
	})
	for y := range 4 {
		for x := range 4 {
			want := uint8(255)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 0
			}
			if got := img.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d, %d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestPreview(t *testing.T) {
	tc, ok := testcases.Find("circle")
	if !ok {
		t.Fatal("missing circle")
	}
	ext := rect.Rect{URx: 100, URy: 100}
	img := Preview(tc.Path, ext, 40, 40, nil)

	if c := img.GrayAt(20, 20).Y; c != 255 {
		t.Errorf("centre: got %d, want 255", c)
	}
	var ink float64
	for _, c := range img.Pix {
		ink += float64(255-c) / 255
	}
	// a circle of diameter 36, drawn one pixel wide
	if want := math.Pi * 36; math.Abs(ink-want) > 0.05*want {
		t.Errorf("ink %.1f, expected about %.1f", ink, want)
	}

	filled := Preview(tc.Path, ext, 40, 40, &PreviewOptions{Fill: true, Margin: 2})
	if c := filled.GrayAt(20, 20).Y; c != 0 {
		t.Errorf("filled centre: got %d, want 0", c)
	}
}

// drawVector feeds p to a golang.org/x/image/vector rasterizer.
func drawVector(z *vector.Rasterizer, p *path.Data) {
	f := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }
	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		c := p.Coords[coordIdx:]
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f(c[0]))
			open = true
			coordIdx++
		case path.CmdLineTo:
			z.LineTo(f(c[0]))
			coordIdx++
		case path.CmdQuadTo:
			bx, by := f(c[0])
			cx, cy := f(c[1])
			z.QuadTo(bx, by, cx, cy)
			coordIdx += 2
		case path.CmdCubeTo:
			bx, by := f(c[0])
			cx, cy := f(c[1])
			dx, dy := f(c[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
	if open {
		z.ClosePath()
	}
}

func TestAgainstVector(t *testing.T) {
	const size = 64
	for _, name := range []string{"ring_shape", "two_triangles", "pie"} {
		t.Run(name, func(t *testing.T) {
			tc, ok := testcases.Find(name)
			if !ok {
				t.Fatalf("missing %s", name)
			}

			z := vector.NewRasterizer(size, size)
			drawVector(z, tc.Path)
			ref := image.NewAlpha(image.Rect(0, 0, size, size))
			z.Draw(ref, ref.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

			r := NewRasteriser(rect.Rect{URx: size, URy: size})
			r.Flatness = 0.05
			grid := collect(size, size, func(emit func(y, xMin int, coverage []float32)) {
				r.FillNonZero(tc.Path, emit)
			})

			var sumDiff, sumRef, sumGot float64
			for y := range size {
				for x := range size {
					want := float64(ref.AlphaAt(x, y).A) / 255
					got := float64(grid[y][x])
					sumDiff += math.Abs(want - got)
					sumRef += want
					sumGot += got
				}
			}
			if mean := sumDiff / (size * size); mean > 0.01 {
				t.Errorf("mean coverage difference %g", mean)
			}
			if math.Abs(sumGot-sumRef) > 0.005*sumRef {
				t.Errorf("area %g, reference %g", sumGot, sumRef)
			}
		})
	}
}

func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			tc, _ := testcases.Find("ring_shape")
			r.CTM = Fit(rect.Rect{LLx: 7, LLy: 7, URx: 57, URy: 57}, size, size, 0)

			b.ReportAllocs()
			for b.Loop() {
				r.FillEvenOdd(tc.Path, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			tc, _ := testcases.Find("ring_shape")
			scale := float64(size) / 50
			scaled := &path.Data{Cmds: tc.Path.Cmds}
			for _, c := range tc.Path.Coords {
				scaled.Coords = append(scaled.Coords, c.Sub(vec.Vec2{X: 7, Y: 7}).Mul(scale))
			}

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				drawVector(z, scaled)
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
