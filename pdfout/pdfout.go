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

// Package pdfout writes normalized paths to single-page PDF files.
package pdfout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// ErrEmptyPage is returned when the page would have zero width or height.
var ErrEmptyPage = errors.New("empty page")

// Options control the appearance of the exported path.
type Options struct {
	// LineWidth is the stroke width in PDF units.
	LineWidth float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// Bounds, if set, draws the target box in light gray behind the path.
	Bounds bool
}

// DefaultOptions returns one unit wide strokes with round joins.
func DefaultOptions() *Options {
	return &Options{
		LineWidth: 1,
		Cap:       graphics.LineCapRound,
		Join:      graphics.LineJoinRound,
	}
}

// Write creates filename as a PDF file with a single page showing p.
// The page measures size plus one line width in each direction, so
// that strokes along the border of the target box are not cut off.
// Quadratic segments are written as cubic curves.
func Write(filename string, p *path.Data, size vec.Vec2, opt *Options) error {
	if opt == nil {
		opt = DefaultOptions()
	}
	pad := opt.LineWidth / 2
	w := size.X + 2*pad
	h := size.Y + 2*pad
	if !(w > 0 && h > 0) {
		return fmt.Errorf("page %gx%g: %w", w, h, ErrEmptyPage)
	}

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Matrix{1, 0, 0, 1, pad, pad})

	if opt.Bounds {
		page.SetFillColor(color.DeviceGray(0.9))
		page.Rectangle(0, 0, size.X, size.Y)
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(opt.LineWidth)
	page.SetLineCap(opt.Cap)
	page.SetLineJoin(opt.Join)

	hasSegments := false
	if p != nil {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
				hasSegments = true
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				hasSegments = true
			case path.CmdClose:
				page.ClosePath()
				hasSegments = true
			}
		}
	}
	if hasSegments {
		page.Stroke()
	}

	return page.Close()
}
