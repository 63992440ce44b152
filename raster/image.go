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
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Fit returns the transformation which maps ext into a w×h pixel grid,
// leaving margin pixels free on each side.  The aspect ratio is kept,
// the result is centred, and the y-axis is flipped so that larger user
// space y values appear higher up.
func Fit(ext rect.Rect, w, h int, margin float64) matrix.Matrix {
	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin
	extW := ext.URx - ext.LLx
	extH := ext.URy - ext.LLy

	var scale float64
	switch {
	case extW > 0 && extH > 0:
		scale = min(availW/extW, availH/extH)
	case extW > 0:
		scale = availW / extW
	case extH > 0:
		scale = availH / extH
	default:
		scale = 1
	}

	tx := margin + (availW-scale*extW)/2 - scale*ext.LLx
	ty := float64(h) - margin - (availH-scale*extH)/2 + scale*ext.LLy
	return matrix.Matrix{scale, 0, 0, -scale, tx, ty}
}

// Image allocates a white w×h image and calls draw.  Coverage passed to
// the emit callback is painted onto the image in black.
func Image(w, h int, draw func(emit func(y, xMin int, coverage []float32))) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	draw(func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h {
			return
		}
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= w {
				continue
			}
			row[x] = uint8(float32(row[x])*(1-c) + 0.5)
		}
	})
	return img
}

// PreviewOptions control [Preview].
type PreviewOptions struct {
	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// Margin is the number of pixels left free around the path.
	Margin float64

	// Flatness overrides the default flattening tolerance, if positive.
	Flatness float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// Fill selects the nonzero fill instead of stroking.
	Fill bool
}

// Preview draws p, scaled so that ext fits into a w×h image.
func Preview(p *path.Data, ext rect.Rect, w, h int, opt *PreviewOptions) *image.Gray {
	if opt == nil {
		opt = &PreviewOptions{LineWidth: 1, Margin: 2, Join: graphics.LineJoinRound}
	}
	ctm := Fit(ext, w, h, opt.Margin)

	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = ctm
	r.Cap = opt.Cap
	r.Join = opt.Join
	if opt.Flatness > 0 {
		r.Flatness = opt.Flatness
	}
	if ctm[0] != 0 {
		r.Width = opt.LineWidth / ctm[0]
	}
	return Image(w, h, func(emit func(y, xMin int, coverage []float32)) {
		if opt.Fill {
			r.FillNonZero(p, emit)
		} else {
			r.Stroke(p, emit)
		}
	})
}
