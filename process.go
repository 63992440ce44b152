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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultSize is the target height used by [DefaultOptions].
const DefaultSize = 200

// Options controls [Process].
type Options struct {
	// Subdivisions and Threshold configure the [Sampler].
	Subdivisions int
	Threshold    float64

	// Size is the target height of the normalized path.
	Size float64

	// Accuracy is passed to [ArcLength].
	Accuracy float64
}

// DefaultOptions returns the options used when nil is passed to [Process].
func DefaultOptions() *Options {
	return &Options{
		Subdivisions: DefaultSubdivisions,
		Threshold:    DefaultThreshold,
		Size:         DefaultSize,
		Accuracy:     DefaultAccuracy,
	}
}

// Result describes a normalized path.
type Result struct {
	// Extent is the sampled extent of the input path.
	Extent rect.Rect

	// Aspect is the aspect ratio used for normalization.
	Aspect float64

	// Normalized is the input path, mapped into the target box.
	Normalized *path.Data

	// NormalizedExtent is the sampled extent of Normalized.
	NormalizedExtent rect.Rect

	// Size is the width and height of the sampled extent of the
	// normalized path.
	Size vec.Vec2

	// ArcLength is the length of the normalized path.
	ArcLength float64
}

// Text returns the normalized path in text form.
func (r *Result) Text() string {
	return Format(r.Normalized)
}

// Process samples p, normalizes it to opt.Size and measures the result.
func Process(p *path.Data, opt *Options) (*Result, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	s := &Sampler{Subdivisions: opt.Subdivisions, Threshold: opt.Threshold}

	table, err := s.Sample(p)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	ext := Bounds(table)
	norm, aspect, err := Normalize(p, ext, opt.Size)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	// Size is measured on the lookup table of the normalized path.
	normTable, err := s.Sample(norm)
	if err != nil {
		return nil, fmt.Errorf("sample normalized: %w", err)
	}

	normExt := Bounds(normTable)

	return &Result{
		Extent:           ext,
		Aspect:           aspect,
		Normalized:       norm,
		NormalizedExtent: normExt,
		Size:             Size(normExt),
		ArcLength:        ArcLength(norm, opt.Accuracy),
	}, nil
}
