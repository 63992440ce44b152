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

// Pathnorm normalizes a vector path given in text form.
//
// The path is read from the command line arguments or, if there are none,
// from standard input:
//
//	pathnorm --size 50 "M0 0 H20 V10 H0 Z"
//	pathnorm --size 50 "0 0 m 20 0 l 20 10 l 0 10 l h"
//	echo "10 10 30 20 re" | pathnorm --json --png preview.png
//
// Input starting with a letter is read as an SVG path, other input in
// the normalized text form which is also used for output.  The reported
// size includes the stroke width.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pathnorm"
	"seehuhn.de/go/pathnorm/internal/config"
	"seehuhn.de/go/pathnorm/internal/logging"
	"seehuhn.de/go/pathnorm/pdfout"
	"seehuhn.de/go/pathnorm/raster"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathnorm:", err)
		os.Exit(1)
	}
}

type flags struct {
	json    bool
	pngFile string
	pngSize int
	pdfFile string
	bounds  bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("pathnorm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.AddFlags(fs)
	var f flags
	fs.BoolVar(&f.json, "json", false, "write the result as JSON")
	fs.StringVar(&f.pngFile, "png", "", "write a PNG preview to `file`")
	fs.IntVar(&f.pngSize, "png-size", 256, "size of the PNG preview in pixels")
	fs.StringVar(&f.pdfFile, "pdf", "", "write the normalized path to a PDF `file`")
	fs.BoolVar(&f.bounds, "bounds", false, "show the target box in the PDF output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pathnorm [flags] [path]")
		fs.PrintDefaults()
	}
	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}
	if f.pngSize < 1 {
		return fmt.Errorf("invalid PNG size %d", f.pngSize)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, stderr)

	var src string
	if fs.NArg() > 0 {
		src = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read path: %w", err)
		}
		src = string(data)
	}

	p, err := pathnorm.ParseAuto(src)
	if err != nil {
		return err
	}
	res, err := pathnorm.Process(p, cfg.Options())
	if err != nil {
		return err
	}
	logger.Debug("path normalized",
		"commands", len(p.Cmds),
		"aspect", res.Aspect,
		"width", res.Size.X,
		"height", res.Size.Y)

	if f.json {
		err = writeJSON(stdout, res, cfg.StrokeWidth)
	} else {
		_, err = fmt.Fprintf(stdout, "%s\nsize %.3f %.3f\nlength %.3f\n",
			res.Text(), res.Size.X+cfg.StrokeWidth, res.Size.Y+cfg.StrokeWidth, res.ArcLength)
	}
	if err != nil {
		return err
	}

	if f.pngFile != "" {
		err := writePNG(f.pngFile, res, cfg, f.pngSize)
		if err != nil {
			return err
		}
		logger.Info("preview written", "file", f.pngFile)
	}

	if f.pdfFile != "" {
		opt := &pdfout.Options{
			LineWidth: cfg.StrokeWidth,
			Cap:       graphics.LineCapRound,
			Join:      graphics.LineJoinRound,
			Bounds:    f.bounds,
		}
		err := pdfout.Write(f.pdfFile, res.Normalized, res.Size, opt)
		if err != nil {
			return err
		}
		logger.Info("PDF written", "file", f.pdfFile)
	}

	return nil
}

// jsonResult is the --json output.  Width and height include the stroke
// width.
type jsonResult struct {
	Path        string     `json:"path"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	StrokeWidth float64    `json:"stroke_width"`
	Aspect      float64    `json:"aspect"`
	ArcLength   float64    `json:"arc_length"`
	Extent      [4]float64 `json:"extent"`
}

func writeJSON(w io.Writer, res *pathnorm.Result, strokeWidth float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jsonResult{
		Path:        res.Text(),
		Width:       res.Size.X + strokeWidth,
		Height:      res.Size.Y + strokeWidth,
		StrokeWidth: strokeWidth,
		Aspect:      res.Aspect,
		ArcLength:   res.ArcLength,
		Extent:      [4]float64{res.Extent.LLx, res.Extent.LLy, res.Extent.URx, res.Extent.URy},
	})
}

// writePNG draws the normalized path into a square PNG image.
func writePNG(fname string, res *pathnorm.Result, cfg *config.Config, n int) error {
	ext := res.NormalizedExtent

	const margin = 4
	ctm := raster.Fit(ext, n, n, margin)
	img := raster.Preview(res.Normalized, ext, n, n, &raster.PreviewOptions{
		LineWidth: max(1, cfg.StrokeWidth*ctm[0]),
		Margin:    margin,
		Flatness:  cfg.Flatness,
		Cap:       graphics.LineCapRound,
		Join:      graphics.LineJoinRound,
	})

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		slog.Warn("removing incomplete preview", "file", fname)
		os.Remove(fname)
		return err
	}
	return out.Close()
}
