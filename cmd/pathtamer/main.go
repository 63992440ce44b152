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

// Pathtamer is an interactive terminal shell for normalizing vector paths.
//
// Press p to paste a path in text form, s to change the target size and
// w to change the preview stroke width.  Log messages are written to the
// file given by --log-file, or discarded.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"seehuhn.de/go/pathnorm/internal/config"
	"seehuhn.de/go/pathnorm/internal/logging"
	"seehuhn.de/go/pathnorm/internal/tui"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathtamer:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("pathtamer", pflag.ContinueOnError)
	config.AddFlags(fs)
	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	// The terminal belongs to the user interface.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, logOut)
	logger.Info("starting", "size", cfg.Size, "subdivisions", cfg.Subdivisions, "threshold", cfg.Threshold)

	m := tui.New(cfg, logger)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
