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

// Package tui implements the interactive path shell.
package tui

import (
	"log/slog"

	list "github.com/charmbracelet/bubbles/list"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pathnorm"
	"seehuhn.de/go/pathnorm/internal/config"
	"seehuhn.de/go/pathnorm/testcases"
)

// field identifies the value edited by the single line input.
type field int

const (
	fieldNone field = iota
	fieldSize
	fieldStrokeWidth
)

type Model struct {
	width  int
	height int

	helpVisible bool
	fill        bool
	status      string

	// current path and its processed form
	path   *path.Data
	result *pathnorm.Result
	err    error     // last processing error

	opt         pathnorm.Options
	strokeWidth float64
	flatness    float64

	// seq numbers processing requests, results of older requests are
	// discarded
	seq int

	// command list
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// value editor
	editing field
	ti      textinput.Model

	logger *slog.Logger
}

// New returns the shell model, showing a circle with diameter 100.
func New(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := Model{
		helpVisible: true,
		status:      "pathtamer ready",
		path:        testcases.Ellipse(0, 0, 100, 100),
		opt:         *cfg.Options(),
		strokeWidth: cfg.StrokeWidth,
		flatness:    cfg.Flatness,
		logger:      logger,
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Commands"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	m.l.KeyMap.Quit.SetEnabled(false)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste an SVG path (\"M0 0 L10 0 L10 10 Z\") or a normalized one (\"0 0 m 10 0 l 10 10 l h\"). Press Enter to apply; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.ti = textinput.New()
	m.ti.CharLimit = 32
	m.ti.Width = 12

	return m
}

func (m Model) Init() tea.Cmd {
	return m.process(m.path)
}

// Err returns the error of the last processing request, if any.
func (m Model) Err() error {
	return m.err
}

// Result returns the processed form of the current path.
func (m Model) Result() *pathnorm.Result {
	return m.result
}
