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

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pathnorm"
)

// processedMsg carries the outcome of a processing request.
type processedMsg struct {
	seq    int
	path   *path.Data
	result *pathnorm.Result
	err    error
}

// process returns a command which normalizes p with the current options.
// The sequence number of the model must have been advanced by the caller
// if an earlier request may still be pending.
func (m Model) process(p *path.Data) tea.Cmd {
	seq := m.seq
	opt := m.opt
	return func() tea.Msg {
		res, err := pathnorm.Process(p, &opt)
		if err != nil {
			return processedMsg{seq: seq, path: p, err: err}
		}
		return processedMsg{seq: seq, path: p, result: res}
	}
}

// applyResult installs the outcome of a processing request.  On error,
// the previous path and result are kept.
func (m Model) applyResult(msg processedMsg) Model {
	if msg.seq != m.seq {
		return m
	}
	m.err = msg.err
	if msg.err != nil {
		m.status = "error: " + msg.err.Error()
		m.logger.Warn("processing failed", "error", msg.err)
		return m
	}

	m.path = msg.path
	m.result = msg.result
	m.l.SetItems(commandItems(msg.result.Normalized))
	m.status = fmt.Sprintf("aspect %.3f", msg.result.Aspect)
	m.logger.Info("path processed",
		"commands", len(msg.path.Cmds),
		"aspect", msg.result.Aspect,
		"width", msg.result.Size.X,
		"height", msg.result.Size.Y,
		"length", msg.result.ArcLength)
	return m
}
