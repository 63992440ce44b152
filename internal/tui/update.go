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
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/pathnorm"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth, max(2, m.height-headerHeight-textHeight-footerHeight-infoHeight)) // refined in View
		return m, nil
	case processedMsg:
		return m.applyResult(msg), nil
	case tea.KeyMsg:
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.editing != fieldNone {
			return m.updateEdit(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "p":
			m.pasteMode = true
			m.ta.SetValue(pathnorm.Format(m.path))
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "s":
			return m.startEdit(fieldSize, m.opt.Size)
		case "w":
			return m.startEdit(fieldStrokeWidth, m.strokeWidth)
		case "f":
			m.fill = !m.fill
			if m.fill {
				m.status = "preview: fill"
			} else {
				m.status = "preview: stroke"
			}
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		}
	}

	// remaining messages go to the command list
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		s := strings.TrimSpace(m.ta.Value())
		if s == "" {
			m.status = "paste: empty"
			return m, nil
		}
		p, err := pathnorm.ParseAuto(s)
		if err != nil {
			m.err = err
			m.status = "parse error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.seq++
		m.status = "processing"
		return m, m.process(p)
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) startEdit(f field, value float64) (tea.Model, tea.Cmd) {
	m.editing = f
	switch f {
	case fieldSize:
		m.ti.Prompt = "size> "
	case fieldStrokeWidth:
		m.ti.Prompt = "stroke> "
	}
	m.ti.SetValue(strconv.FormatFloat(value, 'g', -1, 64))
	m.ti.CursorEnd()
	m.status = "enter a value, Esc to cancel"
	return m, m.ti.Focus()
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = fieldNone
		m.ti.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ti.Value())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			m.status = fmt.Sprintf("invalid number %q", text)
			return m, nil
		}
		f := m.editing
		switch {
		case f == fieldSize && !(v > 0):
			m.status = "size must be positive"
			return m, nil
		case f == fieldStrokeWidth && v < 0:
			m.status = "stroke width must not be negative"
			return m, nil
		}
		m.editing = fieldNone
		m.ti.Blur()

		if f == fieldSize {
			m.opt.Size = v
			m.seq++
			m.status = "processing"
			return m, m.process(m.path)
		}
		m.strokeWidth = v
		m.status = fmt.Sprintf("stroke width %g", v)
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}
