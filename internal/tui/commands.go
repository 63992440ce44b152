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
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"seehuhn.de/go/geom/path"
)

// cmdItem is a path command, shown in the command list.
type cmdItem struct {
	title, desc string
}

func (c cmdItem) Title() string       { return c.title }
func (c cmdItem) Description() string { return c.desc }
func (c cmdItem) FilterValue() string { return c.title }

var commandNames = map[path.Command]string{
	path.CmdMoveTo: "move",
	path.CmdLineTo: "line",
	path.CmdQuadTo: "quad",
	path.CmdCubeTo: "cubic",
	path.CmdClose:  "close",
}

func commandItems(p *path.Data) []list.Item {
	var items []list.Item
	i := 0
	for cmd, pts := range p.Iter() {
		var coords []string
		for _, pt := range pts {
			coords = append(coords, fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
		}
		items = append(items, cmdItem{
			title: fmt.Sprintf("%d %s", i+1, commandNames[cmd]),
			desc:  strings.Join(coords, " "),
		})
		i++
	}
	return items
}
