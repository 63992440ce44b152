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

	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pathnorm/raster"
)

// Layout
const (
	sidebarWidth = 30
	headerHeight = 1
	infoHeight   = 10
	textHeight   = 4
	footerHeight = 2

	previewMargin    = 3   // in dots
	minPreviewStroke = 1.5 // in dots
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth := max(20, m.width)
	contentHeight := max(4, m.height-headerHeight-textHeight-footerHeight)

	// Header
	header := titleStyle.Render(" pathtamer ─ vector path normalizer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Side panel
	info := boxStyle.Width(sidebarWidth - 2).Render(m.renderInfo())
	m.l.SetSize(sidebarWidth, max(2, contentHeight-lipgloss.Height(info)))
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, info, m.l.View()))

	// Preview
	previewWidth := max(10, contentWidth-sidebarWidth-1)
	var preview string
	if m.pasteMode {
		m.ta.SetWidth(previewWidth)
		m.ta.SetHeight(min(contentHeight, 12))
		preview = m.ta.View()
	} else {
		preview = m.renderPreview(previewWidth, contentHeight)
	}
	preview = lipgloss.NewStyle().Width(previewWidth).Height(contentHeight).MaxHeight(contentHeight).Render(preview)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", preview)

	// Normalized path
	text := ""
	if m.result != nil {
		text = m.result.Text()
	}
	text = lipgloss.NewStyle().Width(contentWidth - 4).MaxHeight(textHeight - 2).Render(text)
	text = boxStyle.Render(text)

	// Footer / help
	statusStyle := dimStyle
	if m.err != nil {
		statusStyle = errorStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, text, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderInfo() string {
	width, height, length := "-", "-", "-"
	if m.result != nil {
		width = fmt.Sprintf("%.3f", m.result.Size.X+m.strokeWidth)
		height = fmt.Sprintf("%.3f", m.result.Size.Y+m.strokeWidth)
		length = fmt.Sprintf("%.3f", m.result.ArcLength)
	}
	lines := []string{
		labelStyle.Render("Size"),
		fmt.Sprintf("width   %10s", width),
		fmt.Sprintf("height  %10s", height),
		fmt.Sprintf("stroke  %10.3f", m.strokeWidth),
		labelStyle.Render("Length"),
		fmt.Sprintf("        %10s", length),
	}
	if m.editing != fieldNone {
		lines = append(lines, m.ti.View())
	}
	return strings.Join(lines, "\n")
}

// renderPreview draws the normalized path into a w×h cell braille canvas.
func (m Model) renderPreview(w, h int) string {
	if m.result == nil {
		return dimStyle.Render("processing ...")
	}

	pw, ph := 2*w, 4*h
	ext := m.result.NormalizedExtent
	ctm := raster.Fit(ext, pw, ph, previewMargin)
	img := raster.Preview(m.result.Normalized, ext, pw, ph, &raster.PreviewOptions{
		LineWidth: max(minPreviewStroke, m.strokeWidth*ctm[0]),
		Margin:    previewMargin,
		Flatness:  m.flatness,
		Cap:       graphics.LineCapRound,
		Join:      graphics.LineJoinRound,
		Fill:      m.fill,
	})

	buf := newBrailleBuf(w, h)
	buf.drawImage(img)
	return strings.Join(buf.toLines(), "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"p paste",
		"s size",
		"w stroke",
		"f fill",
		"↑↓ commands",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
