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
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/pathnorm"
	"seehuhn.de/go/pathnorm/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Size:         100,
		Subdivisions: pathnorm.DefaultSubdivisions,
		Threshold:    pathnorm.DefaultThreshold,
		Accuracy:     pathnorm.DefaultAccuracy,
		StrokeWidth:  1,
		Flatness:     0.25,
	}
}

// newModel returns a model which has processed its initial path.
func newModel(t *testing.T) Model {
	t.Helper()
	m := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return run(t, m, m.Init())
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// run executes a processing command and feeds its result to the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("no command returned")
	}
	msg, ok := cmd().(processedMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	m, _ = update(m, msg)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// paste enters text in paste mode and submits it.
func paste(m Model, text string) (Model, tea.Cmd) {
	m, _ = update(m, key("p"))
	m.ta.SetValue(text)
	return update(m, key("enter"))
}

func TestInitial(t *testing.T) {
	m := newModel(t)

	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	res := m.Result()
	if res == nil {
		t.Fatal("no result")
	}
	if math.Abs(res.Size.X-100) > 1 || math.Abs(res.Size.Y-100) > 1 {
		t.Errorf("size = %v, want about 100x100", res.Size)
	}
	if math.Abs(res.ArcLength-100*math.Pi) > 0.5 {
		t.Errorf("length = %g, want about %g", res.ArcLength, 100*math.Pi)
	}
	if n := len(m.l.Items()); n != 6 {
		t.Errorf("%d commands listed, want 6", n)
	}
	if !strings.HasPrefix(m.status, "aspect") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestPaste(t *testing.T) {
	m := newModel(t)

	m, _ = update(m, key("p"))
	if !m.pasteMode {
		t.Fatal("not in paste mode")
	}
	if got, want := m.ta.Value(), pathnorm.Format(m.path); got != want {
		t.Errorf("paste area holds %q, want %q", got, want)
	}

	m.ta.SetValue("0 0 20 10 re")
	m, cmd := update(m, key("enter"))
	if m.pasteMode {
		t.Error("still in paste mode")
	}
	m = run(t, m, cmd)

	res := m.Result()
	if math.Abs(res.Size.X-200) > 1 || math.Abs(res.Size.Y-100) > 1 {
		t.Errorf("size = %v, want about 200x100", res.Size)
	}
	if math.Abs(res.ArcLength-600) > 1e-6 {
		t.Errorf("length = %g, want 600", res.ArcLength)
	}
	if n := len(m.l.Items()); n != 5 {
		t.Errorf("%d commands listed, want 5", n)
	}
}

func TestPasteSVG(t *testing.T) {
	m := newModel(t)

	m, cmd := paste(m, "M0 0 H20 V10 H0 Z")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	m = run(t, m, cmd)

	res := m.Result()
	if math.Abs(res.Size.X-200) > 1 || math.Abs(res.Size.Y-100) > 1 {
		t.Errorf("size = %v, want about 200x100", res.Size)
	}
	if got := pathnorm.Format(m.path); got != "0.000 0.000 m 20.000 0.000 l 20.000 10.000 l 0.000 10.000 l h" {
		t.Errorf("unexpected path %q", got)
	}
}

func TestPasteCancel(t *testing.T) {
	m := newModel(t)
	before := m.Result()

	m, _ = update(m, key("p"))
	m.ta.SetValue("0 0 20 10 re")
	m, cmd := update(m, key("esc"))
	if m.pasteMode {
		t.Error("still in paste mode")
	}
	if cmd != nil {
		t.Error("unexpected command")
	}
	if m.Result() != before {
		t.Error("result changed")
	}
}

func TestPasteSyntaxError(t *testing.T) {
	m := newModel(t)
	before := m.Result()

	m, cmd := paste(m, "0 0 m 1 l")
	if cmd != nil {
		t.Error("unexpected command")
	}
	if !errors.Is(m.Err(), pathnorm.ErrSyntax) {
		t.Errorf("got error %v, want a syntax error", m.Err())
	}
	if !m.pasteMode {
		t.Error("paste mode left after a syntax error")
	}
	if m.Result() != before {
		t.Error("result changed")
	}
}

func TestDegenerateKeepsPrevious(t *testing.T) {
	m := newModel(t)
	before := m.Result()
	beforePath := m.path

	m, cmd := paste(m, "0 0 m 10 0 l")
	m = run(t, m, cmd)

	if !errors.Is(m.Err(), pathnorm.ErrDegeneratePath) {
		t.Errorf("got error %v, want a degenerate path error", m.Err())
	}
	if m.Result() != before || m.path != beforePath {
		t.Error("previous path not kept")
	}
	if !strings.HasPrefix(m.status, "error") {
		t.Errorf("unexpected status %q", m.status)
	}

	// the next good path clears the error
	m, cmd = paste(m, "0 0 m 10 0 l 0 10 l h")
	m = run(t, m, cmd)
	if m.Err() != nil {
		t.Error(m.Err())
	}
}

func TestStaleResult(t *testing.T) {
	m := newModel(t)

	m, first := paste(m, "0 0 20 10 re")
	m, second := paste(m, "0 0 10 20 re")

	// the first request finishes last and is ignored
	stale, _ := first().(processedMsg)
	m = run(t, m, second)
	m, _ = update(m, stale)

	res := m.Result()
	if math.Abs(res.Size.X-50) > 1 || math.Abs(res.Size.Y-100) > 1 {
		t.Errorf("size = %v, want about 50x100", res.Size)
	}
}

func TestEditSize(t *testing.T) {
	m := newModel(t)

	m, _ = update(m, key("s"))
	if m.editing != fieldSize {
		t.Fatal("size field not active")
	}
	if got := m.ti.Value(); got != "100" {
		t.Errorf("size field holds %q, want 100", got)
	}

	for _, bad := range []string{"abc", "0", "-1", "inf"} {
		m.ti.SetValue(bad)
		var cmd tea.Cmd
		m, cmd = update(m, key("enter"))
		if cmd != nil || m.editing != fieldSize {
			t.Errorf("%q accepted", bad)
		}
	}

	m.ti.SetValue("50")
	m, cmd := update(m, key("enter"))
	if m.editing != fieldNone {
		t.Error("size field still active")
	}
	m = run(t, m, cmd)
	if got := m.Result().Size.Y; math.Abs(got-50) > 1 {
		t.Errorf("height = %g, want about 50", got)
	}
}

func TestEditStrokeWidth(t *testing.T) {
	m := newModel(t)
	before := m.Result()

	m, _ = update(m, key("w"))
	m.ti.SetValue("-1")
	m, _ = update(m, key("enter"))
	if m.editing != fieldStrokeWidth {
		t.Error("negative stroke width accepted")
	}

	m.ti.SetValue("2.5")
	m, cmd := update(m, key("enter"))
	if cmd != nil {
		t.Error("stroke width change should not reprocess the path")
	}
	if m.strokeWidth != 2.5 {
		t.Errorf("stroke width = %g, want 2.5", m.strokeWidth)
	}
	if m.Result() != before {
		t.Error("result changed")
	}

	m, _ = update(m, key("w"))
	m.ti.SetValue("7")
	m, _ = update(m, key("esc"))
	if m.editing != fieldNone || m.strokeWidth != 2.5 {
		t.Error("cancelled edit was applied")
	}
}

func TestInfoIncludesStrokeWidth(t *testing.T) {
	m := newModel(t)

	// the circle is exactly 100 units wide and high
	if n := strings.Count(m.renderInfo(), "101.000"); n != 2 {
		t.Errorf("width and height with stroke 1: found %d of 2", n)
	}

	m, _ = update(m, key("w"))
	m.ti.SetValue("2.5")
	m, _ = update(m, key("enter"))
	if n := strings.Count(m.renderInfo(), "102.500"); n != 2 {
		t.Errorf("width and height with stroke 2.5: found %d of 2", n)
	}
}

func TestView(t *testing.T) {
	m := newModel(t)
	if v := m.View(); v != "" {
		t.Error("view rendered before the window size is known")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	for _, fill := range []bool{false, true} {
		m.fill = fill
		v := m.View()
		for _, want := range []string{"pathtamer", "Size", "Length", " m ", "q quit"} {
			if !strings.Contains(v, want) {
				t.Errorf("fill=%t: view does not contain %q", fill, want)
			}
		}
		hasBraille := strings.ContainsFunc(v, func(r rune) bool {
			return r > 0x2800 && r <= 0x28FF
		})
		if !hasBraille {
			t.Errorf("fill=%t: no preview drawn", fill)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("no command returned")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q does not quit")
	}
}

func TestBraille(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetGray(1, 5, color.Gray{Y: 0})
	img.SetGray(2, 0, color.Gray{Y: 100})
	img.SetGray(3, 3, color.Gray{Y: 200}) // too light

	b := newBrailleBuf(2, 2)
	b.drawImage(img)
	lines := b.toLines()

	want := []string{
		" " + string(rune(0x2801)),
		string(rune(0x2810)) + " ",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
