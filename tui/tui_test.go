package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/style"
	tea "github.com/charmbracelet/bubbletea"
)

func testDocument() *document.Document {
	doc := document.New()
	doc.InsertStyled('A', 0, "Arial", 12, true, false, style.Red, true, style.Left)
	doc.InsertStyled('B', 1, "Arial", 12, true, false, style.Red, true, style.Left)
	return doc
}

func TestView_BeforeResize(t *testing.T) {
	m := newModel(testDocument())

	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("unexpected view: %q\n", got)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := tea.Model(newModel(testDocument()))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})

	view := m.View()
	for _, want := range []string{"characters: 2", "styles: 1", "Font: Arial", "******"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}

	got := m.(model)
	if got.width != 60 || got.viewport.Width != 60 {
		t.Errorf("got != want; width = %v, viewport width = %v, expected = %v\n", got.width, got.viewport.Width, 60)
	}
}

func TestUpdate_Resize(t *testing.T) {
	m := tea.Model(newModel(testDocument()))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	got := m.(model)
	if got.viewport.Width != 30 || got.width != 30 {
		t.Errorf("got != want; width = %v, expected = %v\n", got.viewport.Width, 30)
	}
}

func TestUpdate_Quit(t *testing.T) {
	tests := []struct {
		description string
		key         tea.KeyMsg
	}{
		{description: "q", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{description: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{description: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		m, cmd := newModel(testDocument()).Update(tc.key)
		if cmd == nil {
			t.Errorf("(%s) expected a quit command\n", tc.description)
		}
		if !m.(model).Quitting {
			t.Errorf("(%s) expected the model to be quitting\n", tc.description)
		}
		if !strings.Contains(m.View(), "See you later") {
			t.Errorf("(%s) unexpected view: %q\n", tc.description, m.View())
		}
	}
}

func TestUpdate_Error(t *testing.T) {
	m, _ := newModel(testDocument()).Update(errMsg(errors.New("boom")))
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("unexpected view: %q\n", m.View())
	}
}
