// Package tui shows a rendered document in a scrollable terminal view.
package tui

import (
	"bytes"
	"fmt"

	"github.com/burntcarrot/stylepad/document"
	"github.com/burntcarrot/stylepad/render"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Run shows doc until the user quits.
func Run(doc *document.Document) error {
	p := tea.NewProgram(newModel(doc), tea.WithAltScreen())
	return p.Start()
}

type (
	errMsg error
)

type model struct {
	doc      *document.Document
	viewport viewport.Model
	width    int
	ready    bool
	err      error
	Quitting bool
}

func newModel(doc *document.Document) model {
	return model{doc: doc}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.helpView())
		if height < 0 {
			height = 0
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}

		// Alignment padding depends on the width, so the content is rendered again.
		m.width = msg.Width
		m.viewport.SetContent(m.content())

	// We handle errors just like any other message
	case errMsg:
		m.err = msg
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content renders the document for the current width.
func (m model) content() string {
	var buf bytes.Buffer
	r := render.New(&buf, render.WithWidth(render.FixedWidth(m.width)))
	if err := r.Render(m.doc); err != nil {
		return fmt.Sprintf("failed to render document: %v", err)
	}
	return buf.String()
}

func (m model) headerView() string {
	return headerStyle.Render(fmt.Sprintf("Document %s  characters: %d  styles: %d",
		m.doc.ID(), m.doc.Length(), m.doc.Registry().Len()))
}

func (m model) helpView() string {
	return helpStyle.Render("(↑/↓ to scroll, q to quit)")
}

func (m model) View() string {
	if m.Quitting {
		return "\n  See you later!\n\n"
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n", m.err)
	}
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.helpView())
}
