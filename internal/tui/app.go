// Package tui implements the interactive chat screen.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemchat-dev/gemchat/internal/chat"
	"github.com/gemchat-dev/gemchat/internal/gemchat"
)

// replyMsg is delivered when an in-flight exchange completes. The
// assistant turn is already in the store by then; only the error (if
// any) travels with the message.
type replyMsg struct {
	err error
}

type Model struct {
	store    *gemchat.Store
	svc      *chat.Service
	input    textinput.Model
	width    int
	height   int
	pending  int
	lastErr  error
	quitting bool
}

func NewModel(store *gemchat.Store, svc *chat.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "type a message..."
	ti.CharLimit = 2000
	ti.Focus()

	return Model{
		store:  store,
		svc:    svc,
		input:  ti,
		width:  100,
		height: 30,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replyMsg:
		m.pending--
		m.lastErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+r":
			m.store.Reset()
			m.lastErr = nil
			return m, nil

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				// nothing to send; the client itself never validates
				return m, nil
			}
			m.input.SetValue("")
			m.pending++
			m.lastErr = nil
			return m, m.exchange(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// exchange runs one completion off the UI loop. Overlapping exchanges
// are allowed and complete independently.
func (m Model) exchange(text string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		_, err := svc.Exchange(context.Background(), text)
		return replyMsg{err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("gemchat") + "\n\n")

	// transcript, tail-trimmed to the visible area
	var lines []string
	for _, msg := range m.store.List() {
		lines = append(lines, strings.Split(m.renderMessage(msg), "\n")...)
		lines = append(lines, "")
	}

	visible := m.height - 7 // title, status, input, help, spacing
	if visible < 3 {
		visible = 3
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	if m.pending > 0 {
		b.WriteString(dimStyle.Render("waiting for reply...") + "\n")
	} else if m.lastErr != nil {
		b.WriteString(errorStyle.Render("error: "+m.lastErr.Error()) + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(inputStyle.Width(max(m.width-2, 20)).Render(m.input.View()) + "\n")
	b.WriteString(helpStyle.Render("enter: send  ctrl+r: reset  esc: quit"))

	return b.String()
}

func (m Model) renderMessage(msg gemchat.Message) string {
	tag := assistantRoleStyle.Render("assistant")
	if msg.Author == gemchat.AuthorUser {
		tag = userRoleStyle.Render("you")
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	body := messageStyle.Width(width).Render(msg.Text)

	return tag + "\n" + body
}
