package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/msggen/config"
	"github.com/wippyai/msggen/dynamic"
	"github.com/wippyai/msggen/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	schema   *schema.Schema
	source   []byte
	result   string
	input    textinput.Model
	cfg      config.Config
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectMessage modelState = iota
	stateLayout
	stateAccessors
	stateDecodeInput
	stateShowResult
)

func newInteractiveModel(s *schema.Schema, cfg config.Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "hex bytes, e.g. 07000000 02000000 ..."
	ti.Prompt = "buffer: "
	ti.Width = 64
	ti.CharLimit = 0

	return &interactiveModel{
		schema: s,
		cfg:    cfg,
		input:  ti,
		state:  stateSelectMessage,
	}
}

type generatedMsg struct {
	err error
	src []byte
}

type decodeResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.generate
}

func (m *interactiveModel) generate() tea.Msg {
	src, err := generate(m.schema, m.cfg)
	return generatedMsg{src: src, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateDecodeInput {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				return m, m.decode
			case "esc":
				m.input.Blur()
				m.state = stateSelectMessage
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectMessage && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMessage && m.selected < len(m.schema.Messages)-1 {
				m.selected++
			}

		case "enter", "l":
			if m.state == stateSelectMessage && len(m.schema.Messages) > 0 {
				m.state = stateLayout
			} else if m.state != stateSelectMessage {
				m.back()
			}

		case "g":
			if m.state == stateSelectMessage && len(m.schema.Messages) > 0 {
				m.state = stateAccessors
			}

		case "d":
			if m.state == stateSelectMessage && len(m.schema.Messages) > 0 {
				m.state = stateDecodeInput
				m.input.SetValue("")
				return m, m.input.Focus()
			}

		case "esc":
			m.back()
		}

	case generatedMsg:
		m.source = msg.src
		if msg.err != nil {
			m.err = msg.err
		}

	case decodeResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.input.Blur()
		m.state = stateShowResult
	}

	return m, nil
}

func (m *interactiveModel) back() {
	m.state = stateSelectMessage
	m.result = ""
	m.err = nil
}

func (m *interactiveModel) decode() tea.Msg {
	msg := m.schema.Messages[m.selected]
	buf, err := parseHex(m.input.Value())
	if err != nil {
		return decodeResultMsg{err: err}
	}
	rec, err := dynamic.Decode(msg, m.schema, buf)
	if err != nil {
		return decodeResultMsg{err: err}
	}
	return decodeResultMsg{result: rec.String()}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("msggen"))
	b.WriteString(" ")
	b.WriteString(strings.Join(m.cfg.Schemas, ", "))
	b.WriteString("\n\n")

	if len(m.schema.Messages) == 0 {
		b.WriteString("The schema declares no messages.\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}
	msg := m.schema.Messages[m.selected]

	switch m.state {
	case stateSelectMessage:
		b.WriteString("Select a message:\n\n")
		for i, mm := range m.schema.Messages {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatMessage(mm)))
			} else {
				b.WriteString("  " + m.formatMessage(mm))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter layout • g accessors • d decode • q quit"))

	case stateLayout:
		b.WriteString(fmt.Sprintf("Layout of %s (header %d, fixed %d)\n\n",
			nameStyle.Render(msg.Name), msg.HeaderSize, msg.FixedSize))
		b.WriteString(layoutTable(msg.Fields, true))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))

	case stateAccessors:
		b.WriteString(fmt.Sprintf("Accessors for %s\n\n", nameStyle.Render(msg.Name)))
		for _, sig := range accessorSignatures(m.source, msg.GoName) {
			b.WriteString(typeStyle.Render(sig))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))

	case stateDecodeInput:
		b.WriteString(fmt.Sprintf("Decode %s\n\n", nameStyle.Render(msg.Name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Decoded %s:\n\n", nameStyle.Render(msg.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatMessage(msg *schema.Message) string {
	var fields []string
	for _, f := range msg.Fields {
		fields = append(fields, f.Name()+": "+typeStyle.Render(typeLabel(f)))
	}
	return nameStyle.Render(msg.Name) + "(" + strings.Join(fields, ", ") + ")"
}

// accessorSignatures returns the signature lines of the generated functions
// that belong to the message with the given Go name.
func accessorSignatures(src []byte, goName string) []string {
	var out []string
	for _, line := range strings.Split(string(src), "\n") {
		sig, ok := strings.CutPrefix(line, "func ")
		if !ok {
			continue
		}
		if strings.HasPrefix(sig, goName+"Get") ||
			strings.HasPrefix(sig, goName+"Set") ||
			strings.HasPrefix(sig, goName+"Parse(") ||
			strings.HasPrefix(sig, goName+"Message(") ||
			strings.HasPrefix(sig, "New"+goName+"Builder(") {
			out = append(out, strings.TrimSuffix(line, " {"))
		}
	}
	return out
}

func runInteractive(s *schema.Schema, cfg config.Config) error {
	p := tea.NewProgram(newInteractiveModel(s, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
