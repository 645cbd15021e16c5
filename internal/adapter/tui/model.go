// Package tui hosts the prediction form in a terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ressKim-io/NewsGuard/internal/usecase"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	resultStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1)
	predictionStyle = resultStyle.BorderForeground(lipgloss.Color("42"))
	errorStyle      = resultStyle.BorderForeground(lipgloss.Color("9"))
)

type resultMsg struct {
	outcome usecase.Outcome
}

// Model is the bubbletea model of the terminal form
type Model struct {
	title   string
	input   textinput.Model
	spinner spinner.Model

	field   *usecase.TextField
	display *usecase.Display
	button  *usecase.SubmitButton
	results chan usecase.Outcome
	unbind  func()

	pending  int
	quitting bool
}

// NewModel wires a FormController to a terminal text input and result area.
// build receives the handles and must return the controller to bind.
func NewModel(ctx context.Context, title string, build func(*usecase.TextField, *usecase.Display) *usecase.FormController) Model {
	ti := textinput.New()
	ti.Placeholder = "Paste a news headline or article..."
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	ti.CharLimit = 0
	ti.Width = 72
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		title:   title,
		input:   ti,
		spinner: sp,
		field:   usecase.NewTextField(""),
		display: usecase.NewDisplay(),
		button:  usecase.NewSubmitButton(),
		results: make(chan usecase.Outcome, 16),
	}

	results := m.results
	controller := build(m.field, m.display)
	m.unbind = controller.Bind(ctx, m.button, func(outcome usecase.Outcome) {
		results <- outcome
	})

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForResult())
}

func (m Model) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return resultMsg{outcome: <-m.results}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.unbind()
			return m, tea.Quit
		case tea.KeyEnter:
			m.field.Set(m.input.Value())
			m.pending++
			m.button.Click()
			if m.pending == 1 {
				return m, m.spinner.Tick
			}
			return m, nil
		}

	case resultMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m, m.waitForResult()

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.pending > 0 {
		b.WriteString(m.spinner.View() + " Checking...\n")
	}

	state := m.display.Snapshot()
	if !state.Hidden {
		style := predictionStyle
		if strings.HasPrefix(state.Text, usecase.ErrorPrefix) || state.Text == usecase.EmptyInputMessage {
			style = errorStyle
		}
		b.WriteString(style.Render(state.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: check  esc: quit"))
	return b.String()
}
