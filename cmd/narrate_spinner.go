package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type narrateDoneMsg struct {
	err error
}

type narrateSpinnerModel struct {
	spinner spinner.Model
	label   string
	narrate tea.Cmd
	err     error
	done    bool
}

func newNarrateSpinnerModel(label string, narrate tea.Cmd) narrateSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return narrateSpinnerModel{
		spinner: s,
		label:   label,
		narrate: narrate,
	}
}

func (m narrateSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.narrate)
}

func (m narrateSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case narrateDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m narrateSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runNarrateSpinner(ctx context.Context, output io.Writer, narrate func(context.Context) error) error {
	narrateCmd := func() tea.Msg {
		return narrateDoneMsg{err: narrate(ctx)}
	}

	p := tea.NewProgram(
		newNarrateSpinnerModel("Consulting the Dungeon Master...", narrateCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(narrateSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
