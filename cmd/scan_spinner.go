package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlvx/limitwatch/internal/application"
)

type scanDoneMsg struct {
	outcome application.ScanOutcome
	err     error
}

type scanSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	outcome application.ScanOutcome
	err     error
	done    bool
}

func newScanSpinnerModel(label string, run tea.Cmd) scanSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return scanSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
	}
}

func (m scanSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m scanSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case scanDoneMsg:
		m.done = true
		m.outcome = msg.outcome
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m scanSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runScanSpinner(ctx context.Context, output io.Writer, scanOnce func(context.Context) (application.ScanOutcome, error)) (application.ScanOutcome, error) {
	runCmd := func() tea.Msg {
		outcome, err := scanOnce(ctx)
		return scanDoneMsg{outcome: outcome, err: err}
	}

	p := tea.NewProgram(
		newScanSpinnerModel("Scanning transcript...", runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.ScanOutcome{}, err
	}

	result, ok := finalModel.(scanSpinnerModel)
	if !ok {
		return application.ScanOutcome{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.outcome, result.err
}
