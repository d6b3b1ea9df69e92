package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/checker"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// progressMsg carries one batch progress event into the program.
type progressMsg models.ProgressState

// doneMsg is sent once the batch has returned.
type doneMsg struct {
	report checker.Report
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// ProgressModel is the bubbletea model shown while a batch runs.
type ProgressModel struct {
	bar       progress.Model
	state     models.ProgressState
	report    checker.Report
	cancel    context.CancelFunc
	done      bool
	cancelled bool
}

// NewProgressModel creates the model. cancel is called when the user quits.
func NewProgressModel(cancel context.CancelFunc) ProgressModel {
	return ProgressModel{
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		cancel: cancel,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			// Keep running until the batch reports back with its partial results.
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-4, 80))
		return m, nil

	case progressMsg:
		m.state = models.ProgressState(msg)
		return m, m.bar.SetPercent(float64(msg.Percentage) / 100)

	case doneMsg:
		m.report = msg.report
		m.done = true
		return m, tea.Quit

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m ProgressModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title", nil)))
	b.WriteString("\n")
	b.WriteString(m.bar.View())
	b.WriteString("\n")
	if m.state.Total > 0 {
		b.WriteString(currentStyle.Render(i18n.T("progress.checking", map[string]interface{}{
			"Name":    m.state.SoftwareName,
			"Current": m.state.Current,
			"Total":   m.state.Total,
		})))
	}
	if m.cancelled {
		b.WriteString(helpStyle.Render(i18n.T("tui.cancelling", nil)))
	} else {
		b.WriteString(helpStyle.Render(i18n.T("tui.quit_hint", nil)))
	}
	b.WriteString("\n")
	return b.String()
}

// Report returns the report received when the batch finished.
func (m ProgressModel) Report() checker.Report {
	return m.report
}

// RunCheck runs the batch behind a progress bar and returns its report.
// Quitting cancels the batch; the partial report is still returned.
func RunCheck(ctx context.Context, runner *checker.Runner, items []models.SoftwareItem) (checker.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgressModel(cancel))
	go func() {
		report := runner.Run(ctx, items, func(state models.ProgressState) {
			p.Send(progressMsg(state))
		})
		p.Send(doneMsg{report: report})
	}()

	final, err := p.Run()
	if err != nil {
		return checker.Report{}, fmt.Errorf("progress display failed: %w", err)
	}
	return final.(ProgressModel).Report(), nil
}
