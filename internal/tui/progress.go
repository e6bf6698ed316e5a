package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trknhr/pursuit/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type trialMsg sim.TrialResult

type doneMsg struct{ err error }

type progressModel struct {
	bar          progress.Model
	total        int
	done         int
	degenerate   int
	precisionSum float64
	recallSum    float64
	err          error
	finished     bool
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trialMsg:
		m.done++
		m.precisionSum += msg.Precision
		m.recallSum += msg.Recall
		if !msg.PrecisionDefined {
			m.degenerate++
		}
		return m, nil
	case doneMsg:
		m.err = msg.err
		m.finished = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 10), 60)
	}
	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pursuit"))
	b.WriteString(fmt.Sprintf(" trial %d/%d\n", m.done, m.total))
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n")
	if m.done > 0 {
		n := float64(m.done)
		b.WriteString(dimStyle.Render(fmt.Sprintf("mean precision %.4f  mean recall %.4f", m.precisionSum/n, m.recallSum/n)))
		b.WriteString("\n")
	}
	if m.degenerate > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d trial(s) produced too few lexicon entries to score", m.degenerate)))
		b.WriteString("\n")
	}
	return b.String()
}

// Run shows a progress bar on out while work executes. work receives a
// callback to report each finished trial.
func Run(ctx context.Context, total int, out io.Writer, work func(onTrial func(sim.TrialResult)) error) error {
	p := tea.NewProgram(newProgressModel(total),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)

	go func() {
		err := work(func(r sim.TrialResult) { p.Send(trialMsg(r)) })
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run progress view: %w", err)
	}
	return final.(progressModel).err
}
