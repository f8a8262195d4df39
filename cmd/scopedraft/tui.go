package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scopedraft/internal/artifact"
	"scopedraft/internal/plan"
	"scopedraft/internal/stream"
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tuiProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	tuiStepStyles = map[plan.StepStatus]lipgloss.Style{
		plan.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		plan.StatusFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		plan.StatusRunning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		plan.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}

	tuiHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type nextEventMsg struct{}

// replayModel folds a recorded tool-event script into the tracker one record
// at a time, re-rendering the plan after each fold.
type replayModel struct {
	tracker *plan.Tracker
	records []stream.ToolInvocation
	index   int
	delay   time.Duration

	view    plan.View
	spinner spinner.Model
	width   int
	done    bool
}

func newReplayModel(records []stream.ToolInvocation, messageID string, delay time.Duration) replayModel {
	tracker := plan.NewTracker(nil, nil)
	tracker.Bind(messageID)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if delay <= 0 {
		delay = 300 * time.Millisecond
	}

	return replayModel{
		tracker: tracker,
		records: records,
		delay:   delay,
		spinner: sp,
		width:   80,
	}
}

func (m replayModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextEvent())
}

func (m replayModel) nextEvent() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return nextEventMsg{}
	})
}

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case nextEventMsg:
		if m.index >= len(m.records) {
			m.done = true
			return m, nil
		}
		m.tracker.Apply(m.records[m.index])
		m.index++
		m.view = m.tracker.View()
		return m, m.nextEvent()
	}

	return m, nil
}

func (m replayModel) View() string {
	var b strings.Builder

	if m.view.TotalCount == 0 && m.view.Artifact == nil {
		if m.done {
			b.WriteString(tuiProgressStyle.Render("no plan produced"))
		} else {
			b.WriteString(m.spinner.View() + " waiting for plan...")
		}
		b.WriteString("\n")
	}

	if m.view.TotalCount > 0 {
		header := tuiTitleStyle.Render(m.view.Title)
		progress := tuiProgressStyle.Render(
			fmt.Sprintf(" %d/%d", m.view.CompletedCount, m.view.TotalCount))
		if !m.done {
			header = m.spinner.View() + " " + header
		}
		b.WriteString(header + progress + "\n\n")

		for _, step := range m.view.Steps {
			style, ok := tuiStepStyles[step.Status]
			if !ok {
				style = tuiStepStyles[plan.StatusPending]
			}
			line := fmt.Sprintf("  %s %s", stepGlyph(step.Status), step.Label)
			if step.Details != "" {
				line += " · " + step.Details
			}
			b.WriteString(style.Render(line) + "\n")
		}
	}

	if m.view.Artifact != nil {
		b.WriteString("\n")
		b.WriteString(artifact.RenderTerminal(m.view.Artifact, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(tuiHelpStyle.Render("replay finished · q to quit"))
	} else {
		b.WriteString(tuiHelpStyle.Render(fmt.Sprintf("event %d/%d · q to quit", m.index, len(m.records))))
	}
	b.WriteString("\n")
	return b.String()
}

func stepGlyph(status plan.StepStatus) string {
	switch status {
	case plan.StatusCompleted:
		return "✓"
	case plan.StatusFailed:
		return "✗"
	case plan.StatusRunning:
		return "▸"
	default:
		return "○"
	}
}

func runWatchTUI(records []stream.ToolInvocation, messageID string, delay time.Duration) error {
	program := tea.NewProgram(newReplayModel(records, messageID, delay))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running plan TUI: %w", err)
	}
	return nil
}
