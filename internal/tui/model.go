// Package tui provides an interactive terminal UI for the simulator.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

// State represents the current state of the TUI.
type State int

const (
	StateRunning State = iota
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the simulated session TUI.
type Model struct {
	// Configuration
	config sim.Config
	width  int
	height int

	// State
	state     State
	lines     []string
	result    *sim.Result
	err       error
	elapsed   time.Duration
	startTime time.Time

	// UI components
	spinner spinner.Model

	// Styles
	styles Styles

	// Session plumbing
	lineChan chan string
	ctx      context.Context
	cancel   context.CancelFunc
}

// LineMsg is sent when the session emits a transcript line.
type LineMsg struct {
	Line string
}

// CompleteMsg is sent when the session is complete.
type CompleteMsg struct {
	Result *sim.Result
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Err error
}

// TickMsg is sent to update elapsed time.
type TickMsg time.Time

// New creates a new TUI model.
func New(config sim.Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		config:    config,
		state:     StateRunning,
		lines:     make([]string, 0),
		spinner:   s,
		styles:    DefaultStyles(),
		width:     80,
		height:    24,
		startTime: time.Now(),
		lineChan:  make(chan string, 100),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runSession(),
		m.tickCmd(),
		m.waitForLine(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		m.elapsed = time.Since(m.startTime)
		if m.state == StateRunning {
			return m, m.tickCmd()
		}

	case LineMsg:
		m.lines = append(m.lines, msg.Line)
		return m, m.waitForLine()

	case CompleteMsg:
		m.state = StateComplete
		m.result = msg.Result

	case ErrorMsg:
		m.state = StateError
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTranscript())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the header section.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Ping Simulator")

	var status string
	switch m.state {
	case StateRunning:
		status = m.spinner.View() + " Probing..."
	case StateComplete:
		status = m.styles.Success.Render("✓ Complete")
	case StateError:
		status = m.styles.Error.Render("✗ Error")
	}

	mode := "ping"
	if m.config.Trace {
		mode = "traceroute + ping"
	}
	info := fmt.Sprintf("%s → %s | Mode: %s | Count: %d",
		m.config.Source, m.config.Destination, mode, m.config.Count)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.styles.Subtle.Render(info),
		status,
	)
}

// renderTranscript renders the most recent transcript lines that fit the
// window.
func (m Model) renderTranscript() string {
	if len(m.lines) == 0 {
		return m.styles.Subtle.Render("Waiting for output...")
	}

	visible := m.height - 8
	if visible < 1 {
		visible = 1
	}

	lines := m.lines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = m.styleLine(line)
	}
	return strings.Join(rendered, "\n")
}

// styleLine picks a style by transcript line category.
func (m Model) styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "PING "),
		strings.HasPrefix(line, "traceroute to "),
		strings.HasPrefix(line, "--- "):
		return m.styles.Header.Render(line)
	case strings.HasPrefix(line, "Request timeout"):
		return m.styles.Timeout.Render(line)
	case strings.Contains(line, "time="):
		return m.colorizeRTT(line)
	default:
		return line
	}
}

// colorizeRTT applies color based on latency.
func (m Model) colorizeRTT(line string) string {
	i := strings.Index(line, "time=")
	value := strings.TrimSuffix(line[i+len("time="):], " ms")

	rtt, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return line
	}

	switch {
	case rtt < 50:
		return m.styles.RTTLow.Render(line)
	case rtt < 150:
		return m.styles.RTTMed.Render(line)
	default:
		return m.styles.RTTHigh.Render(line)
	}
}

// renderFooter renders the footer section.
func (m Model) renderFooter() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Elapsed: %.1fs", m.elapsed.Seconds()))

	if m.state == StateComplete && m.result != nil {
		parts = append(parts, fmt.Sprintf("Loss: %.0f%%", m.result.Stats.LossPercent))
	}

	parts = append(parts, "Press 'q' to quit")

	return m.styles.Subtle.Render(strings.Join(parts, " | "))
}

// runSession runs the simulated session in the background.
func (m Model) runSession() tea.Cmd {
	return func() tea.Msg {
		defer close(m.lineChan)

		session, err := sim.New(m.config)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		result, err := session.Run(m.ctx, func(line string) {
			m.lineChan <- line
		})
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CompleteMsg{Result: result}
	}
}

// waitForLine waits for a transcript line from the channel.
func (m Model) waitForLine() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.lineChan
		if !ok {
			return nil
		}
		return LineMsg{Line: line}
	}
}

// tickCmd returns a command that sends tick messages.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
