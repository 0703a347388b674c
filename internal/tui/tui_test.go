package tui

import (
	"strings"
	"testing"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

func testConfig() sim.Config {
	return sim.Config{
		Source:       "10.0.0.1",
		Destination:  "10.0.0.2",
		Count:        4,
		Size:         56,
		Reproducible: true,
		NoDelay:      true,
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	low := styles.RTTLow.Render("test")
	high := styles.RTTHigh.Render("test")

	if low == "" || high == "" {
		t.Error("styles should render non-empty output")
	}
}

func TestMinimalTheme(t *testing.T) {
	styles := MinimalTheme()

	if styles.Title.Render("x") == "" {
		t.Error("minimal theme should still render")
	}
}

func TestStyleLine(t *testing.T) {
	m := New(testConfig())

	tests := []struct {
		name string
		line string
	}{
		{"ping header", "PING 10.0.0.2 (10.0.0.2) 56(84) bytes of data:"},
		{"trace header", "traceroute to 10.0.0.2, 7 hops max"},
		{"stats header", "--- 10.0.0.2 ping statistics ---"},
		{"timeout", "Request timeout for icmp_seq 2"},
		{"low rtt", "56 bytes from 10.0.0.2: icmp_seq=1 ttl=58 time=20.1 ms"},
		{"medium rtt", "56 bytes from 10.0.0.2: icmp_seq=1 ttl=58 time=88.0 ms"},
		{"high rtt", "56 bytes from 10.0.0.2: icmp_seq=1 ttl=58 time=210.4 ms"},
		{"plain", "4 packets transmitted, 3 received, 25% packet loss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.styleLine(tt.line); got == "" {
				t.Error("styleLine should return non-empty output")
			}
		})
	}
}

func TestModelView(t *testing.T) {
	m := New(testConfig())

	view := m.View()
	if view == "" {
		t.Fatal("View() should not be empty")
	}
	if !strings.Contains(view, "Ping Simulator") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "10.0.0.2") {
		t.Error("view should mention the destination")
	}
}

func TestModelViewWithLines(t *testing.T) {
	m := New(testConfig())
	m.lines = append(m.lines,
		"PING 10.0.0.2 (10.0.0.2) 56(84) bytes of data:",
		"Request timeout for icmp_seq 1")

	view := m.View()
	if !strings.Contains(view, "Request timeout for icmp_seq 1") {
		t.Error("view should include transcript lines")
	}
}

func TestModelTranscriptWindow(t *testing.T) {
	m := New(testConfig())
	m.height = 10 // 2 visible transcript lines

	for i := 0; i < 20; i++ {
		m.lines = append(m.lines, "Request timeout for icmp_seq "+string(rune('0'+i%10)))
	}

	transcript := m.renderTranscript()
	if got := strings.Count(transcript, "\n") + 1; got > m.height {
		t.Errorf("transcript renders %d lines, more than window height %d", got, m.height)
	}
}
