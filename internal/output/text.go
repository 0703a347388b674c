package output

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
	"github.com/fatih/color"
)

// TextFormatter renders the transcript exactly as the session produced it,
// optionally colorizing lines by category.
type TextFormatter struct {
	config Config
	colors *ColorScheme
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(config Config) *TextFormatter {
	var colors *ColorScheme
	if config.Colors {
		colors = DefaultColorScheme()
	}

	return &TextFormatter{
		config: config,
		colors: colors,
	}
}

// Format formats the full transcript.
func (f *TextFormatter) Format(result *sim.Result) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range result.Lines {
		buf.WriteString(f.FormatLine(line))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// FormatLine colorizes a single transcript line. It is used for streaming
// output while the session is still running.
func (f *TextFormatter) FormatLine(line string) string {
	if f.colors == nil {
		return line
	}

	switch {
	case strings.HasPrefix(line, "PING "),
		strings.HasPrefix(line, "traceroute to "),
		strings.HasPrefix(line, "--- "):
		return f.colors.Header.Sprint(line)
	case strings.HasPrefix(line, "Request timeout"):
		return f.colors.Timeout.Sprint(line)
	case strings.Contains(line, "time="):
		return f.colorizeRTT(line)
	default:
		return line
	}
}

// colorizeRTT colors a ping success line by its latency.
func (f *TextFormatter) colorizeRTT(line string) string {
	i := strings.Index(line, "time=")
	value := strings.TrimSuffix(line[i+len("time="):], " ms")

	rtt, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return line
	}

	switch {
	case rtt < 50:
		return f.colors.RTTLow.Sprint(line)
	case rtt < 150:
		return f.colors.RTTMed.Sprint(line)
	default:
		return f.colors.RTTHigh.Sprint(line)
	}
}

// ContentType returns the MIME type for text output.
func (f *TextFormatter) ContentType() string {
	return "text/plain"
}

// FileExtension returns the file extension for text output.
func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// ColorScheme defines colors for different transcript line categories.
type ColorScheme struct {
	Header  *color.Color
	Timeout *color.Color
	RTTLow  *color.Color // < 50ms
	RTTMed  *color.Color // 50-150ms
	RTTHigh *color.Color // > 150ms
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:  color.New(color.FgWhite, color.Bold),
		Timeout: color.New(color.FgRed, color.Bold),
		RTTLow:  color.New(color.FgGreen),
		RTTMed:  color.New(color.FgYellow),
		RTTHigh: color.New(color.FgRed),
	}
}
