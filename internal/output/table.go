package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats session results as detailed tables: one for the
// traceroute phase (if present) and one for the ping probes, followed by
// the statistics summary.
type TableFormatter struct {
	config Config
	colors *ColorScheme
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(config Config) *TableFormatter {
	var colors *ColorScheme
	if config.Colors {
		colors = DefaultColorScheme()
	}

	return &TableFormatter{
		config: config,
		colors: colors,
	}
}

// Format formats the session result as tables.
func (f *TableFormatter) Format(result *sim.Result) ([]byte, error) {
	var buf bytes.Buffer

	f.writeHeader(&buf, result)

	if len(result.TraceHops) > 0 {
		buf.WriteString("Traceroute:\n")
		f.writeTraceTable(&buf, result)
		buf.WriteString("\n")
	}

	buf.WriteString("Probes:\n")
	f.writeProbeTable(&buf, result)

	f.writeSummary(&buf, result)

	return buf.Bytes(), nil
}

// writeHeader writes the session header information.
func (f *TableFormatter) writeHeader(buf *bytes.Buffer, result *sim.Result) {
	header := fmt.Sprintf("Session: %s -> %s\n", result.Source, result.Destination)
	header += fmt.Sprintf("Seed: %d | Hops: %d | Time: %s\n\n",
		result.Seed, len(result.PathHops),
		result.Timestamp.Format("2006-01-02 15:04:05"))

	if f.colors != nil {
		header = f.colors.Header.Sprint(header)
	}
	buf.WriteString(header)
}

// configureTable sets up the table appearance.
func (f *TableFormatter) configureTable(table *tablewriter.Table) {
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("│")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetTablePadding(" ")
}

// writeTraceTable renders the traceroute hops.
func (f *TableFormatter) writeTraceTable(buf *bytes.Buffer, result *sim.Result) {
	table := tablewriter.NewWriter(buf)
	f.configureTable(table)
	table.SetHeader([]string{"Hop", "IP Address", "Probe 1", "Probe 2", "Probe 3"})

	for _, hop := range result.TraceHops {
		ip := hop.Address
		if ip == "" {
			ip = "*"
		}
		row := []string{fmt.Sprintf("%d", hop.Number), ip}
		for _, probe := range hop.Probes {
			row = append(row, probe)
		}
		table.Append(row)
	}

	table.Render()
}

// writeProbeTable renders the ping probes.
func (f *TableFormatter) writeProbeTable(buf *bytes.Buffer, result *sim.Result) {
	table := tablewriter.NewWriter(buf)
	f.configureTable(table)
	table.SetHeader([]string{"Seq", "Status", "TTL", "RTT"})

	for _, probe := range result.Probes {
		if probe.Lost {
			table.Append([]string{
				fmt.Sprintf("%d", probe.Seq),
				f.statusCell("timeout", true),
				"-", "-",
			})
			continue
		}
		table.Append([]string{
			fmt.Sprintf("%d", probe.Seq),
			f.statusCell("ok", false),
			fmt.Sprintf("%d", result.TTL),
			f.formatRTT(probe.RTT),
		})
	}

	table.Render()
}

// statusCell colors a probe status.
func (f *TableFormatter) statusCell(status string, lost bool) string {
	if f.colors == nil {
		return status
	}
	if lost {
		return f.colors.Timeout.Sprint(status)
	}
	return f.colors.RTTLow.Sprint(status)
}

// formatRTT formats an RTT value with optional coloring.
func (f *TableFormatter) formatRTT(rtt float64) string {
	str := fmt.Sprintf("%.1f ms", rtt)

	if f.colors != nil {
		switch {
		case rtt < 50:
			str = f.colors.RTTLow.Sprint(str)
		case rtt < 150:
			str = f.colors.RTTMed.Sprint(str)
		default:
			str = f.colors.RTTHigh.Sprint(str)
		}
	}

	return str
}

// writeSummary writes the statistics summary.
func (f *TableFormatter) writeSummary(buf *bytes.Buffer, result *sim.Result) {
	st := result.Stats

	buf.WriteString("\nSummary:\n")
	fmt.Fprintf(buf, "  Transmitted:   %d\n", st.Transmitted)
	fmt.Fprintf(buf, "  Received:      %d\n", st.Received)
	fmt.Fprintf(buf, "  Packet Loss:   %.0f%%\n", st.LossPercent)

	if st.Received > 0 {
		fmt.Fprintf(buf, "  RTT min/avg/max/mdev: %.1f/%.1f/%.1f/%.1f ms\n",
			st.MinRTT, st.AvgRTT, st.MaxRTT, st.MdevRTT)
	}

	status := "Complete"
	if st.Received == 0 {
		status = "No replies"
	}
	if f.colors != nil {
		if st.Received == 0 {
			status = f.colors.RTTHigh.Sprint(status)
		} else {
			status = f.colors.RTTLow.Sprint(status)
		}
	}
	buf.WriteString("  Status:        " + status + "\n")

	fmt.Fprintf(buf, "  Path:          %s\n", strings.Join(result.PathHops, " -> "))
}

// ContentType returns the MIME type for table output.
func (f *TableFormatter) ContentType() string {
	return "text/plain"
}

// FileExtension returns the file extension for table output.
func (f *TableFormatter) FileExtension() string {
	return "txt"
}
