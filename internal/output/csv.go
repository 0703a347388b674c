package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

// CSVFormatter formats session results as CSV, one row per ping probe.
type CSVFormatter struct {
	config  Config
	columns []string
}

// Default CSV columns
var defaultCSVColumns = []string{
	"seq", "destination", "status", "rtt_ms", "ttl", "size_bytes",
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(config Config) *CSVFormatter {
	return &CSVFormatter{
		config:  config,
		columns: defaultCSVColumns,
	}
}

// SetColumns allows customizing which columns to include.
func (f *CSVFormatter) SetColumns(columns []string) {
	f.columns = columns
}

// Format formats the session result as CSV.
func (f *CSVFormatter) Format(result *sim.Result) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(f.columns); err != nil {
		return nil, err
	}

	for _, probe := range result.Probes {
		row := make([]string, len(f.columns))
		for i, col := range f.columns {
			row[i] = f.getValue(result, &probe, col)
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// getValue returns the value for a specific column.
func (f *CSVFormatter) getValue(result *sim.Result, probe *sim.Probe, column string) string {
	switch column {
	case "seq":
		return strconv.Itoa(probe.Seq)

	case "destination":
		return result.Destination

	case "status":
		if probe.Lost {
			return "timeout"
		}
		return "ok"

	case "rtt_ms":
		if probe.Lost {
			return ""
		}
		return fmt.Sprintf("%.1f", probe.RTT)

	case "ttl":
		if probe.Lost {
			return ""
		}
		return strconv.Itoa(result.TTL)

	case "size_bytes":
		return strconv.Itoa(result.Size)

	default:
		return ""
	}
}

// ContentType returns the MIME type for CSV output.
func (f *CSVFormatter) ContentType() string {
	return "text/csv"
}

// FileExtension returns the file extension for CSV output.
func (f *CSVFormatter) FileExtension() string {
	return "csv"
}
