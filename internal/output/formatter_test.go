package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

// sampleResult builds a small fixed result without running a session.
func sampleResult() *sim.Result {
	return &sim.Result{
		Source:      "10.0.0.1",
		Destination: "10.0.0.2",
		Seed:        123456,
		Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Size:        56,
		TTL:         58,
		PathHops:    []string{"100.1.2.3", "57.9.10.11", "10.0.0.2"},
		TraceHops: []sim.TraceHop{
			{Number: 1, Address: "100.1.2.3", Probes: []string{"5.2 ms", "5.9 ms", "4.8 ms"}},
			{Number: 2, Probes: []string{"*", "*", "*"}},
			{Number: 3, Address: "10.0.0.2", Probes: []string{"11.0 ms", "*", "12.3 ms"}},
		},
		Probes: []sim.Probe{
			{Seq: 1, RTT: 20.1},
			{Seq: 2, Lost: true},
			{Seq: 3, RTT: 19.4},
			{Seq: 4, RTT: 88.0},
		},
		Stats: sim.Stats{
			Transmitted: 4,
			Received:    3,
			LossPercent: 25,
			MinRTT:      19.4,
			AvgRTT:      42.5,
			MaxRTT:      88.0,
			MdevRTT:     32.2,
		},
		Lines: []string{
			"PING 10.0.0.2 (10.0.0.2) 56(84) bytes of data:",
			"56 bytes from 10.0.0.2: icmp_seq=1 ttl=58 time=20.1 ms",
			"Request timeout for icmp_seq 2",
			"56 bytes from 10.0.0.2: icmp_seq=3 ttl=58 time=19.4 ms",
			"56 bytes from 10.0.0.2: icmp_seq=4 ttl=58 time=88.0 ms",
			"",
			"--- 10.0.0.2 ping statistics ---",
			"4 packets transmitted, 3 received, 25% packet loss",
			"rtt min/avg/max/mdev = 19.4/42.5/88.0/32.2 ms",
		},
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "text"},
		{FormatVerbose, "verbose"},
		{FormatJSON, "json"},
		{FormatCSV, "csv"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	config := Config{}

	if _, ok := NewFormatter(FormatText, config).(*TextFormatter); !ok {
		t.Error("FormatText should create a TextFormatter")
	}
	if _, ok := NewFormatter(FormatVerbose, config).(*TableFormatter); !ok {
		t.Error("FormatVerbose should create a TableFormatter")
	}
	if _, ok := NewFormatter(FormatJSON, config).(*JSONFormatter); !ok {
		t.Error("FormatJSON should create a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatCSV, config).(*CSVFormatter); !ok {
		t.Error("FormatCSV should create a CSVFormatter")
	}
}

func TestTextFormatterPlain(t *testing.T) {
	result := sampleResult()
	f := NewTextFormatter(Config{Colors: false})

	data, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := strings.Join(result.Lines, "\n") + "\n"
	if string(data) != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", data, want)
	}
}

func TestTextFormatterFormatLinePlain(t *testing.T) {
	f := NewTextFormatter(Config{Colors: false})

	line := "Request timeout for icmp_seq 2"
	if got := f.FormatLine(line); got != line {
		t.Errorf("FormatLine() = %q, want unchanged line", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult()
	f := NewJSONFormatter(Config{})

	data, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Destination != "10.0.0.2" {
		t.Errorf("Destination = %q, want 10.0.0.2", decoded.Destination)
	}
	if decoded.Seed != 123456 {
		t.Errorf("Seed = %d, want 123456", decoded.Seed)
	}
	if len(decoded.Probes) != 4 {
		t.Errorf("Probes = %d, want 4", len(decoded.Probes))
	}
	if len(decoded.Traceroute) != 3 {
		t.Errorf("Traceroute = %d, want 3", len(decoded.Traceroute))
	}
	if decoded.Traceroute[1].IP != "" {
		t.Errorf("anonymized hop should have empty IP, got %q", decoded.Traceroute[1].IP)
	}
	if decoded.Statistics.Received != 3 {
		t.Errorf("Received = %d, want 3", decoded.Statistics.Received)
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	f := NewJSONFormatter(Config{})
	f.SetPretty(false)

	data, err := f.Format(sampleResult())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Error("compact output should not contain newlines")
	}
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult()
	f := NewCSVFormatter(Config{})

	data, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 5 { // header + 4 probes
		t.Fatalf("got %d records, want 5", len(records))
	}
	if records[0][0] != "seq" {
		t.Errorf("header = %v", records[0])
	}
	if records[2][2] != "timeout" {
		t.Errorf("lost probe status = %q, want timeout", records[2][2])
	}
	if records[2][3] != "" {
		t.Errorf("lost probe rtt = %q, want empty", records[2][3])
	}
	if records[1][3] != "20.1" {
		t.Errorf("first probe rtt = %q, want 20.1", records[1][3])
	}
}

func TestTableFormatter(t *testing.T) {
	result := sampleResult()
	f := NewTableFormatter(Config{Colors: false})

	data, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"Session: 10.0.0.1 -> 10.0.0.2",
		"Traceroute:",
		"Probes:",
		"timeout",
		"Transmitted:   4",
		"Packet Loss:   25%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestTableFormatterOmitsRTTWhenAllLost(t *testing.T) {
	result := sampleResult()
	result.Probes = []sim.Probe{{Seq: 1, Lost: true}}
	result.Stats = sim.Stats{Transmitted: 1, Received: 0, LossPercent: 100}

	f := NewTableFormatter(Config{Colors: false})
	data, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(string(data), "RTT min/avg/max/mdev") {
		t.Error("summary should omit RTT line when nothing was received")
	}
}

func TestWriterWithFormatter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterWithFormatter(NewTextFormatter(Config{Colors: false}), &buf)

	if err := w.Write(sampleResult()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Write() produced no output")
	}
	if w.IsTTY() {
		t.Error("bytes.Buffer should not be a TTY")
	}
}
