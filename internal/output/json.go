package output

import (
	"encoding/json"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

// JSONFormatter formats session results as JSON.
type JSONFormatter struct {
	config Config
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(config Config) *JSONFormatter {
	return &JSONFormatter{
		config: config,
		pretty: true, // Default to pretty-printed
	}
}

// SetPretty enables or disables pretty-printing.
func (f *JSONFormatter) SetPretty(pretty bool) {
	f.pretty = pretty
}

// Format formats the session result as JSON.
func (f *JSONFormatter) Format(result *sim.Result) ([]byte, error) {
	output := f.toJSONOutput(result)

	if f.pretty {
		return json.MarshalIndent(output, "", "  ")
	}
	return json.Marshal(output)
}

// JSONOutput is the JSON-serializable representation of a session result.
type JSONOutput struct {
	Source      string         `json:"source"`
	Destination string         `json:"destination"`
	Seed        uint32         `json:"seed"`
	Timestamp   string         `json:"timestamp"`
	Size        int            `json:"size_bytes"`
	TTL         int            `json:"ttl"`
	Path        []string       `json:"path"`
	Traceroute  []JSONTraceHop `json:"traceroute,omitempty"`
	Probes      []JSONProbe    `json:"probes"`
	Statistics  JSONStats      `json:"statistics"`
}

// JSONTraceHop represents a single traceroute hop in JSON format.
type JSONTraceHop struct {
	Hop    int      `json:"hop"`
	IP     string   `json:"ip,omitempty"`
	Probes []string `json:"probes"`
}

// JSONProbe represents a single ping probe in JSON format.
type JSONProbe struct {
	Seq  int     `json:"seq"`
	Lost bool    `json:"lost"`
	RTT  float64 `json:"rtt_ms,omitempty"`
}

// JSONStats represents session statistics in JSON format.
type JSONStats struct {
	Transmitted int     `json:"transmitted"`
	Received    int     `json:"received"`
	LossPercent float64 `json:"loss_percent"`
	MinRTT      float64 `json:"min_rtt_ms,omitempty"`
	AvgRTT      float64 `json:"avg_rtt_ms,omitempty"`
	MaxRTT      float64 `json:"max_rtt_ms,omitempty"`
	MdevRTT     float64 `json:"mdev_rtt_ms,omitempty"`
}

// toJSONOutput converts a Result to JSONOutput.
func (f *JSONFormatter) toJSONOutput(result *sim.Result) *JSONOutput {
	output := &JSONOutput{
		Source:      result.Source,
		Destination: result.Destination,
		Seed:        result.Seed,
		Timestamp:   result.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		Size:        result.Size,
		TTL:         result.TTL,
		Path:        result.PathHops,
		Probes:      make([]JSONProbe, len(result.Probes)),
		Statistics: JSONStats{
			Transmitted: result.Stats.Transmitted,
			Received:    result.Stats.Received,
			LossPercent: roundFloat(result.Stats.LossPercent, 0),
			MinRTT:      roundFloat(result.Stats.MinRTT, 1),
			AvgRTT:      roundFloat(result.Stats.AvgRTT, 1),
			MaxRTT:      roundFloat(result.Stats.MaxRTT, 1),
			MdevRTT:     roundFloat(result.Stats.MdevRTT, 1),
		},
	}

	for _, hop := range result.TraceHops {
		output.Traceroute = append(output.Traceroute, JSONTraceHop{
			Hop:    hop.Number,
			IP:     hop.Address,
			Probes: hop.Probes,
		})
	}

	for i, p := range result.Probes {
		output.Probes[i] = JSONProbe{
			Seq:  p.Seq,
			Lost: p.Lost,
			RTT:  roundFloat(p.RTT, 1),
		}
	}

	return output
}

// ContentType returns the MIME type for JSON output.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// FileExtension returns the file extension for JSON output.
func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// Helper function to round floats
func roundFloat(val float64, precision int) float64 {
	if precision == 0 {
		return float64(int(val + 0.5))
	}
	p := float64(1)
	for i := 0; i < precision; i++ {
		p *= 10
	}
	return float64(int(val*p+0.5)) / p
}
