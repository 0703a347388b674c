package sim

import "time"

// TraceHop is one rendered traceroute hop. Address is empty when every
// sub-probe rendered as "*" (an anonymized hop).
type TraceHop struct {
	Number  int      `json:"hop"`
	Address string   `json:"ip,omitempty"`
	Probes  []string `json:"probes"`
}

// Result is the complete record of one simulated session, consumed by the
// output formatters and the TUI. Lines holds the full transcript; the same
// lines are also streamed incrementally while the session runs.
type Result struct {
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	Seed        uint32     `json:"seed"`
	Timestamp   time.Time  `json:"timestamp"`
	Size        int        `json:"size"`
	TTL         int        `json:"ttl"`
	PathHops    []string   `json:"path"`
	TraceHops   []TraceHop `json:"traceroute,omitempty"`
	Probes      []Probe    `json:"probes"`
	Stats       Stats      `json:"statistics"`
	Lines       []string   `json:"-"`
}
