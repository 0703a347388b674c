package sim

import (
	"fmt"
	"math"
)

// Stats summarizes the ping phase of one session.
type Stats struct {
	Transmitted int     `json:"transmitted"`
	Received    int     `json:"received"`
	LossPercent float64 `json:"loss_percent"`
	MinRTT      float64 `json:"min_rtt_ms"`
	AvgRTT      float64 `json:"avg_rtt_ms"`
	MaxRTT      float64 `json:"max_rtt_ms"`
	MdevRTT     float64 `json:"mdev_rtt_ms"`
}

// computeStats reduces the collected probes to the final summary. Mdev is
// the population standard deviation of the successful RTTs.
func computeStats(probes []Probe) Stats {
	st := Stats{Transmitted: len(probes)}

	var rtts []float64
	for _, p := range probes {
		if p.Lost {
			continue
		}
		rtts = append(rtts, p.RTT)
	}
	st.Received = len(rtts)

	if st.Transmitted > 0 {
		st.LossPercent = float64(st.Transmitted-st.Received) / float64(st.Transmitted) * 100
	}

	if len(rtts) == 0 {
		return st
	}

	st.MinRTT = rtts[0]
	st.MaxRTT = rtts[0]
	sum := 0.0
	for _, rtt := range rtts {
		sum += rtt
		if rtt < st.MinRTT {
			st.MinRTT = rtt
		}
		if rtt > st.MaxRTT {
			st.MaxRTT = rtt
		}
	}
	st.AvgRTT = sum / float64(len(rtts))

	variance := 0.0
	for _, rtt := range rtts {
		d := rtt - st.AvgRTT
		variance += d * d
	}
	st.MdevRTT = math.Sqrt(variance / float64(len(rtts)))

	return st
}

// statsLines renders the closing summary block. The rtt line is omitted
// entirely when no probe succeeded.
func statsLines(dst string, st Stats) []string {
	lines := []string{
		"",
		fmt.Sprintf("--- %s ping statistics ---", dst),
		fmt.Sprintf("%d packets transmitted, %d received, %.0f%% packet loss",
			st.Transmitted, st.Received, st.LossPercent),
	}

	if st.Received > 0 {
		lines = append(lines, fmt.Sprintf("rtt min/avg/max/mdev = %.1f/%.1f/%.1f/%.1f ms",
			st.MinRTT, st.AvgRTT, st.MaxRTT, st.MdevRTT))
	}

	return lines
}
