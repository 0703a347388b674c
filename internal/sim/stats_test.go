package sim

import (
	"math"
	"strings"
	"testing"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		probes   []Probe
		wantTx   int
		wantRx   int
		wantLoss float64
		wantMin  float64
		wantAvg  float64
		wantMax  float64
		wantMdev float64
	}{
		{
			name: "all received",
			probes: []Probe{
				{Seq: 1, RTT: 2},
				{Seq: 2, RTT: 4},
				{Seq: 3, RTT: 6},
			},
			wantTx:   3,
			wantRx:   3,
			wantLoss: 0,
			wantMin:  2,
			wantAvg:  4,
			wantMax:  6,
			wantMdev: math.Sqrt(8.0 / 3.0),
		},
		{
			name: "half lost",
			probes: []Probe{
				{Seq: 1, RTT: 10},
				{Seq: 2, Lost: true},
				{Seq: 3, RTT: 10},
				{Seq: 4, Lost: true},
			},
			wantTx:   4,
			wantRx:   2,
			wantLoss: 50,
			wantMin:  10,
			wantAvg:  10,
			wantMax:  10,
			wantMdev: 0,
		},
		{
			name: "all lost",
			probes: []Probe{
				{Seq: 1, Lost: true},
				{Seq: 2, Lost: true},
			},
			wantTx:   2,
			wantRx:   0,
			wantLoss: 100,
		},
		{
			name:   "empty",
			probes: nil,
			wantTx: 0,
			wantRx: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := computeStats(tt.probes)

			if st.Transmitted != tt.wantTx {
				t.Errorf("Transmitted = %d, want %d", st.Transmitted, tt.wantTx)
			}
			if st.Received != tt.wantRx {
				t.Errorf("Received = %d, want %d", st.Received, tt.wantRx)
			}
			if st.LossPercent != tt.wantLoss {
				t.Errorf("LossPercent = %v, want %v", st.LossPercent, tt.wantLoss)
			}
			if st.MinRTT != tt.wantMin {
				t.Errorf("MinRTT = %v, want %v", st.MinRTT, tt.wantMin)
			}
			if math.Abs(st.AvgRTT-tt.wantAvg) > 1e-9 {
				t.Errorf("AvgRTT = %v, want %v", st.AvgRTT, tt.wantAvg)
			}
			if st.MaxRTT != tt.wantMax {
				t.Errorf("MaxRTT = %v, want %v", st.MaxRTT, tt.wantMax)
			}
			if math.Abs(st.MdevRTT-tt.wantMdev) > 1e-9 {
				t.Errorf("MdevRTT = %v, want %v", st.MdevRTT, tt.wantMdev)
			}
		})
	}
}

func TestStatsLines(t *testing.T) {
	st := Stats{
		Transmitted: 4,
		Received:    3,
		LossPercent: 25,
		MinRTT:      10.04,
		AvgRTT:      20.55,
		MaxRTT:      31.26,
		MdevRTT:     8.7,
	}

	lines := statsLines("10.0.0.2", st)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "" {
		t.Errorf("first line = %q, want blank", lines[0])
	}
	if lines[1] != "--- 10.0.0.2 ping statistics ---" {
		t.Errorf("header = %q", lines[1])
	}
	if lines[2] != "4 packets transmitted, 3 received, 25% packet loss" {
		t.Errorf("counts = %q", lines[2])
	}
	if lines[3] != "rtt min/avg/max/mdev = 10.0/20.5/31.3/8.7 ms" {
		t.Errorf("rtt = %q", lines[3])
	}
}

func TestStatsLinesOmitRTTWhenAllLost(t *testing.T) {
	st := Stats{Transmitted: 4, Received: 0, LossPercent: 100}

	lines := statsLines("10.0.0.2", st)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "rtt ") {
			t.Errorf("rtt summary %q should be omitted when nothing was received", line)
		}
	}
}
