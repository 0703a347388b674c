package sim

// Latency model constants. Base latency grows with hop count and the
// synthetic source/destination distance; individual samples add loss,
// jitter and occasional spikes on top.
const (
	baseFloorMs    = 8.0
	hopCostMs      = 1.8
	distanceCostMs = 0.3
	baseNoiseMs    = 6.0

	lossProbability  = 0.07
	jitterSpread     = 0.25
	minRTTMs         = 0.3
	spikeProbability = 0.05
	spikeFactor      = 1.8
)

// Probe is the outcome of a single simulated packet. A lost ping probe
// carries no RTT; a lost traceroute sub-probe keeps its computed RTT so
// the renderer can still attribute a late reply.
type Probe struct {
	Seq  int     `json:"seq"`
	Lost bool    `json:"lost"`
	RTT  float64 `json:"rtt_ms,omitempty"`
}

// baseLatency models the unperturbed round trip for the whole path. It is
// drawn fresh for every ping probe.
func baseLatency(hops int, src, dst Address, rng *RNG) float64 {
	return baseFloorMs +
		hopCostMs*float64(hops) +
		distanceCostMs*Distance(src, dst) +
		rng.Float64()*baseNoiseMs
}

// hopBase models cumulative propagation delay up to the given 1-indexed
// hop, used for traceroute sub-probes.
func hopBase(hopNumber int, rng *RNG) float64 {
	return 2 + 3*float64(hopNumber) + rng.Float64()*3
}

// sample draws one probe outcome from a base latency. The full
// perturbation chain always runs, so the RNG stream advances identically
// whether or not the probe is lost.
func sample(base float64, rng *RNG) Probe {
	p := Probe{Lost: rng.Float64() < lossProbability}

	rtt := base * (1 + (rng.Float64()*2*jitterSpread - jitterSpread))
	if rtt < minRTTMs {
		rtt = minRTTMs
	}
	if rng.Float64() < spikeProbability {
		rtt *= spikeFactor
	}

	p.RTT = rtt
	return p
}
