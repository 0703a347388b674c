package sim

import "testing"

func TestBaseLatencyBounds(t *testing.T) {
	src := Address{10, 0, 0, 1}
	dst := Address{10, 0, 0, 2}
	rng := NewRNG(3)

	for _, hops := range []int{minPathLen, 8, maxPathLen} {
		floor := baseFloorMs + hopCostMs*float64(hops) + distanceCostMs*Distance(src, dst)
		ceil := floor + baseNoiseMs

		for i := 0; i < 200; i++ {
			base := baseLatency(hops, src, dst, rng)
			if base < floor || base >= ceil {
				t.Fatalf("hops=%d: base %v out of [%v,%v)", hops, base, floor, ceil)
			}
		}
	}
}

func TestBaseLatencyGrowsWithDistance(t *testing.T) {
	src := Address{10, 0, 0, 1}
	near := Address{10, 0, 0, 2}
	far := Address{200, 0, 0, 2}

	// Compare deterministic floors, not noisy samples.
	nearFloor := baseFloorMs + hopCostMs*8 + distanceCostMs*Distance(src, near)
	farFloor := baseFloorMs + hopCostMs*8 + distanceCostMs*Distance(src, far)

	if farFloor <= nearFloor {
		t.Errorf("far floor %v should exceed near floor %v", farFloor, nearFloor)
	}
}

func TestHopBaseBounds(t *testing.T) {
	rng := NewRNG(11)

	for hop := 1; hop <= maxPathLen; hop++ {
		floor := 2 + 3*float64(hop)
		for i := 0; i < 100; i++ {
			base := hopBase(hop, rng)
			if base < floor || base >= floor+3 {
				t.Fatalf("hop %d: base %v out of [%v,%v)", hop, base, floor, floor+3)
			}
		}
	}
}

func TestSampleRTTFloor(t *testing.T) {
	rng := NewRNG(21)

	for i := 0; i < 10000; i++ {
		p := sample(0.01, rng)
		if p.RTT < minRTTMs {
			t.Fatalf("sample %d: RTT %v below %v", i, p.RTT, minRTTMs)
		}
	}
}

func TestSampleLossRate(t *testing.T) {
	rng := NewRNG(33)

	lost := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if sample(20, rng).Lost {
			lost++
		}
	}

	// 7% nominal; allow a wide deterministic band.
	if lost < 400 || lost > 1000 {
		t.Errorf("lost %d of %d, want roughly 700", lost, n)
	}
}

func TestSampleJitterBounds(t *testing.T) {
	rng := NewRNG(55)

	const base = 100.0
	for i := 0; i < 5000; i++ {
		p := sample(base, rng)
		// Worst case: full positive jitter plus a spike.
		max := base * (1 + jitterSpread) * spikeFactor
		if p.RTT >= max {
			t.Fatalf("RTT %v exceeds maximum %v", p.RTT, max)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := NewRNG(64)
	b := NewRNG(64)

	for i := 0; i < 100; i++ {
		pa, pb := sample(25, a), sample(25, b)
		if pa != pb {
			t.Fatalf("sample %d: %+v != %+v", i, pa, pb)
		}
	}
}
