package sim

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Input clamping bounds and defaults.
const (
	DefaultCount = 4
	MinCount     = 1
	MaxCount     = 20

	DefaultSize = 56
	MinSize     = 8
	MaxSize     = 1500
)

// Pacing and rendering constants.
const (
	pingPauseMs     = 280
	pingPauseJitter = 120
	hopPauseMs      = 120
	hopPauseJitter  = 100

	// IP + ICMP header bytes added to the payload size in the header line.
	headerOverhead = 28

	subProbes       = 3
	starProbability = 0.6
)

// Config describes one simulated session. The zero value is not runnable;
// at minimum Source and Destination must be set.
type Config struct {
	Source      string
	Destination string

	// Count is the number of ping probes, clamped to [MinCount, MaxCount].
	Count int

	// Size is the simulated payload size in bytes, clamped to
	// [MinSize, MaxSize].
	Size int

	// Trace enables the traceroute phase before the ping loop.
	Trace bool

	// Reproducible derives the seed from the address pair only, so the
	// same pair always produces the same transcript.
	Reproducible bool

	// NoDelay skips the simulated inter-probe pauses. The transcript is
	// unaffected; pacing is presentation only.
	NoDelay bool
}

// Normalize clamps Count and Size into their supported ranges, applying
// defaults for zero values.
func (c *Config) Normalize() {
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if c.Count < MinCount {
		c.Count = MinCount
	}
	if c.Count > MaxCount {
		c.Count = MaxCount
	}

	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Size < MinSize {
		c.Size = MinSize
	}
	if c.Size > MaxSize {
		c.Size = MaxSize
	}
}

// Validate checks both addresses without consuming any random state.
func (c *Config) Validate() error {
	if _, err := ParseAddress(c.Source); err != nil {
		return err
	}
	if _, err := ParseAddress(c.Destination); err != nil {
		return err
	}
	return nil
}

// Session drives one simulated ping/traceroute run. A session owns its RNG
// stream exclusively and is not safe for concurrent use; create a new
// session per run.
type Session struct {
	config Config
	src    Address
	dst    Address
	seed   uint32
	rng    *RNG
	path   Path
	ttl    int
}

// New validates the configuration and fixes the session's seed and path.
// The RNG is never touched when validation fails, so an invalid address
// produces a single error and no partial output.
func New(config Config) (*Session, error) {
	config.Normalize()

	src, err := ParseAddress(config.Source)
	if err != nil {
		return nil, err
	}
	dst, err := ParseAddress(config.Destination)
	if err != nil {
		return nil, err
	}

	seed := DeriveSeed(config.Source, config.Destination, config.Reproducible)
	rng := NewRNG(seed)
	path := BuildPath(dst, rng)

	ttl := 64 - len(path)
	if ttl < 1 {
		ttl = 1
	}

	return &Session{
		config: config,
		src:    src,
		dst:    dst,
		seed:   seed,
		rng:    rng,
		path:   path,
		ttl:    ttl,
	}, nil
}

// Seed returns the derived RNG seed for this session.
func (s *Session) Seed() uint32 { return s.seed }

// Path returns the simulated hop chain.
func (s *Session) Path() Path { return s.path }

// Run executes the session, streaming each transcript line through emit as
// it is produced. emit may be nil. Run blocks for the simulated pacing
// delays unless NoDelay is set, and returns the partial result together
// with ctx's error when cancelled at a pause.
func (s *Session) Run(ctx context.Context, emit func(line string)) (*Result, error) {
	result := &Result{
		Source:      s.config.Source,
		Destination: s.config.Destination,
		Seed:        s.seed,
		Timestamp:   time.Now(),
		Size:        s.config.Size,
		TTL:         s.ttl,
	}
	for _, hop := range s.path {
		result.PathHops = append(result.PathHops, hop.String())
	}

	out := func(line string) {
		result.Lines = append(result.Lines, line)
		if emit != nil {
			emit(line)
		}
	}

	dst := s.dst.String()
	out(fmt.Sprintf("PING %s (%s) %d(%d) bytes of data:",
		dst, dst, s.config.Size, s.config.Size+headerOverhead))

	if s.config.Trace {
		if err := s.runTrace(ctx, out, result); err != nil {
			return result, err
		}
	}

	if err := s.runPing(ctx, out, result); err != nil {
		return result, err
	}

	result.Stats = computeStats(result.Probes)
	for _, line := range statsLines(dst, result.Stats) {
		out(line)
	}

	return result, nil
}

// runTrace emits the traceroute block. Each hop gets three sub-probes on
// the growing-base latency model; a lost sub-probe still renders its RTT
// 40% of the time, mimicking a late reply that can still be attributed.
func (s *Session) runTrace(ctx context.Context, out func(string), result *Result) error {
	out(fmt.Sprintf("traceroute to %s, %d hops max", s.dst, len(s.path)))

	for i, addr := range s.path {
		number := i + 1
		hop := TraceHop{Number: number}

		stars := 0
		for j := 0; j < subProbes; j++ {
			p := sample(hopBase(number, s.rng), s.rng)
			render := fmt.Sprintf("%.1f ms", p.RTT)
			if p.Lost && s.rng.Float64() < starProbability {
				render = "*"
				stars++
			}
			hop.Probes = append(hop.Probes, render)
		}

		// A fully unresponsive hop stays anonymous.
		if stars < subProbes {
			hop.Address = addr.String()
		}
		result.TraceHops = append(result.TraceHops, hop)
		out(formatHopLine(number, hop.Address, hop.Probes))

		if err := s.pause(ctx, hopPauseMs+s.rng.IntN(hopPauseJitter)); err != nil {
			return err
		}
	}

	return nil
}

// runPing emits one line per sequence number, drawing a fresh base latency
// for every probe.
func (s *Session) runPing(ctx context.Context, out func(string), result *Result) error {
	dst := s.dst.String()

	for seq := 1; seq <= s.config.Count; seq++ {
		p := sample(baseLatency(len(s.path), s.src, s.dst, s.rng), s.rng)
		p.Seq = seq

		if p.Lost {
			p.RTT = 0
			out(fmt.Sprintf("Request timeout for icmp_seq %d", seq))
		} else {
			out(fmt.Sprintf("%d bytes from %s: icmp_seq=%d ttl=%d time=%.1f ms",
				s.config.Size, dst, seq, s.ttl, p.RTT))
		}
		result.Probes = append(result.Probes, p)

		if err := s.pause(ctx, pingPauseMs+s.rng.IntN(pingPauseJitter)); err != nil {
			return err
		}
	}

	return nil
}

// pause sleeps for the given simulated delay, honoring cancellation. The
// caller draws the random pause width unconditionally so the RNG stream
// does not depend on NoDelay.
func (s *Session) pause(ctx context.Context, ms int) error {
	if s.config.NoDelay {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// formatHopLine renders one traceroute line. An empty address means every
// sub-probe was a "*" and the hop's identity is withheld.
func formatHopLine(number int, address string, probes []string) string {
	if address == "" {
		return fmt.Sprintf(" %d  %s", number, strings.Join(probes, "  "))
	}
	return fmt.Sprintf(" %d  %s  %s", number, address, strings.Join(probes, "  "))
}
