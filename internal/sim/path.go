package sim

// Path length bounds for the simulated hop chain.
const (
	minPathLen = 5
	maxPathLen = 11
)

// Path is the ordered hop chain toward the destination. It is built once
// per session and immutable afterwards; the final element is always the
// destination itself.
type Path []Address

// BuildPath generates a synthetic path to dst. All hops before the last
// are random addresses; length is uniform in [minPathLen, maxPathLen].
func BuildPath(dst Address, rng *RNG) Path {
	n := minPathLen + rng.IntN(maxPathLen-minPathLen+1)

	path := make(Path, 0, n)
	for i := 0; i < n-1; i++ {
		path = append(path, randomAddress(rng))
	}
	return append(path, dst)
}
