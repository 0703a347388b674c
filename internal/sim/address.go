package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is an IPv4 address as four octets.
type Address [4]byte

// ParseAddress parses strict dotted-decimal IPv4 syntax. Octets must be
// plain decimal numbers in [0,255] with no leading zeros or signs.
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var addr Address
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 || part != strconv.Itoa(n) {
			return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		addr[i] = byte(n)
	}

	return addr, nil
}

// String returns the dotted-decimal form of the address.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// octetWeights bias the synthetic distance toward the most significant
// octets, so coarse-grained topology dominates over host-level differences.
var octetWeights = [4]float64{0.8, 0.2, 0.05, 0.02}

// Distance is the weighted sum of absolute per-octet differences between
// two addresses. It stands in for topological distance in the latency model.
func Distance(a, b Address) float64 {
	var d float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		if diff < 0 {
			diff = -diff
		}
		d += octetWeights[i] * diff
	}
	return d
}

// randomAddress draws a synthetic hop address. The first octet stays out of
// reserved/multicast space and the last octet avoids network and broadcast
// values.
func randomAddress(rng *RNG) Address {
	return Address{
		byte(1 + rng.IntN(223)),
		byte(rng.IntN(256)),
		byte(rng.IntN(256)),
		byte(1 + rng.IntN(254)),
	}
}
