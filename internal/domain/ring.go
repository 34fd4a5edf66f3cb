package domain

import "fmt"

// Ring is a cyclic numeric domain [Min, Max]. Stepping past Max wraps
// to Min and vice versa. Every digit of a combination lives on the ring.
type Ring struct {
	Min int
	Max int
}

// NewRing validates the bounds and returns the ring.
func NewRing(min, max int) (Ring, error) {
	if min > max {
		return Ring{}, &OpError{
			Op:   "ring.new",
			Kind: KindInvalidRing,
			Err:  fmt.Errorf("min %d > max %d: %w", min, max, ErrInvalidRing),
		}
	}
	return Ring{Min: min, Max: max}, nil
}

// Modulus is the number of distinct digits on the ring, always ≥ 1.
func (r Ring) Modulus() int {
	return r.Max - r.Min + 1
}

// Contains reports whether v is a valid digit on the ring.
func (r Ring) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Step moves digit v by delta steps around the ring, wrapping in either
// direction. v must be on the ring; delta may be any integer.
func (r Ring) Step(v, delta int) int {
	m := r.Modulus()
	z := (v - r.Min + delta) % m
	if z < 0 {
		z += m
	}
	return z + r.Min
}

// Distance returns the minimal number of single steps between ring
// digits a and b, moving in either direction with wraparound.
func (r Ring) Distance(a, b int) int {
	return CyclicDistance(a-r.Min, b-r.Min, r.Modulus())
}

// CyclicDistance returns the minimal distance between a and b on a ring
// of the given size: the smaller of the clockwise and counter-clockwise
// walks. a and b must already be reduced to [0, modulus). For modulus 1
// the distance is always 0.
func CyclicDistance(a, b, modulus int) int {
	cw := (a - b + modulus) % modulus
	ccw := (b - a + modulus) % modulus
	if cw < ccw {
		return cw
	}
	return ccw
}
